package repository

import (
	"context"
	"exercisetracker/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(ctx context.Context, tbl ...any) error
	SaveToTable(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	Find(ctx context.Context, q db.Query, entity any) error
}
