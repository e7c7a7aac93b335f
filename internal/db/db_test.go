package db_test

import (
	"context"
	"database/sql"
	"exercisetracker/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
	Score    int
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(ctx, &Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username","score"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
					WithArgs("Alice", 7).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
			})

			It("should save the record and fill its id", func() {
				record := Test{Username: "Alice", Score: 7}
				err := testDB.SaveToTable(ctx, &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
				mock.ExpectRollback()
			})

			It("should return ErrDuplicate", func() {
				err := testDB.SaveToTable(ctx, &Test{Username: "Alice", Score: 7})
				Expect(err).To(MatchError(db.ErrDuplicate))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a foreign key is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
				mock.ExpectRollback()
			})

			It("should return ErrReference", func() {
				err := testDB.SaveToTable(ctx, &Test{Username: "Alice", Score: 7})
				Expect(err).To(MatchError(db.ErrReference))
			})
		})

		When("the insert fails for another reason", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.SaveToTable(ctx, &Test{Username: "Alice", Score: 7})
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
				Expect(err).NotTo(MatchError(db.ErrDuplicate))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}).
						AddRow(1, "Alice", 7))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Find", func() {
		When("filters, order and limit are given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 AND score >= \$2 ORDER BY id LIMIT \$3`).
					WithArgs("Alice", 5, 2).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}).
						AddRow(1, "Alice", 5).
						AddRow(2, "Alice", 9))
			})

			It("should push everything into one query", func() {
				var results []Test
				err := testDB.Find(ctx, db.Query{
					Where: []db.Clause{
						{Query: "username = ?", Args: []any{"Alice"}},
						{Query: "score >= ?", Args: []any{5}},
					},
					Order: "id",
					Limit: 2,
				}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[1].Score).To(Equal(9))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "tests"$`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "score"}).
						AddRow(1, "Alice", 5))
			})

			It("should read the whole table", func() {
				var results []Test
				Expect(testDB.Find(ctx, db.Query{}, &results)).To(Succeed())
				Expect(results).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.Find(ctx, db.Query{
					Where: []db.Clause{{Query: "username = ?", Args: []any{"Invalid"}}},
				}, &results)
				Expect(err).To(MatchError(ContainSubstring("finding records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
