package repository

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:36;autoIncrement:false"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type Exercise struct {
	ID          uint64    `gorm:"primaryKey"` // insertion order within a log
	UserID      string    `gorm:"size:36;not null;index"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE"`
	Description string    `gorm:"type:text;not null"`
	Duration    int       `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null"`
}
