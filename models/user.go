package models

import "gorm.io/gorm"

// User represents an authenticated account. Subject is the JWT "sub" claim.
type User struct {
	gorm.Model
	Subject  string `gorm:"uniqueIndex;not null;size:200"`
	Nickname string `gorm:"size:100"`

	Entries []KVEntry `gorm:"foreignKey:UserID" json:"-"`
}
