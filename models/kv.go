package models

import "gorm.io/gorm"

// KVEntry is one key of a user's study data. Values are JSON documents
// stored verbatim, so a malformed value survives a round trip.
type KVEntry struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:idx_kv_user_key"`
	Key    string `gorm:"column:entry_key;not null;size:100;uniqueIndex:idx_kv_user_key"`
	Value  string `gorm:"type:text"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
