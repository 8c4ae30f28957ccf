package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// GormStore keeps one user's keys in the kv_entries table.
type GormStore struct {
	db     *gorm.DB
	userID uint
}

func NewGormStore(db *gorm.DB, userID uint) *GormStore {
	return &GormStore{db: db, userID: userID}
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.userID == 0 {
		return "", false, ErrNoUser
	}

	var entry models.KVEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND entry_key = ?", s.userID, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	if s.userID == 0 {
		return ErrNoUser
	}

	entry := models.KVEntry{UserID: s.userID, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}
