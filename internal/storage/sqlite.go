package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the single-table key-value model behind the sqlite backend.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName implements gorm's table naming override.
func (Entry) TableName() string {
	return "kv_entries"
}

// SQLiteStore persists values in a local sqlite file via GORM.
type SQLiteStore struct {
	conn *gorm.DB
}

// NewSQLiteStore migrates the entry table and returns the store.
func NewSQLiteStore(conn *gorm.DB) (*SQLiteStore, error) {
	if conn == nil {
		return nil, fmt.Errorf("gorm connection required")
	}
	if err := conn.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrating kv entries: %w", err)
	}
	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	err := s.conn.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sqlite get: %w", err)
	}
	return entry.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value}
	err := s.conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("sqlite set: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := s.conn.WithContext(ctx).Delete(&Entry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("sqlite delete: %w", err)
	}
	return nil
}
