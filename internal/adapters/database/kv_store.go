package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"prayertimes.app/pkg/errors"
)

// EntryModel represents one persisted key-value pair
type EntryModel struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:191"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (EntryModel) TableName() string {
	return "kv_entries"
}

// KeyValueStoreAdapter implements the KeyValueStore port using GORM
type KeyValueStoreAdapter struct {
	db *gorm.DB
}

func NewKeyValueStoreAdapter(db *gorm.DB) *KeyValueStoreAdapter {
	return &KeyValueStoreAdapter{db: db}
}

// Get retrieves the value stored under key
func (s *KeyValueStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("store key cannot be empty")
	}

	var model EntryModel
	result := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.NewNotFoundError("key not found")
		}
		return "", errors.NewStorageError("failed to read key", result.Error)
	}

	return model.Value, nil
}

// Set inserts or overwrites the value stored under key
func (s *KeyValueStoreAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	model := EntryModel{Key: key, Value: value}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewStorageError("failed to write key", result.Error)
	}

	return nil
}

// Ping checks the underlying connection
func (s *KeyValueStoreAdapter) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.NewStorageError("get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

func (s *KeyValueStoreAdapter) Close() error {
	return Close(s.db)
}

func (s *KeyValueStoreAdapter) GetStoreName() string {
	return "database:" + s.db.Dialector.Name()
}
