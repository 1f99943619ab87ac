package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/digirealtydrew93/tackettweb/internal/orchestrator/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StateDocument struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (StateDocument) TableName() string {
	return "state_documents"
}

type postgresStore struct {
	db *gorm.DB
}

func (p *postgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc StateDocument
	result := p.db.WithContext(ctx).Where("key = ?", key).First(&doc)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("PostgresStore.Get %s: %w", key, apperrors.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("PostgresStore.Get %s: %w", key, result.Error)
	}
	return []byte(doc.Value), nil
}

func (p *postgresStore) Put(ctx context.Context, key string, data []byte) error {
	doc := StateDocument{
		Key:   key,
		Value: string(data),
	}
	result := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc)
	if result.Error != nil {
		return fmt.Errorf("PostgresStore.Put %s: %w", key, result.Error)
	}
	return nil
}

func (p *postgresStore) Delete(ctx context.Context, key string) error {
	result := p.db.WithContext(ctx).Where("key = ?", key).Delete(&StateDocument{})
	if result.Error != nil {
		return fmt.Errorf("PostgresStore.Delete %s: %w", key, result.Error)
	}
	return nil
}

func NewPostgresStore(db *gorm.DB) DocumentStore {
	return &postgresStore{
		db: db,
	}
}
