package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one stored value in the SQL backend.
type Record struct {
	KitchenID string    `gorm:"primaryKey;size:64" json:"kitchen_id"`
	Key       string    `gorm:"primaryKey;column:record_key;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Record) TableName() string {
	return "kitchen_records"
}

// GormBackend stores records in a SQL table through GORM. It works with the
// sqlite and postgres dialects.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend wraps an open database. The kitchen_records table must exist;
// see database.RunMigrations.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (g *GormBackend) Get(ctx context.Context, namespace, key string) (string, error) {
	var rec Record
	err := g.db.WithContext(ctx).
		Where("kitchen_id = ? AND record_key = ?", namespace, key).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, classifySQLError(err))
	}
	return rec.Value, nil
}

func (g *GormBackend) Set(ctx context.Context, namespace, key, value string) error {
	rec := Record{
		KitchenID: namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kitchen_id"}, {Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, classifySQLError(err))
	}
	return nil
}

func (g *GormBackend) Delete(ctx context.Context, namespace, key string) error {
	err := g.db.WithContext(ctx).
		Where("kitchen_id = ? AND record_key = ?", namespace, key).
		Delete(&Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, classifySQLError(err))
	}
	return nil
}

func (g *GormBackend) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return classifySQLError(err)
	}
	return nil
}

// Postgres error codes that mean the write can't fit.
var quotaCodes = map[pq.ErrorCode]bool{
	"53100": true, // disk_full
	"54000": true, // program_limit_exceeded
}

func classifySQLError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && quotaCodes[pqErr.Code] {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	// SQLITE_FULL
	if strings.Contains(err.Error(), "database or disk is full") {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return classifyNetError(err)
}
