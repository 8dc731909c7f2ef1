package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrKeyExists   = errors.New("key already exists")
)

// Entry is one persisted key with its JSON-encoded value. The whole
// document is rewritten on every mutation; there is no partial update.
type Entry struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

type KVDAO struct {
	db *gorm.DB
}

func NewKVDAO(db *gorm.DB) *KVDAO {
	return &KVDAO{
		db: db,
	}
}

func (d *KVDAO) Get(ctx context.Context, key string) (string, error) {
	var entry Entry

	result := d.db.WithContext(ctx).First(&entry, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}

		return "", result.Error
	}

	return entry.Value, nil
}

// Set writes the value under key, overwriting any previous value.
func (d *KVDAO) Set(ctx context.Context, key, value string) error {
	entry := Entry{
		Key:   key,
		Value: value,
	}

	result := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)

	return result.Error
}

// Insert writes the value only if the key is not present yet.
func (d *KVDAO) Insert(ctx context.Context, key, value string) error {
	entry := Entry{
		Key:   key,
		Value: value,
	}

	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return ErrKeyExists
		}

		return result.Error
	}

	return nil
}

func (d *KVDAO) Remove(ctx context.Context, key string) error {
	result := d.db.WithContext(ctx).Delete(&Entry{}, "key = ?", key)

	return result.Error
}
