package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Elias-Manica/push-notifications-poc/internal/client/storage"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type record struct {
	Store string `gorm:"primaryKey;size:64"`
	ID    string `gorm:"primaryKey;size:64"`
	Value []byte `gorm:"not null"`
}

func (record) TableName() string {
	return "records"
}

// busyTimeout makes concurrent handles on the same file wait for each other's locks.
const busyTimeout = "_busy_timeout=5000"

type Backend struct {
	path string

	mu       sync.Mutex
	migrated bool
}

func New(path string) *Backend {
	return &Backend{path: path}
}

func (b *Backend) Get(ctx context.Context, store, key string, dst any) error {
	return b.with(
		ctx, func(db *gorm.DB) error {
			rec := record{}
			err := db.Where("store = ? AND id = ?", store, key).Take(&rec).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return storage.ErrNotFound
			} else if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
			}
			return json.Unmarshal(rec.Value, dst)
		},
	)
}

func (b *Backend) Put(ctx context.Context, store, key string, val any) error {
	payload, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return b.with(
		ctx, func(db *gorm.DB) error {
			err := db.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(&record{Store: store, ID: key, Value: payload}).Error
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
			}
			return nil
		},
	)
}

func (b *Backend) Delete(ctx context.Context, store, key string) error {
	return b.with(
		ctx, func(db *gorm.DB) error {
			err := db.Where("store = ? AND id = ?", store, key).Delete(&record{}).Error
			if err != nil {
				return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
			}
			return nil
		},
	)
}

// with opens the database, creates the schema on first use and closes it after fn.
func (b *Backend) with(ctx context.Context, fn func(db *gorm.DB) error) error {
	db, err := gorm.Open(
		sqlite.Open(b.path+"?"+busyTimeout), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			zap.L().Debug("failed to close storage", zap.String("path", b.path), zap.Error(err))
		}
	}()

	if err = b.migrate(db); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	return fn(db.WithContext(ctx))
}

// migrate creates the schema once per Backend. Callers racing on a fresh file
// wait for the first one instead of creating the table twice.
func (b *Backend) migrate(db *gorm.DB) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.migrated {
		return nil
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return err
	}
	b.migrated = true
	return nil
}
