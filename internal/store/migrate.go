package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-retail-pos/internal/models"
)

// schemaMigration records an applied migration version. Migrations are
// forward-only: a version is applied at most once and never reverted.
type schemaMigration struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string { return "schema_migrations" }

var migrations = []struct {
	version int
	apply   func(tx *gorm.DB) error
}{
	// v1: base schema.
	{1, func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&models.User{},
			&models.Contact{},
			&models.Product{},
			&models.Sale{},
			&models.SaleLine{},
			&models.Purchase{},
			&models.PurchaseLine{},
			&models.Setting{},
		)
	}},
	// v2: split purchase costing out of the single cost price. Databases
	// created at v1 of the desktop schema lack these columns; fresh
	// databases already have them from AutoMigrate, so guard each add.
	{2, func(tx *gorm.DB) error {
		m := tx.Migrator()
		for _, col := range []string{"bulk_cost", "unit_cost"} {
			if !m.HasColumn(&models.Product{}, col) {
				if err := m.AddColumn(&models.Product{}, col); err != nil {
					return err
				}
			}
		}
		if !m.HasColumn(&models.PurchaseLine{}, "purchase_mode") {
			return m.AddColumn(&models.PurchaseLine{}, "purchase_mode")
		}
		return nil
	}},
}

// migrate applies every migration not yet recorded in schema_migrations,
// each inside its own transaction. Any failure is fatal to startup.
func (s *Store) migrate() error {
	if err := s.db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	for _, m := range migrations {
		var applied int64
		if err := s.db.Model(&schemaMigration{}).Where("version = ?", m.version).Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: m.version, AppliedAt: time.Now()}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
	}
	return nil
}
