package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the handle to the embedded database. The application constructs
// exactly one and passes it to whoever needs it; the design assumes a single
// active writer (one local process, one user-initiated operation at a time).
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path, runs the versioned
// migrations, seeds default configuration, and seeds demo contacts/products
// when the catalog is empty.
func Open(path string) (*Store, error) {
	return open(path, true)
}

func open(path string, demoData bool) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// One connection keeps SQLite honest about the single-writer model and
	// makes ":memory:" databases behave.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	if demoData {
		if err := s.seedDemoData(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
