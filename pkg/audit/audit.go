// Package audit records non-sensitive metadata about secure cell
// operations — which operation ran, when, and whether it succeeded —
// to a local sqlite database. It never sees a master secret,
// plaintext, or ciphertext; only the operation name and outcome.
package audit

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one row of the operation ledger.
type Entry struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Operation string `gorm:"index"`
	Succeeded bool
	ErrorText string
}

// Log is a handle to the audit database. A nil *Log is valid and
// silently discards every Record call, so callers can skip opening
// one when auditing isn't configured instead of branching on it at
// every call site.
type Log struct {
	db *gorm.DB
}

// Open creates or attaches to the sqlite database at path and ensures
// the operation ledger table exists.
func Open(path string) (*Log, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("audit: opening database: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("audit: migrating schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Record appends one entry for operation, with opErr nil on success.
// Write failures are swallowed rather than propagated: a broken audit
// log must never block the underlying crypto operation it's
// describing.
func (l *Log) Record(operation string, opErr error) {
	if l == nil {
		return
	}
	entry := Entry{
		CreatedAt: time.Now(),
		Operation: operation,
		Succeeded: opErr == nil,
	}
	if opErr != nil {
		entry.ErrorText = opErr.Error()
	}
	l.db.Create(&entry)
}

// Close releases the underlying database connection.
func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	sqlDB, err := l.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
