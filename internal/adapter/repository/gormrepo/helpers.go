package gormrepo

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockroom-backend/internal/domain/ledger"
)

// forUpdate adds a row lock on MySQL. SQLite has no SELECT ... FOR UPDATE;
// its single-writer transaction lock already serializes the read-then-write
// sequences the lock exists for.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// translateBusy maps driver-level lock contention onto ledger.ErrConflict so
// callers see the same typed error on both dialects: SQLITE_BUSY/SQLITE_LOCKED
// from SQLite's single-writer lock, deadlocks and lock wait timeouts from
// MySQL row locking.
func translateBusy(err error) error {
	if err == nil {
		return nil
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) && (serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked) {
		return fmt.Errorf("%w: %v", ledger.ErrConflict, err)
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) && (merr.Number == 1205 || merr.Number == 1213) {
		return fmt.Errorf("%w: %v", ledger.ErrConflict, err)
	}
	return err
}
