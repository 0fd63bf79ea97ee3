package db

import (
	"log"
	"time"

	"stockroom-backend/internal/domain/batch"
	"stockroom-backend/internal/domain/eventlog"
	"stockroom-backend/internal/domain/holder"
	"stockroom-backend/internal/domain/material"
	"stockroom-backend/internal/domain/withdrawal"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormConfig turns on TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver; the short-code allocator
// depends on that.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dial, gormConfig())
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

func OpenMySQL(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenSQLite opens the portable single-file store. SQLite allows one writer
// at a time, which is the serialization the ledger needs in this mode.
func OpenSQLite(path string) (*gorm.DB, error) {
	return OpenGormWithDialector(sqlite.Open(path))
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&holder.Holder{},
		&material.Material{},
		&batch.Batch{},
		&withdrawal.Withdrawal{},
		&eventlog.Event{},
	)
}
