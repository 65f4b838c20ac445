package database

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/sorsu-bulan/campus-content-api/pkg/config"
)

// NewSQLite opens the single-file content database. The file is created on
// first use; a busy timeout keeps concurrent writers from failing outright.
func NewSQLite(cfg config.StorageConfig) (*sqlx.DB, error) {
	dsn := cfg.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; more connections only add lock churn.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
