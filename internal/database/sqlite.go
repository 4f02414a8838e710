package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectStore opens the sqlite-backed record store using the provided DSN.
// The default DSN is the in-memory form, so records last only as long as the
// process does.
func ConnectStore(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store dsn must not be empty")
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	return db, nil
}
