// Package db provides database connection management and schema bootstrap.
package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "nexus_backend/internal/feature/auth/domain/entity"
	projectentity "nexus_backend/internal/feature/projects/domain/entity"
)

// retryInterval is the wait between connection attempts.
const retryInterval = 3 * time.Second

// Opener opens a gorm.DB for the given connection URL.
// It exists so connection logic can be tested without a real database.
type Opener func(url string) (*gorm.DB, error)

// Open connects to the database identified by url.
// postgres:// and postgresql:// URLs use the Postgres driver; anything else
// is treated as a SQLite file path (the development default).
// TranslateError is enabled so unique-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func Open(url string) (*gorm.DB, error) {
	return gorm.Open(Dialector(url), &gorm.Config{TranslateError: true})
}

// Dialector selects the GORM driver for the given connection URL.
func Dialector(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url)
	}
	return sqlite.Open(url)
}

// ConnectWithRetry opens a connection using the given opener, retrying until
// it succeeds or the timeout elapses. Container orchestration often starts
// the app before the database accepts connections.
func ConnectWithRetry(url string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(url)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// AutoMigrate creates or updates the users and projects tables from the
// entity definitions. It is idempotent and safe to run at every startup;
// there is no separate migration tooling.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&projectentity.Project{},
	)
}
