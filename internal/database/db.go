package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialect names as reported by gorm.Dialector.Name.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Indexes the seed tool drops and recreates after a bulk load.
var SeedIndexes = []string{"idx_company", "idx_status", "idx_date_applied", "idx_deleted_at"}

var allIndexes = []string{
	"idx_company", "idx_role", "idx_status",
	"idx_date_applied", "idx_next_action_date", "idx_deleted_at",
}

// Dialector picks the gorm driver for a connection string. PostgreSQL URLs and
// keyword DSNs go to the postgres driver; anything else is a SQLite file path,
// with an optional sqlite:// or sqlite:/// prefix.
func Dialector(databaseURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"),
		strings.Contains(databaseURL, "host="):
		return postgres.Open(databaseURL)
	}
	path := strings.TrimPrefix(databaseURL, "sqlite:///")
	path = strings.TrimPrefix(path, "sqlite://")
	return sqlite.Open(path)
}

// Connect opens the store and brings the schema up to date.
func Connect(databaseURL string, log *zap.Logger) (*gorm.DB, error) {
	db, err := Open(Dialector(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Info("database connection established", zap.String("dialect", db.Dialector.Name()))

	log.Info("running migrations")
	if err := Migrate(db, log); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Open wraps gorm.Open with the settings every caller shares: UTC timestamps
// and a quiet SQL logger.
func Open(d gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(d, &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
	})
}

// Migrate creates the applications table when missing. On SQLite it also adds
// columns introduced after the first release, leaving existing rows untouched.
// Safe to run on every startup.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	m := db.Migrator()
	app := &models.Application{}

	if !m.HasTable(app) {
		log.Info("creating table", zap.String("table", "applications"))
		if err := m.CreateTable(app); err != nil {
			return err
		}
	}

	if db.Dialector.Name() == DialectSQLite {
		for _, field := range []string{"NextActionDate", "DeletedAt"} {
			if m.HasColumn(app, field) {
				continue
			}
			log.Info("adding column", zap.String("field", field))
			if err := m.AddColumn(app, field); err != nil {
				return fmt.Errorf("add column %s: %w", field, err)
			}
		}
	}

	return EnsureIndexes(db, allIndexes...)
}

// EnsureIndexes creates any of the named indexes that do not exist yet.
func EnsureIndexes(db *gorm.DB, names ...string) error {
	m := db.Migrator()
	app := &models.Application{}
	for _, name := range names {
		if m.HasIndex(app, name) {
			continue
		}
		if err := m.CreateIndex(app, name); err != nil {
			return fmt.Errorf("create index %s: %w", name, err)
		}
	}
	return nil
}

// RebuildIndexes drops and recreates the named indexes.
func RebuildIndexes(db *gorm.DB, names ...string) error {
	m := db.Migrator()
	app := &models.Application{}
	for _, name := range names {
		if m.HasIndex(app, name) {
			if err := m.DropIndex(app, name); err != nil {
				return fmt.Errorf("drop index %s: %w", name, err)
			}
		}
	}
	return EnsureIndexes(db, names...)
}
