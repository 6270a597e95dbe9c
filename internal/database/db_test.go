package database

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/justsurfingit/jobtrackr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTempSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	t.Cleanup(func() {
		if raw, err := db.DB(); err == nil {
			_ = raw.Close()
		}
	})
	return db
}

func TestDialector(t *testing.T) {
	tests := []struct {
		url     string
		dialect string
		dsn     string
	}{
		{"sqlite:///./jobtrackr.db", DialectSQLite, "./jobtrackr.db"},
		{"sqlite:////var/data/jobs.db", DialectSQLite, "/var/data/jobs.db"},
		{"sqlite://jobs.db", DialectSQLite, "jobs.db"},
		{"jobs.db", DialectSQLite, "jobs.db"},
		{"postgres://u:p@localhost:5432/jobs", DialectPostgres, ""},
		{"postgresql://u:p@localhost/jobs", DialectPostgres, ""},
		{"host=localhost user=postgres dbname=jobs sslmode=disable", DialectPostgres, ""},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			d := Dialector(tt.url)
			assert.Equal(t, tt.dialect, d.Name())
			if tt.dsn != "" {
				sd, ok := d.(*sqlite.Dialector)
				require.True(t, ok)
				assert.Equal(t, tt.dsn, sd.DSN)
			}
		})
	}
}

func TestMigrate_FreshDatabase(t *testing.T) {
	db := openTempSQLite(t)

	require.NoError(t, Migrate(db, zap.NewNop()))

	m := db.Migrator()
	app := &models.Application{}
	assert.True(t, m.HasTable(app))
	for _, col := range []string{"company", "role", "location", "url", "status", "date_applied", "next_action_date", "notes", "created_at", "deleted_at"} {
		assert.True(t, m.HasColumn(app, col), col)
	}
	for _, idx := range allIndexes {
		assert.True(t, m.HasIndex(app, idx), idx)
	}
}

func TestMigrate_AddsMissingColumnsToLegacyTable(t *testing.T) {
	db := openTempSQLite(t)

	require.NoError(t, db.Exec(`
		CREATE TABLE applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			company VARCHAR(200) NOT NULL,
			role VARCHAR(200) NOT NULL,
			location VARCHAR(200),
			url VARCHAR(500),
			status VARCHAR(50) NOT NULL,
			date_applied DATE NOT NULL,
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO applications (company, role, status, date_applied) VALUES (?, ?, ?, ?)`,
		"Legacy Corp", "Engineer", "applied", "2024-01-01",
	).Error)

	m := db.Migrator()
	app := &models.Application{}
	assert.False(t, m.HasColumn(app, "next_action_date"))
	assert.False(t, m.HasColumn(app, "deleted_at"))

	require.NoError(t, Migrate(db, zap.NewNop()))
	// second run is a no-op
	require.NoError(t, Migrate(db, zap.NewNop()))

	assert.True(t, m.HasColumn(app, "next_action_date"))
	assert.True(t, m.HasColumn(app, "deleted_at"))

	var rows []struct {
		Company   string
		DeletedAt *string
	}
	require.NoError(t, db.Raw(`SELECT company, deleted_at FROM applications`).Scan(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Legacy Corp", rows[0].Company)
	assert.Nil(t, rows[0].DeletedAt)
}

func TestRebuildIndexes(t *testing.T) {
	db := openTempSQLite(t)
	require.NoError(t, Migrate(db, zap.NewNop()))

	m := db.Migrator()
	app := &models.Application{}
	require.NoError(t, m.DropIndex(app, "idx_status"))
	assert.False(t, m.HasIndex(app, "idx_status"))

	require.NoError(t, RebuildIndexes(db, SeedIndexes...))

	for _, idx := range SeedIndexes {
		assert.True(t, m.HasIndex(app, idx), idx)
	}
}
