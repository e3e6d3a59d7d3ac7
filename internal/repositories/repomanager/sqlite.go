package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/migrations"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/files"
	"github.com/dmitrijs2005/folderkeeper/internal/repositories/folders"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. The DSN must
// enable foreign keys (_pragma=foreign_keys(1)) for cascade deletes.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) DriverName() string { return DriverSQLite }

func (m *SQLiteRepositoryManager) Folders(db dbx.DBTX) folders.Repository {
	return folders.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Files(db dbx.DBTX) files.Repository {
	return files.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, migrations.SQLiteDir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
