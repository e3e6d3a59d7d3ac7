package files

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, f *models.FolderFile) error {
	query := `INSERT INTO folder_files (folder_id, file_path, file_type, text_content) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, f.FolderID, f.Path, string(f.Type), f.Text)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	f.ID = id
	return nil
}

func (r *SQLiteRepository) UpdatePath(ctx context.Context, id int64, path string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE folder_files SET file_path = ? WHERE id = ?`, path, id)
	if err != nil {
		return fmt.Errorf("failed to update path: %w", err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) ListByFolder(ctx context.Context, folderID int64) ([]*models.FolderFile, error) {
	query := `SELECT id, folder_id, file_path, file_type, text_content FROM folder_files
		WHERE folder_id = ? ORDER BY id`
	return selectFiles(ctx, r.db, query, folderID)
}

func (r *SQLiteRepository) Get(ctx context.Context, folderID, id int64) (*models.FolderFile, error) {
	query := `SELECT id, folder_id, file_path, file_type, text_content FROM folder_files
		WHERE folder_id = ? AND id = ?`
	return scanFile(r.db.QueryRowContext(ctx, query, folderID, id))
}

func (r *SQLiteRepository) Delete(ctx context.Context, folderID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folder_files WHERE folder_id = ? AND id = ?`, folderID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}
