package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

// PostgresRepository implements file storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.FolderFile) error {
	query := `INSERT INTO folder_files (folder_id, file_path, file_type, text_content)
		VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, f.FolderID, f.Path, string(f.Type), f.Text).Scan(&f.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePath(ctx context.Context, id int64, path string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE folder_files SET file_path = $1 WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("failed to update path: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) ListByFolder(ctx context.Context, folderID int64) ([]*models.FolderFile, error) {
	query := `SELECT id, folder_id, file_path, file_type, text_content FROM folder_files
		WHERE folder_id = $1 ORDER BY id`
	return selectFiles(ctx, r.db, query, folderID)
}

func (r *PostgresRepository) Get(ctx context.Context, folderID, id int64) (*models.FolderFile, error) {
	query := `SELECT id, folder_id, file_path, file_type, text_content FROM folder_files
		WHERE folder_id = $1 AND id = $2`
	return scanFile(r.db.QueryRowContext(ctx, query, folderID, id))
}

func (r *PostgresRepository) Delete(ctx context.Context, folderID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folder_files WHERE folder_id = $1 AND id = $2`, folderID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func scanFile(row *sql.Row) (*models.FolderFile, error) {
	var (
		f   models.FolderFile
		typ string
	)
	err := row.Scan(&f.ID, &f.FolderID, &f.Path, &typ, &f.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	f.Type = models.FileType(typ)
	return &f, nil
}

func selectFiles(ctx context.Context, db dbx.DBTX, query string, args ...any) ([]*models.FolderFile, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []*models.FolderFile
	for rows.Next() {
		var (
			item models.FolderFile
			typ  string
		)
		if err := rows.Scan(&item.ID, &item.FolderID, &item.Path, &typ, &item.Text); err != nil {
			return nil, err
		}
		item.Type = models.FileType(typ)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func expectOne(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	switch ra {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
}
