package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.Folder) error {
	query := `
		INSERT INTO folders (chat_id, folder_name, description, tags, password_hash, cover_file_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		f.ChatID, f.Name, f.Description, f.Tags, f.PasswordHash, f.CoverPath).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, chatID, id int64) (*models.Folder, error) {
	query := `SELECT id, chat_id, folder_name, description, tags, password_hash, cover_file_path, created_at
		FROM folders WHERE chat_id = $1 AND id = $2`
	return scanFolder(r.db.QueryRowContext(ctx, query, chatID, id))
}

func (r *PostgresRepository) GetByName(ctx context.Context, chatID int64, name string) (*models.Folder, error) {
	query := `SELECT id, chat_id, folder_name, description, tags, password_hash, cover_file_path, created_at
		FROM folders WHERE chat_id = $1 AND folder_name = $2`
	return scanFolder(r.db.QueryRowContext(ctx, query, chatID, name))
}

func (r *PostgresRepository) ListNames(ctx context.Context, chatID int64) ([]string, error) {
	query := `SELECT folder_name FROM folders WHERE chat_id = $1 ORDER BY created_at DESC, id DESC`
	return selectNames(ctx, r.db, query, chatID)
}

func (r *PostgresRepository) Search(ctx context.Context, chatID int64, q string) ([]string, error) {
	query := `
		SELECT f.folder_name FROM folders f
		WHERE f.chat_id = $1 AND (
			f.folder_name ILIKE $2 ESCAPE '\'
			OR f.description ILIKE $2 ESCAPE '\'
			OR f.tags ILIKE $2 ESCAPE '\'
			OR EXISTS (
				SELECT 1 FROM folder_files ff
				WHERE ff.folder_id = f.id AND ff.text_content ILIKE $2 ESCAPE '\'
			)
		)
		ORDER BY f.created_at DESC, f.id DESC
	`
	return selectNames(ctx, r.db, query, chatID, likePattern(q))
}

func (r *PostgresRepository) UpdateField(ctx context.Context, chatID, id int64, field Field, value string) error {
	if !field.Valid() {
		return fmt.Errorf("field %q: %w", field, common.ErrorValidation)
	}
	// field is whitelisted above
	query := fmt.Sprintf(`UPDATE folders SET %s = $1 WHERE chat_id = $2 AND id = $3`, field)
	res, err := r.db.ExecContext(ctx, query, value, chatID, id)
	if err != nil {
		return mapPgError(err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, chatID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE chat_id = $1 AND id = $2`, chatID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("folder name taken: %w", common.ErrorAlreadyExists)
	}
	return fmt.Errorf("db error: %w", err)
}

func scanFolder(row *sql.Row) (*models.Folder, error) {
	f := &models.Folder{}
	err := row.Scan(&f.ID, &f.ChatID, &f.Name, &f.Description, &f.Tags, &f.PasswordHash, &f.CoverPath, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

func selectNames(ctx context.Context, db dbx.DBTX, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select folders: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
