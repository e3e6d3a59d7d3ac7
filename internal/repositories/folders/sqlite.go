package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/dbx"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// created_at is stored as unix seconds.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, f *models.Folder) error {
	created := r.now().UTC().Truncate(time.Second)
	query := `INSERT INTO folders (chat_id, folder_name, description, tags, password_hash, cover_file_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		f.ChatID, f.Name, f.Description, f.Tags, f.PasswordHash, f.CoverPath, created.Unix())
	if err != nil {
		return mapSQLiteError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	f.ID = id
	f.CreatedAt = created
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, chatID, id int64) (*models.Folder, error) {
	query := `SELECT id, chat_id, folder_name, description, tags, password_hash, cover_file_path, created_at
		FROM folders WHERE chat_id = ? AND id = ?`
	return scanSQLiteFolder(r.db.QueryRowContext(ctx, query, chatID, id))
}

func (r *SQLiteRepository) GetByName(ctx context.Context, chatID int64, name string) (*models.Folder, error) {
	query := `SELECT id, chat_id, folder_name, description, tags, password_hash, cover_file_path, created_at
		FROM folders WHERE chat_id = ? AND folder_name = ?`
	return scanSQLiteFolder(r.db.QueryRowContext(ctx, query, chatID, name))
}

func (r *SQLiteRepository) ListNames(ctx context.Context, chatID int64) ([]string, error) {
	query := `SELECT folder_name FROM folders WHERE chat_id = ? ORDER BY created_at DESC, id DESC`
	return selectNames(ctx, r.db, query, chatID)
}

func (r *SQLiteRepository) Search(ctx context.Context, chatID int64, q string) ([]string, error) {
	query := `
		SELECT f.folder_name FROM folders f
		WHERE f.chat_id = ?1 AND (
			f.folder_name LIKE ?2 ESCAPE '\'
			OR f.description LIKE ?2 ESCAPE '\'
			OR f.tags LIKE ?2 ESCAPE '\'
			OR EXISTS (
				SELECT 1 FROM folder_files ff
				WHERE ff.folder_id = f.id AND ff.text_content LIKE ?2 ESCAPE '\'
			)
		)
		ORDER BY f.created_at DESC, f.id DESC
	`
	return selectNames(ctx, r.db, query, chatID, likePattern(q))
}

func (r *SQLiteRepository) UpdateField(ctx context.Context, chatID, id int64, field Field, value string) error {
	if !field.Valid() {
		return fmt.Errorf("field %q: %w", field, common.ErrorValidation)
	}
	query := fmt.Sprintf(`UPDATE folders SET %s = ? WHERE chat_id = ? AND id = ?`, field)
	res, err := r.db.ExecContext(ctx, query, value, chatID, id)
	if err != nil {
		return mapSQLiteError(err)
	}
	return expectOne(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, chatID, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE chat_id = ? AND id = ?`, chatID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func mapSQLiteError(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return fmt.Errorf("folder name taken: %w", common.ErrorAlreadyExists)
	}
	return fmt.Errorf("db error: %w", err)
}

func scanSQLiteFolder(row *sql.Row) (*models.Folder, error) {
	var created int64
	f := &models.Folder{}
	err := row.Scan(&f.ID, &f.ChatID, &f.Name, &f.Description, &f.Tags, &f.PasswordHash, &f.CoverPath, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	f.CreatedAt = time.Unix(created, 0).UTC()
	return f, nil
}
