// Package folders persists folder records. Two implementations share one
// contract: PostgreSQL (pgx) and SQLite (modernc).
package folders

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

// Field names a single editable folder column.
type Field string

const (
	FieldName        Field = "folder_name"
	FieldDescription Field = "description"
	FieldTags        Field = "tags"
	FieldPassword    Field = "password_hash"
	FieldCover       Field = "cover_file_path"
)

// Valid reports whether f is an editable column.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldDescription, FieldTags, FieldPassword, FieldCover:
		return true
	}
	return false
}

type Repository interface {
	// Create inserts f and fills in its ID and CreatedAt. A duplicate
	// (chat_id, folder_name) yields common.ErrorAlreadyExists.
	Create(ctx context.Context, f *models.Folder) error
	GetByID(ctx context.Context, chatID, id int64) (*models.Folder, error)
	GetByName(ctx context.Context, chatID int64, name string) (*models.Folder, error)
	ListNames(ctx context.Context, chatID int64) ([]string, error)
	// Search matches query against name, description, tags and text entries.
	Search(ctx context.Context, chatID int64, query string) ([]string, error)
	UpdateField(ctx context.Context, chatID, id int64, field Field, value string) error
	Delete(ctx context.Context, chatID, id int64) error
}

// likePattern escapes LIKE wildcards in q and wraps it in %...%.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
