// Package files persists folder entries (folder_files rows).
package files

import (
	"context"

	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

type Repository interface {
	// Create inserts f and fills in its ID.
	Create(ctx context.Context, f *models.FolderFile) error
	// UpdatePath resolves the on-disk path of a previously inserted row.
	UpdatePath(ctx context.Context, id int64, path string) error
	ListByFolder(ctx context.Context, folderID int64) ([]*models.FolderFile, error)
	Get(ctx context.Context, folderID, id int64) (*models.FolderFile, error)
	Delete(ctx context.Context, folderID, id int64) error
}
