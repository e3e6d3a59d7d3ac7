package files

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
	"github.com/dmitrijs2005/folderkeeper/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestSQLite_PlaceholderThenResolve(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	res, err := db.Exec(`INSERT INTO folders (chat_id, folder_name, created_at) VALUES (42, 'Trip2024', 0)`)
	require.NoError(t, err)
	folderID, err := res.LastInsertId()
	require.NoError(t, err)

	f := &models.FolderFile{FolderID: folderID, Path: models.PendingPath, Type: models.FileTypePhoto}
	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.Get(ctx, folderID, f.ID)
	require.NoError(t, err)
	require.False(t, got.Resolved())

	require.NoError(t, repo.UpdatePath(ctx, f.ID, "/u/42/1_1.jpg"))
	got, err = repo.Get(ctx, folderID, f.ID)
	require.NoError(t, err)
	require.True(t, got.Resolved())
	require.Equal(t, "/u/42/1_1.jpg", got.Path)
}

func TestSQLite_CascadeAndDelete(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	res, err := db.Exec(`INSERT INTO folders (chat_id, folder_name, created_at) VALUES (1, 'A', 0)`)
	require.NoError(t, err)
	folderID, _ := res.LastInsertId()

	text := &models.FolderFile{FolderID: folderID, Type: models.FileTypeText, Text: "note"}
	doc := &models.FolderFile{FolderID: folderID, Type: models.FileTypeDocument, Path: "/x/1_2.pdf"}
	require.NoError(t, repo.Create(ctx, text))
	require.NoError(t, repo.Create(ctx, doc))

	list, err := repo.ListByFolder(ctx, folderID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "note", list[0].Text)

	require.NoError(t, repo.Delete(ctx, folderID, text.ID))
	require.True(t, errors.Is(repo.Delete(ctx, folderID, text.ID), common.ErrorNotFound))

	_, err = db.Exec(`DELETE FROM folders WHERE id = ?`, folderID)
	require.NoError(t, err)

	list, err = repo.ListByFolder(ctx, folderID)
	require.NoError(t, err)
	require.Empty(t, list, "foreign key cascade removes entries")
}

func TestSQLite_ForeignKeyEnforced(t *testing.T) {
	repo := NewSQLiteRepository(testutil.NewSQLiteDB(t))
	err := repo.Create(context.Background(), &models.FolderFile{FolderID: 999, Type: models.FileTypeText})
	require.Error(t, err)
}
