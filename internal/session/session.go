// Package session keeps the per-chat conversation state: the active scene
// and exactly one typed state value for it.
package session

import (
	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
	"github.com/dmitrijs2005/folderkeeper/internal/models"
)

type SceneName string

const (
	SceneNone            SceneName = ""
	SceneCreateFolder    SceneName = "CREATE_FOLDER"
	SceneOpenFolder      SceneName = "OPEN_FOLDER"
	SceneListFolders     SceneName = "LIST_FOLDERS"
	SceneSearchFolders   SceneName = "SEARCH_FOLDERS"
	SceneAddFiles        SceneName = "ADD_FILES"
	SceneEditFolder      SceneName = "EDIT_FOLDER"
	SceneDeleteFile      SceneName = "DELETE_FILE"
	SceneDeleteFolder    SceneName = "DELETE_FOLDER"
	SceneDownloadYouTube SceneName = "DOWNLOAD_YOUTUBE"
)

// Session is one chat's state. Only the pointer matching Scene is non-nil.
type Session struct {
	ChatID int64     `json:"chat_id"`
	Lang   i18n.Lang `json:"lang"`
	Scene  SceneName `json:"scene,omitempty"`

	Create       *CreateFolderState `json:"create,omitempty"`
	Open         *OpenFolderState   `json:"open,omitempty"`
	Search       *SearchState       `json:"search,omitempty"`
	AddFiles     *AddFilesState     `json:"add_files,omitempty"`
	Edit         *EditFolderState   `json:"edit,omitempty"`
	DeleteFile   *DeleteFileState   `json:"delete_file,omitempty"`
	DeleteFolder *DeleteFolderState `json:"delete_folder,omitempty"`
	YouTube      *YouTubeState      `json:"youtube,omitempty"`
}

func New(chatID int64, lang i18n.Lang) *Session {
	return &Session{ChatID: chatID, Lang: lang}
}

// Leave exits the active scene and drops its state.
func (s *Session) Leave() {
	s.Scene = SceneNone
	s.Create = nil
	s.Open = nil
	s.Search = nil
	s.AddFiles = nil
	s.Edit = nil
	s.DeleteFile = nil
	s.DeleteFolder = nil
	s.YouTube = nil
}

// Enter switches to scene, dropping whatever the previous scene held.
func (s *Session) Enter(scene SceneName) {
	s.Leave()
	s.Scene = scene
}

type CreateStep string

const (
	CreateName        CreateStep = "name"
	CreateFiles       CreateStep = "files"
	CreateDescription CreateStep = "description"
	CreateTags        CreateStep = "tags"
	CreatePassword    CreateStep = "password"
	CreateSetPassword CreateStep = "set_password"
	CreateCover       CreateStep = "cover"
)

type CreateFolderState struct {
	Step    CreateStep   `json:"step"`
	History []CreateStep `json:"history,omitempty"`

	Name         string               `json:"name,omitempty"`
	Files        []models.PendingFile `json:"files,omitempty"`
	Description  string               `json:"description,omitempty"`
	Tags         string               `json:"tags,omitempty"`
	PasswordHash string               `json:"password_hash,omitempty"`
}

// Advance moves to next and remembers the current step for Back.
func (c *CreateFolderState) Advance(next CreateStep) {
	c.History = append(c.History, c.Step)
	c.Step = next
}

// Back pops the previous step. It reports false at the first step.
func (c *CreateFolderState) Back() bool {
	if len(c.History) == 0 {
		return false
	}
	c.Step = c.History[len(c.History)-1]
	c.History = c.History[:len(c.History)-1]
	return true
}

// TargetStep is shared by the scenes that start by locating a folder and
// optionally unlocking it.
type TargetStep string

const (
	TargetName     TargetStep = "name"
	TargetPassword TargetStep = "password"
)

type OpenFolderState struct {
	Step     TargetStep `json:"step"`
	FolderID int64      `json:"folder_id,omitempty"`
}

type SearchState struct {
	Query string `json:"query,omitempty"`
}

type AddFilesStep string

const (
	AddFolder   AddFilesStep = "folder"
	AddPassword AddFilesStep = "password"
	AddFiles    AddFilesStep = "files"
)

type AddFilesState struct {
	Step       AddFilesStep         `json:"step"`
	FolderID   int64                `json:"folder_id,omitempty"`
	FolderName string               `json:"folder_name,omitempty"`
	Files      []models.PendingFile `json:"files,omitempty"`
}

type EditStep string

const (
	EditName           EditStep = "name"
	EditPassword       EditStep = "password"
	EditField          EditStep = "field"
	EditNewName        EditStep = "edit_name"
	EditNewDescription EditStep = "edit_description"
	EditNewTags        EditStep = "edit_tags"
	EditNewPassword    EditStep = "edit_password"
	EditNewCover       EditStep = "edit_cover"
)

type EditFolderState struct {
	Step     EditStep `json:"step"`
	FolderID int64    `json:"folder_id,omitempty"`
}

type DeleteFileStep string

const (
	DeleteFileName     DeleteFileStep = "name"
	DeleteFilePassword DeleteFileStep = "password"
	DeleteFileSelect   DeleteFileStep = "select_file"
)

type DeleteFileState struct {
	Step     DeleteFileStep `json:"step"`
	FolderID int64          `json:"folder_id,omitempty"`
}

type DeleteFolderStep string

const (
	DeleteFolderName     DeleteFolderStep = "name"
	DeleteFolderConfirm  DeleteFolderStep = "confirm"
	DeleteFolderPassword DeleteFolderStep = "password"
)

// DeleteFolderState asks for the password last so it can be checked by the
// delete itself and never has to be kept.
type DeleteFolderState struct {
	Step     DeleteFolderStep `json:"step"`
	FolderID int64            `json:"folder_id,omitempty"`
}

type YouTubeStep string

const (
	YouTubeURL     YouTubeStep = "url"
	YouTubeQuality YouTubeStep = "quality"
	YouTubeAction  YouTubeStep = "choose_action"
)

type YouTubeState struct {
	Step       YouTubeStep `json:"step"`
	URL        string      `json:"url,omitempty"`
	Quality    int         `json:"quality,omitempty"`
	FolderID   int64       `json:"folder_id,omitempty"`
	FolderName string      `json:"folder_name,omitempty"`
	FilePath   string      `json:"file_path,omitempty"`
}
