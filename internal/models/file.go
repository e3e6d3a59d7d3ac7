package models

// FileType is the kind of content a folder entry holds.
type FileType string

const (
	FileTypeDocument  FileType = "document"
	FileTypePhoto     FileType = "photo"
	FileTypeVideo     FileType = "video"
	FileTypeAnimation FileType = "animation"
	FileTypeAudio     FileType = "audio"
	FileTypeVoice     FileType = "voice"
	FileTypeSticker   FileType = "sticker"
	FileTypeText      FileType = "text"
)

// PendingPath marks a row whose payload has not finished downloading.
const PendingPath = "pending"

// Valid reports whether t is one of the known types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeDocument, FileTypePhoto, FileTypeVideo, FileTypeAnimation,
		FileTypeAudio, FileTypeVoice, FileTypeSticker, FileTypeText:
		return true
	}
	return false
}

// FolderFile is one entry of a folder. Text entries have no path.
type FolderFile struct {
	ID       int64
	FolderID int64
	Path     string
	Type     FileType
	Text     string
}

// Resolved reports whether the payload is on disk.
func (f *FolderFile) Resolved() bool {
	return f.Type == FileTypeText || (f.Path != "" && f.Path != PendingPath)
}

// PendingFile is an upload received during a conversation but not yet stored.
type PendingFile struct {
	Type     FileType `json:"type"`
	FileID   string   `json:"file_id,omitempty"`
	MimeType string   `json:"mime_type,omitempty"`
	FileName string   `json:"file_name,omitempty"`
	Size     int64    `json:"size,omitempty"`
	Animated bool     `json:"animated,omitempty"`
	Text     string   `json:"text,omitempty"`
}
