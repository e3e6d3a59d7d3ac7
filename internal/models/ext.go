package models

import (
	"path/filepath"
	"strings"
)

var mimeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
	"audio/mpeg": ".mp3",
	"audio/ogg":  ".ogg",
}

// Extension picks the on-disk extension for an upload: MIME type first, then
// the original file name, then a default per type.
func (p PendingFile) Extension() string {
	if ext, ok := mimeExtensions[strings.ToLower(p.MimeType)]; ok {
		return ext
	}
	if ext := strings.ToLower(filepath.Ext(p.FileName)); ext != "" && len(ext) <= 8 {
		return ext
	}
	switch p.Type {
	case FileTypeAnimation, FileTypeVideo:
		return ".mp4"
	case FileTypePhoto:
		return ".jpg"
	case FileTypeAudio:
		return ".mp3"
	case FileTypeVoice:
		return ".ogg"
	case FileTypeSticker:
		if p.Animated {
			return ".tgs"
		}
		return ".webp"
	}
	return ".bin"
}
