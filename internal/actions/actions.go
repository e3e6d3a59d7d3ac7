// Package actions encodes and parses the callback tokens attached to inline
// buttons: ACTION_<id>, ACTION_<folderId>_<fileId>, PAGE_<n> and the
// parameterless YouTube choices.
package actions

import (
	"errors"
	"strconv"
	"strings"
)

type Kind string

const (
	Details        Kind = "DETAILS"
	Add            Kind = "ADD"
	Share          Kind = "SHARE"
	Delete         Kind = "DELETE"
	Edit           Kind = "EDIT"
	DeleteFile     Kind = "DELETE_FILE"
	Page           Kind = "PAGE"
	SearchPage     Kind = "SEARCH_PAGE"
	YouTubeSend    Kind = "YT_SEND"
	YouTubeKeep    Kind = "YT_KEEP"
	DeleteFileItem Kind = "DELETE_FILE_ITEM"
)

var ErrInvalidToken = errors.New("invalid callback token")

// Action is a decoded callback token. FileID is set only for DeleteFileItem;
// ID carries the folder id or the page number.
type Action struct {
	Kind   Kind
	ID     int64
	FileID int64
}

// prefixes are tried in order; longer prefixes sharing a stem come first so
// DELETE_FILE_ never parses as DELETE_.
var prefixes = []Kind{DeleteFile, SearchPage, Details, Add, Share, Delete, Edit, Page}

// Encode renders a as a callback token.
func Encode(a Action) string {
	switch a.Kind {
	case YouTubeSend, YouTubeKeep:
		return string(a.Kind)
	case DeleteFileItem:
		return string(DeleteFile) + "_" + strconv.FormatInt(a.ID, 10) + "_" + strconv.FormatInt(a.FileID, 10)
	}
	return string(a.Kind) + "_" + strconv.FormatInt(a.ID, 10)
}

func Folder(kind Kind, folderID int64) string {
	return Encode(Action{Kind: kind, ID: folderID})
}

func FileItem(folderID, fileID int64) string {
	return Encode(Action{Kind: DeleteFileItem, ID: folderID, FileID: fileID})
}

// Parse decodes a callback token.
func Parse(data string) (Action, error) {
	switch Kind(data) {
	case YouTubeSend, YouTubeKeep:
		return Action{Kind: Kind(data)}, nil
	}

	for _, p := range prefixes {
		rest, ok := strings.CutPrefix(data, string(p)+"_")
		if !ok {
			continue
		}
		if p == DeleteFile {
			if folder, file, ok := strings.Cut(rest, "_"); ok {
				fid, err1 := parseID(folder)
				fileID, err2 := parseID(file)
				if err1 != nil || err2 != nil {
					return Action{}, ErrInvalidToken
				}
				return Action{Kind: DeleteFileItem, ID: fid, FileID: fileID}, nil
			}
		}
		id, err := parseID(rest)
		if err != nil {
			return Action{}, ErrInvalidToken
		}
		return Action{Kind: p, ID: id}, nil
	}
	return Action{}, ErrInvalidToken
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}
