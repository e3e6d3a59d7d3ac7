package models

import "time"

// Folder is a named collection of files owned by one chat.
type Folder struct {
	ID           int64
	ChatID       int64
	Name         string
	Description  string
	Tags         string
	PasswordHash string
	CoverPath    string
	CreatedAt    time.Time
}

// Protected reports whether opening the folder requires a password.
func (f *Folder) Protected() bool {
	return f.PasswordHash != ""
}
