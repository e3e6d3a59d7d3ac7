// Package models contains the persisted domain types: folders, their file
// entries, and uploads that are still waiting to be stored.
package models
