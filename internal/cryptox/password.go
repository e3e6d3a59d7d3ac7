// Package cryptox wraps the one-way hashing used for folder passwords.
package cryptox

import (
	"fmt"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for folder passwords.
const PasswordCost = 10

// MinPasswordLength is the shortest password a folder accepts.
const MinPasswordLength = 4

// HashPassword validates and hashes a plaintext password. The plaintext
// buffer is wiped before returning.
func HashPassword(plain string) (string, error) {
	if len([]rune(plain)) < MinPasswordLength {
		return "", fmt.Errorf("password too short: %w", common.ErrorValidation)
	}

	b := []byte(plain)
	defer common.WipeByteArray(b)

	hash, err := bcrypt.GenerateFromPassword(b, PasswordCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches hash. An empty hash never
// matches; callers decide separately whether a folder is protected at all.
func CheckPassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	b := []byte(plain)
	defer common.WipeByteArray(b)

	return bcrypt.CompareHashAndPassword([]byte(hash), b) == nil
}
