// Package validate holds the input rules shared by the conversation layer
// and the folder service.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/folderkeeper/internal/common"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
	MaxTagsLength        = 255
	MaxTextLength        = 4000
)

var folderNameRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\x{0600}-\x{06FF} ]+$`)

// FolderName trims and checks a folder name: Latin letters, digits,
// underscore, hyphen, the Arabic/Persian block and plain spaces, 1..255 chars.
func FolderName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", fmt.Errorf("empty name: %w", common.ErrorValidation)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", fmt.Errorf("name too long: %w", common.ErrorValidation)
	}
	if !folderNameRe.MatchString(name) {
		return "", fmt.Errorf("name has forbidden characters: %w", common.ErrorValidation)
	}
	return name, nil
}

// Text removes control characters (keeping newlines and tabs), trims the
// result and enforces max runes. It returns ErrorValidation when the cleaned
// text is longer than max.
func Text(raw string, max int) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == utf8.RuneError {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)

	if max > 0 && utf8.RuneCountInString(cleaned) > max {
		return "", fmt.Errorf("text longer than %d: %w", max, common.ErrorValidation)
	}
	return cleaned, nil
}
