package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"password", []byte("s3cret-folder-pass")},
		{"unicode", []byte("رمز عبور")},
		{"empty", []byte{}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			WipeByteArray(tt.in)
			for i, v := range tt.in {
				assert.Zerof(t, v, "byte %d not wiped", i)
			}
		})
	}
}

func TestSentinels_MatchThroughLayers(t *testing.T) {
	repo := fmt.Errorf("folders.GetByName: %w", ErrorNotFound)
	svc := fmt.Errorf("open folder: %w", repo)

	assert.ErrorIs(t, svc, ErrorNotFound)
	assert.NotErrorIs(t, svc, ErrorAlreadyExists)

	for _, e := range []error{ErrorAlreadyExists, ErrorInternal, ErrorUnauthorized, ErrorValidation, ErrorTooLarge} {
		assert.True(t, errors.Is(fmt.Errorf("wrap: %w", e), e), e.Error())
	}
}
