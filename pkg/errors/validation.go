package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputBase validates the base name of an image artifact (the part
// before the format extension). It must be non-empty, free of control
// characters and must not end in a path separator.
func ValidateOutputBase(base string) error {
	if strings.TrimSpace(base) == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	for _, r := range base {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid control characters")
		}
	}

	if strings.HasSuffix(base, "/") || strings.HasSuffix(base, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output name %q is a directory", base)
	}

	return nil
}

// ValidateTabWidth checks a tab expansion width. Zero means tabs count as a
// single indentation character.
func ValidateTabWidth(n int) error {
	if n < 0 || n > 16 {
		return New(ErrCodeInvalidInput, "tab width must be between 0 and 16, got %d", n)
	}
	return nil
}
