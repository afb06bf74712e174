package errors

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// maxFieldLength bounds field names coming from chart documents.
const maxFieldLength = 256

// fieldNameRegex matches data field names usable in an encoding shorthand.
var fieldNameRegex = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_.]*$`)

// ValidateFieldName validates a data field name bound to a channel.
//
// Field names must be usable inside the position shorthand ("a*b"), so
// they may only contain letters, digits, underscores and dots and must not
// start with a digit.
func ValidateFieldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidEncoding, "field name cannot be empty")
	}
	if len(name) > maxFieldLength {
		return New(ErrCodeInvalidEncoding, "field name too long (max %d characters)", maxFieldLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidEncoding, "field name contains invalid control characters")
		}
	}
	if !fieldNameRegex.MatchString(name) {
		return New(ErrCodeInvalidEncoding, "invalid field name: %q", name)
	}
	return nil
}

// ValidatePath validates a data file path referenced from a chart document.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative to the chart document)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateColor validates a hex color string such as "#5B8FF9".
func ValidateColor(c string) error {
	if c == "" {
		return New(ErrCodeInvalidTheme, "color cannot be empty")
	}
	if _, err := colorful.Hex(c); err != nil {
		return Wrap(ErrCodeInvalidTheme, err, "invalid color %q", c)
	}
	return nil
}
