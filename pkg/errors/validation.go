package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateLabel validates an overlay label. Labels name image files, so they
// must be plain basenames:
//   - No empty labels
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "overlay label cannot be empty")
	}
	if len(label) > 64 {
		return New(ErrCodeInvalidLabel, "overlay label too long (max 64 characters)")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "overlay label contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(label, pattern) {
			return New(ErrCodeInvalidLabel, "overlay label contains invalid characters: %q", pattern)
		}
	}
	return nil
}

// ValidatePlacement validates the numbers positioning a photo on the canvas.
// Scale may be zero, which means unscaled, but not negative.
func ValidatePlacement(offsetX, offsetY, scale, rotation float64) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"offset_x", offsetX},
		{"offset_y", offsetY},
		{"scale", scale},
		{"rotation", rotation},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return New(ErrCodeInvalidInput, "%s must be a finite number", f.name)
		}
	}
	if scale < 0 {
		return New(ErrCodeInvalidInput, "scale cannot be negative")
	}
	return nil
}
