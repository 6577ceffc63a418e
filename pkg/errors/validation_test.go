package errors

import (
	"math"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"letter", "K", false},
		{"centre mark", "comR", false},
		{"mixed case", "ComG", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 65)), true},
		{"path traversal", "../K", true},
		{"path separator", "marks/K", true},
		{"backslash", "marks\\K", true},
		{"null byte", "K\x00", true},
		{"newline", "K\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidLabel) {
				t.Errorf("ValidateLabel(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidatePlacement(t *testing.T) {
	tests := []struct {
		name                string
		x, y, scale, rotate float64
		wantErr             bool
	}{
		{"zero", 0, 0, 0, 0, false},
		{"typical", -35.5, 12, 1.25, 270, false},
		{"negative scale", 0, 0, -1, 0, true},
		{"nan offset", math.NaN(), 0, 1, 0, true},
		{"infinite rotation", 0, 0, 1, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlacement(tt.x, tt.y, tt.scale, tt.rotate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePlacement() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidMask,
		ErrCodeInvalidManifest,
		ErrCodeInvalidLabel,
		ErrCodeFileNotFound,
		ErrCodeNoImage,
		ErrCodeNoPieces,
		ErrCodeCanvasNotReady,
		ErrCodeSequenceComplete,
		ErrCodeSessionIncomplete,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
