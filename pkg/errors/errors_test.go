package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidMask, "unknown mask %d", 9), "INVALID_MASK: unknown mask 9"},
		{"wrapped", Wrap(ErrCodeNoImage, cause, "decode %s", "a.png"), "NO_IMAGE: decode a.png: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFileNotFound, cause, "open overlay")

	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() should return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestIsAndGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching", New(ErrCodeNoPieces, "none"), ErrCodeNoPieces, true},
		{"other code", New(ErrCodeNoPieces, "none"), ErrCodeInvalidMask, false},
		{"outer code wins", Wrap(ErrCodeInvalidManifest, New(ErrCodeInvalidInput, "scale"), "photo 1"), ErrCodeInvalidManifest, true},
		{"through fmt.Errorf", fmt.Errorf("photo 2: %w", New(ErrCodeNoPieces, "none")), ErrCodeNoPieces, true},
		{"plain error", errors.New("boom"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
		{"empty code", errors.New("boom"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeSessionIncomplete, "2 of 4 masks processed"), "2 of 4 masks processed"},
		{"context kept", fmt.Errorf("photo 2 (mask 4): %w", New(ErrCodeNoPieces, "no triangles produced")), "photo 2 (mask 4): no triangles produced"},
		{"cause dropped", Wrap(ErrCodeNoImage, errors.New("invalid JPEG"), "decode a.jpg"), "decode a.jpg"},
		{"plain", errors.New("disk full"), "disk full"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeNotice(t *testing.T) {
	notices := []Code{ErrCodeCanvasNotReady, ErrCodeSequenceComplete, ErrCodeSessionIncomplete, ErrCodeNoPieces}
	for _, c := range notices {
		if !c.Notice() {
			t.Errorf("%s should be a notice", c)
		}
	}
	for _, c := range []Code{ErrCodeInvalidMask, ErrCodeFileNotFound, ErrCodeInternal, ""} {
		if c.Notice() {
			t.Errorf("%q should not be a notice", c)
		}
	}
}
