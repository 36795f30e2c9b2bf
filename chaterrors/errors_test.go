package chaterrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestPatternError(t *testing.T) {
	t.Run("Error message for unknown type", func(t *testing.T) {
		err := &PatternError{Type: "MENTION_EVERYONE", Unknown: true}
		if err.Error() != "unknown pattern type: MENTION_EVERYONE" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("missing closing )")
		err := &PatternError{Type: "TEXT_BOLD", Expr: `\*\*(`, Message: "compile failed", Cause: cause}
		want := `invalid pattern: TEXT_BOLD (expr: \*\*(): compile failed: missing closing )`
		if err.Error() != want {
			t.Errorf("got %q, want %q", err.Error(), want)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &PatternError{}
		if err.Error() != "invalid pattern" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is distinguishes unknown from invalid", func(t *testing.T) {
		unknown := &PatternError{Unknown: true}
		invalid := &PatternError{}
		if !errors.Is(unknown, ErrUnknownPattern) || errors.Is(unknown, ErrInvalidPattern) {
			t.Error("unknown pattern error should match only ErrUnknownPattern")
		}
		if !errors.Is(invalid, ErrInvalidPattern) || errors.Is(invalid, ErrUnknownPattern) {
			t.Error("invalid pattern error should match only ErrInvalidPattern")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &PatternError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}

func TestColorError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ColorError{Input: "#zzz", Message: "non-hex digit"}
		if err.Error() != `invalid color "#zzz": non-hex digit` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		if (&ColorError{}).Error() != "invalid color" {
			t.Error("unexpected minimal message")
		}
	})

	t.Run("Is matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("color: %w", &ColorError{Input: "x"})
		if !errors.Is(err, ErrInvalidColor) {
			t.Error("wrapped ColorError should match ErrInvalidColor")
		}
		if errors.Is(err, ErrDecode) {
			t.Error("ColorError should not match ErrDecode")
		}
	})
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &DecodeError{Format: "json", Message: "reading payload", Cause: cause}

	if err.Error() != "decode error (json): reading payload: unexpected EOF" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrDecode) {
		t.Error("DecodeError should match ErrDecode")
	}
	if !errors.Is(err, cause) {
		t.Error("DecodeError should unwrap to its cause")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "registry", Value: 0, Message: "must not be nil"}
	if err.Error() != "configuration error for registry (value: 0): must not be nil" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}

	var target *ConfigError
	if !errors.As(fmt.Errorf("wrap: %w", err), &target) || target.Option != "registry" {
		t.Error("errors.As should extract ConfigError")
	}
}
