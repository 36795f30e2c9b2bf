// Package chaterrors provides structured error types for the chatutil library.
//
// Import path: github.com/erraggy/chatutil/chaterrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between the few ways chatutil operations fail.
//
// # Error Types
//
//   - [PatternError]: unknown markup pattern types and invalid pattern expressions
//   - [ColorError]: strict hex color parsing failures
//   - [DecodeError]: JSON/YAML payload decoding failures
//   - [ConfigError]: invalid functional options or configuration values
//
// # Sentinel Errors
//
//   - [ErrUnknownPattern]: Matches [PatternError] with Unknown=true
//   - [ErrInvalidPattern]: Matches [PatternError] with Unknown=false
//   - [ErrInvalidColor]: Matches any [ColorError]
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	match, err := matcher.Match("MENTION_EVERYONE", content)
//	if errors.Is(err, chaterrors.ErrUnknownPattern) {
//	    // The pattern type is not part of the registry
//	}
//
//	var colorErr *chaterrors.ColorError
//	if errors.As(err, &colorErr) {
//	    fmt.Printf("bad color input: %q\n", colorErr.Input)
//	}
//
// Note that [github.com/erraggy/chatutil/color.HexToInt] never returns an
// error: it reports malformed input with the color.NaN sentinel. Use
// color.ParseHex when a [ColorError] is preferred.
package chaterrors
