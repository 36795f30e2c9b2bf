package color

import (
	"strconv"
	"strings"

	"github.com/erraggy/chatutil/chaterrors"
)

// maxHexDigits bounds strict hex input to 32 bits.
const maxHexDigits = 8

// ParseHex parses a hex color strictly: an optional single leading '#'
// followed by one to eight hex digits and nothing else.
func ParseHex(hex string) (int, error) {
	s := strings.TrimPrefix(hex, "#")
	switch {
	case s == "":
		return 0, &chaterrors.ColorError{Input: hex, Message: "no hex digits"}
	case len(s) > maxHexDigits:
		return 0, &chaterrors.ColorError{Input: hex, Message: "more than 8 hex digits"}
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return 0, &chaterrors.ColorError{Input: hex, Message: "invalid hex digit " + strconv.Quote(s[i:i+1])}
		}
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, &chaterrors.ColorError{Input: hex, Cause: err}
	}
	return int(n), nil
}

// Parse reads a color written in any of the forms users type into bots and
// CLIs: "#rrggbb" or "0xrrggbb" hex, a decimal integer, or an "r,g,b"
// triple of decimal channels in [0,255].
func Parse(s string) (int, error) {
	in := strings.TrimSpace(s)
	switch {
	case in == "":
		return 0, &chaterrors.ColorError{Input: s, Message: "empty input"}
	case strings.HasPrefix(in, "#"):
		return ParseHex(in)
	case strings.HasPrefix(in, "0x"), strings.HasPrefix(in, "0X"):
		return ParseHex(in[2:])
	case strings.Contains(in, ","):
		return parseTriple(s, in)
	}

	n, err := strconv.ParseUint(in, 10, 32)
	if err != nil {
		return 0, &chaterrors.ColorError{Input: s, Message: "not a hex, decimal or r,g,b color", Cause: err}
	}
	return int(n), nil
}

func parseTriple(orig, in string) (int, error) {
	parts := strings.Split(in, ",")
	if len(parts) != 3 {
		return 0, &chaterrors.ColorError{Input: orig, Message: "expected three comma-separated channels"}
	}
	var ch [3]int
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return 0, &chaterrors.ColorError{Input: orig, Message: "channel out of range 0-255", Cause: err}
		}
		ch[i] = int(v)
	}
	return RGBToInt(ch[0], ch[1], ch[2]), nil
}
