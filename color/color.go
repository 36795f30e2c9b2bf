package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// NaN is returned by HexToInt for input that contains no hex digits or
// whose value does not fit in an int. No parsable input produces it.
const NaN = math.MinInt

// IsNaN reports whether n is the NaN sentinel.
func IsNaN(n int) bool {
	return n == NaN
}

// RGB is a color split into 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Int packs the channels into a 24-bit integer.
func (c RGB) Int() int {
	return RGBToInt(int(c.R), int(c.G), int(c.B))
}

// Hex renders the color as six lowercase hex digits, optionally prefixed
// with '#'.
func (c RGB) Hex(hash bool) string {
	return IntToHex(c.Int(), hash)
}

// String returns the CSS functional notation, e.g. "rgb(88, 101, 242)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HexToInt parses a hex color permissively. One leading '#' is removed,
// then the remainder is read the way JavaScript's parseInt(s, 16) reads it:
// leading whitespace, an optional sign and an optional "0x" prefix are
// accepted, and parsing stops at the first non-hex character.
// Example: "#ff0000" -> 16711680
// Example: "ff zz" -> 255
// Example: "zz" -> NaN
func HexToInt(hex string) int {
	s := strings.TrimPrefix(hex, "#")
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	if end == 0 {
		return NaN
	}

	n, err := strconv.ParseInt(s[:end], 16, 0)
	if err != nil {
		return NaN
	}
	if negative {
		return -int(n)
	}
	return int(n)
}

// IntToHex renders n in lowercase base 16, left-padded with zeros to at
// least six digits and optionally prefixed with '#'. Negative values keep
// their sign ahead of the padded magnitude.
// Example: 255 -> "0000ff"
// Example: 0x5865f2, true -> "#5865f2"
// Example: 0x1000000 -> "1000000"
func IntToHex(n int, hash bool) string {
	digits := strconv.FormatInt(int64(n), 16)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if pad := 6 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	if hash {
		return "#" + sign + digits
	}
	return sign + digits
}

// IntToRGB splits a packed color into its channels. Bits above 23 are
// ignored.
func IntToRGB(n int) RGB {
	return RGB{
		R: uint8((n >> 16) & 0xff),
		G: uint8((n >> 8) & 0xff),
		B: uint8(n & 0xff),
	}
}

// RGBToInt packs three channels into a 24-bit integer. Each channel is
// masked to 8 bits first, so out-of-range values are truncated.
func RGBToInt(r, g, b int) int {
	return ((r & 0xff) << 16) | ((g & 0xff) << 8) | (b & 0xff)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
