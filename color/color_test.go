package color

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexToInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "with hash", input: "#ff0000", want: 0xff0000},
		{name: "without hash", input: "5865f2", want: 0x5865f2},
		{name: "uppercase digits", input: "#ABCDEF", want: 0xabcdef},
		{name: "short form is not expanded", input: "#fff", want: 0xfff},
		{name: "zero", input: "#000000", want: 0},
		{name: "only one hash stripped", input: "##ff", want: NaN},
		{name: "hex prefix accepted", input: "0x1f", want: 0x1f},
		{name: "leading whitespace skipped", input: "  ff", want: 0xff},
		{name: "stops at first non-hex", input: "ffzz", want: 0xff},
		{name: "negative sign", input: "-ff", want: -0xff},
		{name: "plus sign", input: "+10", want: 0x10},
		{name: "empty string", input: "", want: NaN},
		{name: "hash only", input: "#", want: NaN},
		{name: "no hex digits", input: "zz", want: NaN},
		{name: "bare prefix", input: "0x", want: NaN},
		{name: "overflow", input: "ffffffffffffffffffff", want: NaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexToInt(tt.input)
			assert.Equal(t, tt.want, got, "HexToInt(%q)", tt.input)
		})
	}
}

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(HexToInt("not a color")))
	assert.False(t, IsNaN(HexToInt("#000000")))
	assert.Equal(t, math.MinInt, NaN)
}

func TestIntToHex(t *testing.T) {
	tests := []struct {
		name string
		n    int
		hash bool
		want string
	}{
		{name: "zero", n: 0, want: "000000"},
		{name: "pads to six digits", n: 0xff, want: "0000ff"},
		{name: "six digits", n: 0x5865f2, want: "5865f2"},
		{name: "with hash", n: 0x5865f2, hash: true, want: "#5865f2"},
		{name: "longer than six digits kept", n: 0x1000000, want: "1000000"},
		{name: "negative keeps sign", n: -5, want: "-000005"},
		{name: "negative with hash", n: -0xabc, hash: true, want: "#-000abc"},
		{name: "min int", n: math.MinInt64, want: "-8000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntToHex(tt.n, tt.hash)
			assert.Equal(t, tt.want, got, "IntToHex(%d, %v)", tt.n, tt.hash)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, h := range []string{"000000", "0000ff", "5865f2", "ffffff", "abcdef", "010203", "ed4245"} {
		assert.Equal(t, h, IntToHex(HexToInt(h), false), "round trip %q", h)
		assert.Equal(t, "#"+h, IntToHex(HexToInt("#"+h), true), "round trip #%s", h)
	}
}

func TestIntToRGB(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want RGB
	}{
		{name: "black", n: 0, want: RGB{}},
		{name: "white", n: 0xffffff, want: RGB{R: 255, G: 255, B: 255}},
		{name: "blurple", n: 0x5865f2, want: RGB{R: 0x58, G: 0x65, B: 0xf2}},
		{name: "high bits ignored", n: 0x7f010203, want: RGB{R: 1, G: 2, B: 3}},
		{name: "negative", n: -1, want: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntToRGB(tt.n))
		})
	}
}

func TestRGBToInt(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    int
	}{
		{name: "black", want: 0},
		{name: "red", r: 255, want: 0xff0000},
		{name: "green", g: 255, want: 0x00ff00},
		{name: "blue", b: 255, want: 0x0000ff},
		{name: "mixed", r: 0x58, g: 0x65, b: 0xf2, want: 0x5865f2},
		{name: "out of range truncated", r: 300, g: 256, b: -1, want: 0x2c00ff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToInt(tt.r, tt.g, tt.b))
		})
	}
}

// TestRGBRoundTrip checks that packing an unpacked color keeps the low 24
// bits, and unpacking a packed triple keeps the low 8 bits of each channel.
func TestRGBRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 0xff, 0x5865f2, 0xffffff, 0x1000000, 0x7fffffff, -1, -0x123456, math.MaxInt64} {
		c := IntToRGB(n)
		assert.Equal(t, n&0xffffff, RGBToInt(int(c.R), int(c.G), int(c.B)), "n=%#x", n)
		assert.Equal(t, n&0xffffff, c.Int(), "n=%#x", n)
	}

	triples := [][3]int{{0, 0, 0}, {255, 255, 255}, {256, 512, 1024}, {-1, -2, -3}, {300, 70000, 12}}
	for _, tr := range triples {
		got := IntToRGB(RGBToInt(tr[0], tr[1], tr[2]))
		want := RGB{R: uint8(tr[0] & 0xff), G: uint8(tr[1] & 0xff), B: uint8(tr[2] & 0xff)}
		assert.Equal(t, want, got, "triple %v", tr)
	}
}

func TestRGBMethods(t *testing.T) {
	c := RGB{R: 88, G: 101, B: 242}
	assert.Equal(t, 0x5865f2, c.Int())
	assert.Equal(t, "#5865f2", c.Hex(true))
	assert.Equal(t, "5865f2", c.Hex(false))
	assert.Equal(t, "rgb(88, 101, 242)", c.String())
	assert.Equal(t, "rgb(88, 101, 242)", fmt.Sprint(c))
}
