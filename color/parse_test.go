package color

import (
	"testing"

	"github.com/erraggy/chatutil/chaterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{name: "with hash", input: "#5865f2", want: 0x5865f2},
		{name: "without hash", input: "ED4245", want: 0xed4245},
		{name: "eight digits", input: "ffffffff", want: 0xffffffff},
		{name: "empty", input: "", wantErr: "no hex digits"},
		{name: "hash only", input: "#", wantErr: "no hex digits"},
		{name: "trailing garbage", input: "#ffzz", wantErr: `invalid hex digit "z"`},
		{name: "inner whitespace", input: "ff ff", wantErr: `invalid hex digit " "`},
		{name: "double hash", input: "##ff", wantErr: `invalid hex digit "#"`},
		{name: "too long", input: "123456789", wantErr: "more than 8 hex digits"},
		{name: "sign rejected", input: "-ff", wantErr: `invalid hex digit "-"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, chaterrors.ErrInvalidColor)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseHex_AgreesWithHexToInt checks that strict and permissive parsing
// agree whenever the strict parser accepts the input.
func TestParseHex_AgreesWithHexToInt(t *testing.T) {
	for _, h := range []string{"#000000", "0000ff", "#5865F2", "ffffff", "1"} {
		strict, err := ParseHex(h)
		require.NoError(t, err)
		assert.Equal(t, HexToInt(h), strict, "input %q", h)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "hash hex", input: "#5865f2", want: 0x5865f2},
		{name: "0x hex", input: "0x5865f2", want: 0x5865f2},
		{name: "upper 0X hex", input: "0XFF", want: 0xff},
		{name: "decimal", input: "5793266", want: 0x5865f2},
		{name: "surrounding whitespace", input: "  16711680 ", want: 0xff0000},
		{name: "rgb triple", input: "88,101,242", want: 0x5865f2},
		{name: "rgb triple with spaces", input: "255, 0 ,0", want: 0xff0000},
		{name: "empty", input: "", wantErr: true},
		{name: "channel out of range", input: "256,0,0", wantErr: true},
		{name: "two channels", input: "1,2", wantErr: true},
		{name: "negative decimal", input: "-1", wantErr: true},
		{name: "words", input: "blurple", wantErr: true},
		{name: "bare hex without prefix", input: "ff0000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, chaterrors.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
