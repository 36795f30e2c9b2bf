package casing

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// No underscore returns input unchanged
		{name: "empty string", input: "", want: ""},
		{name: "single word", input: "id", want: "id"},
		{name: "already camelCase", input: "guildId", want: "guildId"},
		{name: "PascalCase untouched", input: "GuildId", want: "GuildId"},
		{name: "all caps untouched", input: "ID", want: "ID"},
		{name: "hyphen is not a separator", input: "x-ratelimit", want: "x-ratelimit"},

		// snake_case
		{name: "two segments", input: "user_id", want: "userId"},
		{name: "three segments", input: "premium_since_at", want: "premiumSinceAt"},
		{name: "screaming snake", input: "MAX_AGE", want: "maxAge"},
		{name: "mixed case segment lowered", input: "user_ID", want: "userId"},
		{name: "digits", input: "tier_2_count", want: "tier2Count"},
		{name: "leading digit segment", input: "2fa_enabled", want: "2faEnabled"},

		// Empty segments are dropped
		{name: "double underscore", input: "a__b", want: "aB"},
		{name: "leading underscore", input: "_id", want: "id"},
		{name: "trailing underscore", input: "id_", want: "id"},
		{name: "only underscores", input: "__", want: ""},
		{name: "single underscore", input: "_", want: ""},
		{name: "leading double underscore", input: "__proto_type", want: "protoType"},

		// Unicode mappings
		{name: "unicode segment", input: "über_user", want: "überUser"},
		{name: "sharp s inside word", input: "straße_nr", want: "straßeNr"},
		{name: "sharp s uppercases to SS", input: "ß_x", want: "sSX"},
		{name: "japanese characters", input: "日本語_test", want: "日本語Test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCamelCase(tt.input)
			assert.Equal(t, tt.want, got, "ToCamelCase(%q)", tt.input)
		})
	}
}

// TestToCamelCase_NoUnderscoreIdentity checks that keys without an
// underscore are never rewritten.
func TestToCamelCase_NoUnderscoreIdentity(t *testing.T) {
	for _, s := range []string{"a", "Abc", "aBC", "x.y", "hello world", "ÄÖÜ", "123"} {
		assert.Equal(t, s, ToCamelCase(s), "ToCamelCase(%q)", s)
	}
}

// TestToCamelCase_Idempotent checks that converting twice equals converting once.
func TestToCamelCase_Idempotent(t *testing.T) {
	for _, s := range []string{"user_id", "guild_member_count", "MAX_AGE", "a_b_c", "x", "default_message_notifications"} {
		once := ToCamelCase(s)
		assert.NotContains(t, once, "_")
		assert.Equal(t, once, ToCamelCase(once), "ToCamelCase(ToCamelCase(%q))", s)
	}
}

func TestAcronym(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "two words", input: "Hello World", want: "HW"},
		{name: "single word", input: "Guild", want: "G"},
		{name: "underscore joins words", input: "a_b c", want: "ac"},
		{name: "digits are word chars", input: "Team 42", want: "T4"},
		{name: "punctuation kept", input: "Rock & Roll", want: "R&R"},
		{name: "apostrophe splits words", input: "Bob's Place", want: "B'sP"},
		{name: "extra whitespace removed", input: "  spaced \t out\n ", want: "so"},
		{name: "non-ascii letters are not word chars", input: "Ünïcode Fun", want: "ÜnïcF"},
		{name: "only whitespace", input: " \t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Acronym(tt.input)
			assert.Equal(t, tt.want, got, "Acronym(%q)", tt.input)
		})
	}
}

func TestAcronym_NoWhitespaceInResult(t *testing.T) {
	got := Acronym("The Quick Brown   Fox\u00a0Jumps")
	assert.False(t, strings.ContainsFunc(got, unicode.IsSpace), "Acronym should strip whitespace, got %q", got)
	assert.Equal(t, "TQBFJ", got)
}
