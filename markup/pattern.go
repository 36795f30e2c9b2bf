package markup

import (
	"strings"

	"github.com/erraggy/chatutil/chaterrors"
)

// PatternType identifies one of the closed set of markup patterns.
type PatternType int

const (
	// PatternUnknown is the zero value and never names a registered pattern.
	PatternUnknown PatternType = iota

	// PatternEmoji matches a custom emoji: <:name:id> or <a:name:id>.
	PatternEmoji

	// PatternJumpChannel matches a channel jump link.
	PatternJumpChannel

	// PatternJumpChannelMessage matches a message jump link.
	PatternJumpChannelMessage

	// PatternMentionChannel matches <#id>.
	PatternMentionChannel

	// PatternMentionRole matches <@&id>.
	PatternMentionRole

	// PatternMentionUser matches <@id> and the legacy nickname form <@!id>.
	PatternMentionUser

	// PatternTextBold matches **text**.
	PatternTextBold

	// PatternTextCodeBlock matches a fenced code block with an optional language tag.
	PatternTextCodeBlock

	// PatternTextCodeString matches `text`.
	PatternTextCodeString

	// PatternTextItalics matches _text_ or *text*.
	PatternTextItalics

	// PatternTextSnowflake matches a run of digits.
	PatternTextSnowflake

	// PatternTextSpoiler matches ||text||.
	PatternTextSpoiler

	// PatternTextStrike matches ~~text~~.
	PatternTextStrike

	// PatternTextUnderline matches __text__.
	PatternTextUnderline

	// PatternTextURL matches a bare http or https URL.
	PatternTextURL
)

var patternNames = [...]string{
	PatternUnknown:            "UNKNOWN",
	PatternEmoji:              "EMOJI",
	PatternJumpChannel:        "JUMP_CHANNEL",
	PatternJumpChannelMessage: "JUMP_CHANNEL_MESSAGE",
	PatternMentionChannel:     "MENTION_CHANNEL",
	PatternMentionRole:        "MENTION_ROLE",
	PatternMentionUser:        "MENTION_USER",
	PatternTextBold:           "TEXT_BOLD",
	PatternTextCodeBlock:      "TEXT_CODEBLOCK",
	PatternTextCodeString:     "TEXT_CODESTRING",
	PatternTextItalics:        "TEXT_ITALICS",
	PatternTextSnowflake:      "TEXT_SNOWFLAKE",
	PatternTextSpoiler:        "TEXT_SPOILER",
	PatternTextStrike:         "TEXT_STRIKE",
	PatternTextUnderline:      "TEXT_UNDERLINE",
	PatternTextURL:            "TEXT_URL",
}

// String returns the uppercase pattern type name, e.g. "MENTION_USER".
func (p PatternType) String() string {
	if p.Valid() {
		return patternNames[p]
	}
	return patternNames[PatternUnknown]
}

// Valid reports whether p is one of the defined pattern types.
func (p PatternType) Valid() bool {
	return p > PatternUnknown && int(p) < len(patternNames)
}

// MarshalText implements encoding.TextMarshaler.
func (p PatternType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PatternType) UnmarshalText(text []byte) error {
	parsed, err := ParsePatternType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePatternType resolves a pattern type name case-insensitively.
// Names outside the closed set return a *chaterrors.PatternError matching
// chaterrors.ErrUnknownPattern.
func ParsePatternType(name string) (PatternType, error) {
	upper := strings.ToUpper(name)
	for i := PatternUnknown + 1; int(i) < len(patternNames); i++ {
		if patternNames[i] == upper {
			return i, nil
		}
	}
	return PatternUnknown, &chaterrors.PatternError{Type: upper, Unknown: true}
}

// PatternTypes returns every defined pattern type in declaration order.
func PatternTypes() []PatternType {
	types := make([]PatternType, 0, len(patternNames)-1)
	for i := PatternUnknown + 1; int(i) < len(patternNames); i++ {
		types = append(types, i)
	}
	return types
}
