package markup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/chatutil/chaterrors"
)

// animatedPrefix marks an animated custom emoji.
const animatedPrefix = "<a:"

// Match describes a successful pattern match. Which of Name, ID, Language,
// Text and Animated are populated depends on Type:
//
//   - PatternEmoji: Name, ID, Animated
//   - PatternMentionChannel, PatternMentionRole, PatternMentionUser: ID
//   - PatternTextCodeBlock: Language (empty when the fence has no tag), Text
//   - every other text pattern: Text
type Match struct {
	// Pattern is the compiled expression that matched
	Pattern *regexp.Regexp `json:"-" yaml:"-"`
	// Type is the matched pattern type
	Type PatternType `json:"type" yaml:"type"`
	// Matched is the full matched substring
	Matched string `json:"matched" yaml:"matched"`
	// Start and End are the byte offsets of Matched within the content
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`

	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	ID       string `json:"id,omitempty"       yaml:"id,omitempty"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Text     string `json:"text,omitempty"     yaml:"text,omitempty"`
	Animated bool   `json:"animated,omitempty" yaml:"animated,omitempty"`
}

// submatches gives access to capture groups by index.
type submatches struct {
	content string
	loc     []int
}

// group returns capture group i, or "" if it did not participate.
func (s submatches) group(i int) string {
	if 2*i+1 >= len(s.loc) || s.loc[2*i] < 0 {
		return ""
	}
	return s.content[s.loc[2*i]:s.loc[2*i+1]]
}

// first returns the first participating capture group, for patterns whose
// alternatives capture into different groups.
func (s submatches) first() string {
	for i := 1; 2*i+1 < len(s.loc); i++ {
		if s.loc[2*i] >= 0 {
			return s.group(i)
		}
	}
	return ""
}

// extractor fills the type-specific fields of m.
type extractor func(m *Match, sm submatches)

func extractText(m *Match, sm submatches) {
	m.Text = sm.first()
}

func extractID(m *Match, sm submatches) {
	m.ID = sm.group(1)
}

// extractors is the closed dispatch table. Pattern types without an entry
// are registered but cannot be matched.
var extractors = map[PatternType]extractor{
	PatternEmoji: func(m *Match, sm submatches) {
		m.Name = sm.group(1)
		m.ID = sm.group(2)
	},
	PatternMentionChannel: extractID,
	PatternMentionRole:    extractID,
	PatternMentionUser:    extractID,
	PatternTextCodeBlock: func(m *Match, sm submatches) {
		m.Language = sm.group(2)
		m.Text = sm.group(3)
	},
	PatternTextBold:       extractText,
	PatternTextCodeString: extractText,
	PatternTextItalics:    extractText,
	PatternTextSnowflake:  extractText,
	PatternTextSpoiler:    extractText,
	PatternTextStrike:     extractText,
	PatternTextUnderline:  extractText,
	PatternTextURL:        extractText,
}

// CanExtract reports whether Match fills fields for t. Types without field
// extraction, such as the jump link patterns, are rejected by Match even
// when registered.
func CanExtract(t PatternType) bool {
	_, ok := extractors[t]
	return ok
}

// Option is a function that configures a Matcher
type Option func(*matcherConfig) error

// matcherConfig holds configuration for a Matcher
type matcherConfig struct {
	registry *Registry
	logger   Logger
}

// WithRegistry sets the pattern registry. The default is DefaultRegistry().
func WithRegistry(r *Registry) Option {
	return func(cfg *matcherConfig) error {
		if r == nil {
			return &chaterrors.ConfigError{Option: "registry", Message: "must not be nil"}
		}
		cfg.registry = r
		return nil
	}
}

// WithLogger sets the logger. The default is NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *matcherConfig) error {
		if l == nil {
			return &chaterrors.ConfigError{Option: "logger", Message: "must not be nil"}
		}
		cfg.logger = l
		return nil
	}
}

// Matcher matches content against the patterns of a Registry.
// Calls are independent and a Matcher is safe for concurrent use.
type Matcher struct {
	registry *Registry
	logger   Logger
}

// NewMatcher creates a Matcher.
//
// Example:
//
//	m, err := markup.NewMatcher(markup.WithRegistry(reg))
//	if err != nil {
//	    return err
//	}
//	match, err := m.Match("emoji", "<a:wave:987>")
func NewMatcher(opts ...Option) (*Matcher, error) {
	cfg := &matcherConfig{
		registry: DefaultRegistry(),
		logger:   NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("markup: invalid options: %w", err)
		}
	}
	return &Matcher{registry: cfg.registry, logger: cfg.logger}, nil
}

// Registry returns the registry the matcher was built with.
func (m *Matcher) Registry() *Registry {
	return m.registry
}

// Match finds the first match of the pattern named typeName (case
// insensitive) in content. It returns nil with a nil error when the pattern
// does not match. An unknown name, a name missing from the registry, or a
// pattern type without field extraction returns an error matching
// chaterrors.ErrUnknownPattern.
func (m *Matcher) Match(typeName, content string) (*Match, error) {
	t, err := m.parse(typeName)
	if err != nil {
		return nil, err
	}
	return m.MatchType(t, content)
}

// MatchType is Match for an already parsed PatternType.
func (m *Matcher) MatchType(t PatternType, content string) (*Match, error) {
	re, extract, err := m.resolve(t)
	if err != nil {
		return nil, err
	}
	loc := re.FindStringSubmatchIndex(content)
	if loc == nil {
		return nil, nil
	}
	match := build(t, re, extract, content, loc)
	// The animated flag is a property of the content, not of the match.
	if t == PatternEmoji {
		match.Animated = strings.HasPrefix(content, animatedPrefix)
	}
	return match, nil
}

// MatchAll returns successive non-overlapping matches of the pattern named
// typeName in content. If n >= 0 at most n matches are returned; n < 0
// returns all of them. Errors are the same as for Match. No match yields an
// empty slice and a nil error.
func (m *Matcher) MatchAll(typeName, content string, n int) ([]*Match, error) {
	t, err := m.parse(typeName)
	if err != nil {
		return nil, err
	}
	re, extract, err := m.resolve(t)
	if err != nil {
		return nil, err
	}

	locs := re.FindAllStringSubmatchIndex(content, n)
	matches := make([]*Match, 0, len(locs))
	for _, loc := range locs {
		match := build(t, re, extract, content, loc)
		if t == PatternEmoji {
			match.Animated = strings.HasPrefix(match.Matched, animatedPrefix)
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (m *Matcher) parse(typeName string) (PatternType, error) {
	t, err := ParsePatternType(typeName)
	if err != nil {
		m.logger.Debug("unknown pattern type", "type", typeName)
		return PatternUnknown, fmt.Errorf("markup: %w", err)
	}
	return t, nil
}

func (m *Matcher) resolve(t PatternType) (*regexp.Regexp, extractor, error) {
	re, ok := m.registry.Lookup(t)
	if !ok {
		m.logger.Debug("pattern type not registered", "type", t.String())
		return nil, nil, fmt.Errorf("markup: %w", &chaterrors.PatternError{Type: t.String(), Unknown: true, Message: "not registered"})
	}
	extract, ok := extractors[t]
	if !ok {
		m.logger.Debug("pattern type has no field extraction", "type", t.String())
		return nil, nil, fmt.Errorf("markup: %w", &chaterrors.PatternError{Type: t.String(), Unknown: true, Message: "no field extraction"})
	}
	return re, extract, nil
}

func build(t PatternType, re *regexp.Regexp, extract extractor, content string, loc []int) *Match {
	match := &Match{
		Pattern: re,
		Type:    t,
		Matched: content[loc[0]:loc[1]],
		Start:   loc[0],
		End:     loc[1],
	}
	extract(match, submatches{content: content, loc: loc})
	return match
}
