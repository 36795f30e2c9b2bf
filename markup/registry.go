package markup

import (
	"maps"
	"regexp"
	"slices"

	"github.com/erraggy/chatutil/chaterrors"
)

// defaultExpressions are the built-in pattern sources, keyed by type.
// Expressions are unanchored except for the jump links, which must be the
// whole input.
var defaultExpressions = map[PatternType]string{
	PatternEmoji:              `<a?:(\w+):(\d+)>`,
	PatternJumpChannel:        `^(?:https?)://(?:(?:canary|ptb)\.)?discord(?:app)?\.com/channels/(\d+|@me)/(\d+)$`,
	PatternJumpChannelMessage: `^(?:https?)://(?:(?:canary|ptb)\.)?discord(?:app)?\.com/channels/(\d+|@me)/(\d+)/(\d+)$`,
	PatternMentionChannel:     `<#(\d+)>`,
	PatternMentionRole:        `<@&(\d+)>`,
	PatternMentionUser:        `<@!?(\d+)>`,
	PatternTextBold:           `\*\*([\s\S]+?)\*\*`,
	PatternTextCodeBlock:      "(?i)```(([a-z0-9-]+?)\\n+)?\\n*([\\s\\S]+?)\\n*```",
	PatternTextCodeString:     "`([\\s\\S]+?)`",
	PatternTextItalics:        `_([\s\S]+?)_|\*([\s\S]+?)\*`,
	PatternTextSnowflake:      `(\d+)`,
	PatternTextSpoiler:        `\|\|([\s\S]+?)\|\|`,
	PatternTextStrike:         `~~([\s\S]+?)~~`,
	PatternTextUnderline:      `__([\s\S]+?)__`,
	PatternTextURL:            `((?:https?)://[^\s<]+[^<.,:;"'\]\s])`,
}

// defaultRegistry is compiled once; registries are immutable.
var defaultRegistry = mustCompileDefaults()

// Registry is an immutable set of compiled patterns keyed by PatternType.
// A Registry is safe for concurrent use.
type Registry struct {
	patterns map[PatternType]*regexp.Regexp
}

// DefaultRegistry returns the registry of built-in patterns.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// DefaultExpressions returns a copy of the built-in pattern sources keyed
// by pattern type name, suitable as a starting point for NewRegistry.
func DefaultExpressions() map[string]string {
	out := make(map[string]string, len(defaultExpressions))
	for t, expr := range defaultExpressions {
		out[t.String()] = expr
	}
	return out
}

// NewRegistry compiles exprs, keyed by case-insensitive pattern type name,
// into a Registry. Names outside the closed set of pattern types are
// rejected with chaterrors.ErrUnknownPattern, and expressions that fail to
// compile with chaterrors.ErrInvalidPattern.
func NewRegistry(exprs map[string]string) (*Registry, error) {
	patterns := make(map[PatternType]*regexp.Regexp, len(exprs))
	for _, name := range slices.Sorted(maps.Keys(exprs)) {
		t, err := ParsePatternType(name)
		if err != nil {
			return nil, err
		}
		if _, dup := patterns[t]; dup {
			return nil, &chaterrors.PatternError{Type: t.String(), Message: "defined more than once"}
		}
		re, err := regexp.Compile(exprs[name])
		if err != nil {
			return nil, &chaterrors.PatternError{Type: t.String(), Expr: exprs[name], Cause: err}
		}
		patterns[t] = re
	}
	return &Registry{patterns: patterns}, nil
}

func mustCompileDefaults() *Registry {
	patterns := make(map[PatternType]*regexp.Regexp, len(defaultExpressions))
	for t, expr := range defaultExpressions {
		patterns[t] = regexp.MustCompile(expr)
	}
	return &Registry{patterns: patterns}
}

// Lookup returns the compiled pattern for t.
func (r *Registry) Lookup(t PatternType) (*regexp.Regexp, bool) {
	re, ok := r.patterns[t]
	return re, ok
}

// Types returns the registered pattern types in declaration order.
func (r *Registry) Types() []PatternType {
	types := slices.Collect(maps.Keys(r.patterns))
	slices.Sort(types)
	return types
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}
