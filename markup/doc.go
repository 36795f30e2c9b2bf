// Package markup matches message content against a closed set of named
// markup patterns: user, role and channel mentions, custom emoji, jump
// links, and the markdown-style formatting chat clients render (bold,
// italics, underline, strikethrough, spoilers, inline code, fenced code
// blocks), plus bare URLs and snowflake IDs.
//
// # Pattern types
//
// Pattern types are a closed enum ([PatternType]) named by uppercase
// identifiers such as "EMOJI" or "MENTION_USER". [ParsePatternType] resolves
// names case-insensitively and rejects anything outside the set.
//
// # Registries
//
// A [Registry] maps pattern types to compiled expressions. It is an explicit,
// immutable value handed to the [Matcher] rather than process-wide state;
// [DefaultRegistry] holds the built-in expressions and [NewRegistry] builds a
// custom one, rejecting unknown names and invalid expressions at
// construction.
//
// # Matching
//
//	m, err := markup.NewMatcher()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	match, err := m.Match("EMOJI", "<a:wave:987>")
//	// match.Name == "wave", match.ID == "987", match.Animated == true
//
// Match returns (nil, nil) when the pattern does not match, and an error
// matching chaterrors.ErrUnknownPattern when the type is unknown, missing
// from the registry, or has no field extraction (the jump link types).
// [Matcher.MatchAll] returns every non-overlapping match.
package markup
