package mcpserver

import (
	"context"

	"github.com/erraggy/chatutil/markup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type matchInput struct {
	Type    string `json:"type"            jsonschema:"Pattern type name, case insensitive (e.g. MENTION_USER)"`
	Content string `json:"content"         jsonschema:"The message text to search"`
	All     bool   `json:"all,omitempty"   jsonschema:"Return every non-overlapping match instead of the first"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum matches returned with all=true (default: CHATUTIL_MAX_MATCHES)"`
}

// matchResult is the wire form of a markup.Match. Type is carried as its
// name so that the output schema stays a plain string.
type matchResult struct {
	Type     string `json:"type"`
	Matched  string `json:"matched"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Name     string `json:"name,omitempty"`
	ID       string `json:"id,omitempty"`
	Language string `json:"language,omitempty"`
	Text     string `json:"text,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}

type matchOutput struct {
	Count     int           `json:"count"`
	Truncated bool          `json:"truncated,omitempty"`
	Matches   []matchResult `json:"matches,omitempty"`
}

func toMatchResult(m *markup.Match) matchResult {
	return matchResult{
		Type:     m.Type.String(),
		Matched:  m.Matched,
		Start:    m.Start,
		End:      m.End,
		Name:     m.Name,
		ID:       m.ID,
		Language: m.Language,
		Text:     m.Text,
		Animated: m.Animated,
	}
}

func (ts *toolset) handleMatch(_ context.Context, _ *mcp.CallToolRequest, input matchInput) (*mcp.CallToolResult, matchOutput, error) {
	if err := checkInputSize("content", input.Content); err != nil {
		return errResult(err), matchOutput{}, nil
	}

	if !input.All {
		m, err := ts.matcher.Match(input.Type, input.Content)
		if err != nil {
			return errResult(err), matchOutput{}, nil
		}
		if m == nil {
			return nil, matchOutput{}, nil
		}
		return nil, matchOutput{Count: 1, Matches: []matchResult{toMatchResult(m)}}, nil
	}

	limit := clampLimit(input.Limit)
	// One extra match tells us whether the result was cut short.
	found, err := ts.matcher.MatchAll(input.Type, input.Content, limit+1)
	if err != nil {
		return errResult(err), matchOutput{}, nil
	}
	truncated := len(found) > limit
	if truncated {
		found = found[:limit]
	}

	results := makeSlice[matchResult](len(found))
	for _, m := range found {
		results = append(results, toMatchResult(m))
	}
	return nil, matchOutput{Count: len(results), Truncated: truncated, Matches: results}, nil
}

type patternsInput struct{}

type patternInfo struct {
	Type       string `json:"type"`
	Expression string `json:"expression"`
	Extracts   bool   `json:"extracts"`
}

type patternsOutput struct {
	Patterns []patternInfo `json:"patterns"`
}

func (ts *toolset) handlePatterns(_ context.Context, _ *mcp.CallToolRequest, _ patternsInput) (*mcp.CallToolResult, patternsOutput, error) {
	registry := ts.matcher.Registry()
	types := registry.Types()
	out := patternsOutput{Patterns: make([]patternInfo, 0, len(types))}
	for _, t := range types {
		re, _ := registry.Lookup(t)
		out.Patterns = append(out.Patterns, patternInfo{
			Type:       t.String(),
			Expression: re.String(),
			Extracts:   markup.CanExtract(t),
		})
	}
	return nil, out, nil
}
