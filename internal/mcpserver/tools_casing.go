package mcpserver

import (
	"context"

	"github.com/erraggy/chatutil/casing"
	"github.com/erraggy/chatutil/internal/options"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type camelCaseInput struct {
	Key      string   `json:"key,omitempty"       jsonschema:"A single snake_case key to convert"`
	Content  string   `json:"content,omitempty"   jsonschema:"A JSON or YAML document whose mapping keys are converted"`
	Format   string   `json:"format,omitempty"    jsonschema:"Format of content: json or yaml (default: detected from content)"`
	Skip     []string `json:"skip,omitempty"      jsonschema:"Keys that keep their name and whose values are copied unchanged"`
	DeepSkip bool     `json:"deep_skip,omitempty" jsonschema:"Apply skip at every depth instead of only the top-level mapping"`
}

type camelCaseOutput struct {
	Key      string `json:"key,omitempty"`
	Document string `json:"document,omitempty"`
	Format   string `json:"format,omitempty"`
}

func (ts *toolset) handleCamelCase(_ context.Context, _ *mcp.CallToolRequest, input camelCaseInput) (*mcp.CallToolResult, camelCaseOutput, error) {
	if err := options.ExactlyOne(
		options.Arg{Name: "key", Set: input.Key != ""},
		options.Arg{Name: "content", Set: input.Content != ""},
	); err != nil {
		return errResult(err), camelCaseOutput{}, nil
	}

	if input.Key != "" {
		if err := checkInputSize("key", input.Key); err != nil {
			return errResult(err), camelCaseOutput{}, nil
		}
		return nil, camelCaseOutput{Key: casing.ToCamelCase(input.Key)}, nil
	}

	if err := checkInputSize("content", input.Content); err != nil {
		return errResult(err), camelCaseOutput{}, nil
	}
	format, err := casing.ParseFormat(input.Format)
	if err != nil {
		return errResult(err), camelCaseOutput{}, nil
	}

	opts := []casing.Option{casing.WithDeepSkip(input.DeepSkip)}
	if len(input.Skip) > 0 {
		opts = append(opts, casing.WithSkip(input.Skip...))
	}
	doc, format, err := casing.Decode([]byte(input.Content), format, opts...)
	if err != nil {
		return errResult(err), camelCaseOutput{}, nil
	}
	data, err := casing.Marshal(doc, format)
	if err != nil {
		return errResult(err), camelCaseOutput{}, nil
	}

	ts.logger.Debug("converted document keys", "format", string(format), "bytes", len(input.Content))
	return nil, camelCaseOutput{Document: string(data), Format: string(format)}, nil
}

type acronymInput struct {
	Name string `json:"name" jsonschema:"The guild or channel name"`
}

type acronymOutput struct {
	Acronym string `json:"acronym"`
}

func (ts *toolset) handleAcronym(_ context.Context, _ *mcp.CallToolRequest, input acronymInput) (*mcp.CallToolResult, acronymOutput, error) {
	if err := checkInputSize("name", input.Name); err != nil {
		return errResult(err), acronymOutput{}, nil
	}
	return nil, acronymOutput{Acronym: casing.Acronym(input.Name)}, nil
}
