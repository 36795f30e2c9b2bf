package mcpserver

import (
	"context"

	"github.com/erraggy/chatutil/color"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type colorInput struct {
	Value string `json:"value" jsonschema:"The color: #rrggbb, 0xrrggbb, a decimal integer, or r,g,b"`
}

type colorOutput struct {
	Int int       `json:"int"`
	Hex string    `json:"hex"`
	RGB color.RGB `json:"rgb"`
}

func (ts *toolset) handleColor(_ context.Context, _ *mcp.CallToolRequest, input colorInput) (*mcp.CallToolResult, colorOutput, error) {
	n, err := color.Parse(input.Value)
	if err != nil {
		return errResult(err), colorOutput{}, nil
	}
	return nil, colorOutput{
		Int: n,
		Hex: color.IntToHex(n, true),
		RGB: color.IntToRGB(n),
	}, nil
}
