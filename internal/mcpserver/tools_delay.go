package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/chatutil/delay"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type delayInput struct {
	Ms int `json:"ms" jsonschema:"Milliseconds to wait; zero or negative returns immediately"`
}

type delayOutput struct {
	Ms int `json:"ms"`
}

func (ts *toolset) handleDelay(ctx context.Context, _ *mcp.CallToolRequest, input delayInput) (*mcp.CallToolResult, delayOutput, error) {
	if int64(input.Ms) > cfg.MaxDelay.Milliseconds() {
		return errResult(fmt.Errorf("delay %dms exceeds maximum %s; set CHATUTIL_MAX_DELAY to increase", input.Ms, cfg.MaxDelay)), delayOutput{}, nil
	}
	if err := delay.SleepMillis(ctx, input.Ms); err != nil {
		return errResult(fmt.Errorf("delay interrupted: %w", err)), delayOutput{}, nil
	}
	return nil, delayOutput{Ms: max(input.Ms, 0)}, nil
}
