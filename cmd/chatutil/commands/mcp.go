package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/chatutil/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: chatutil mcp\n\n")
		Writef(output, "Run an MCP (Model Context Protocol) server over stdio exposing the\n")
		Writef(output, "camel_case, acronym, color, match, patterns and delay tools.\n")
		Writef(output, "\nConfiguration (environment):\n")
		Writef(output, "  CHATUTIL_MAX_INPUT_SIZE  maximum bytes of inline content (default: 1048576)\n")
		Writef(output, "  CHATUTIL_MAX_MATCHES     default match limit with all=true (default: 100)\n")
		Writef(output, "  CHATUTIL_MAX_LIMIT       upper bound for explicit limits (default: 1000)\n")
		Writef(output, "  CHATUTIL_MAX_DELAY       longest wait for the delay tool (default: 10s)\n")
		Writef(output, "  CHATUTIL_LOG_LEVEL       stderr log level (default: warn)\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
