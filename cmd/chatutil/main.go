package main

import (
	"fmt"
	"os"

	"github.com/erraggy/chatutil"
	"github.com/erraggy/chatutil/cmd/chatutil/commands"
)

// commandNames lists every top-level command, in help order.
var commandNames = []string{"camel", "acronym", "color", "match", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("chatutil v%s\n", chatutil.Version())
		if len(args) > 0 && (args[0] == "-verbose" || args[0] == "--verbose") {
			fmt.Println(chatutil.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "camel":
		err = commands.HandleCamel(args)
	case "acronym":
		err = commands.HandleAcronym(args)
	case "color":
		err = commands.HandleColor(args)
	case "match":
		err = commands.HandleMatch(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input by edit
// distance, or "" when none is within distance 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, by bytes.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`chatutil - Chat API Payload Utilities

Usage:
  chatutil <command> [options]

Commands:
  camel       Convert snake_case keys of a JSON or YAML document to camelCase
  acronym     Print the acronym of a guild or channel name
  color       Convert a color between integer, hex and RGB forms
  match       Match message markup (mentions, emoji, formatting, URLs)
  mcp         Run an MCP server over stdio
  version     Show version information (--verbose for build details)
  help        Show this help message

Examples:
  chatutil camel guild.json
  chatutil acronym Hello World
  chatutil color '#5865f2'
  chatutil match MENTION_USER '<@80351110224678912>'
  chatutil match --all --format json TEXT_URL 'see https://example.com'

Run 'chatutil <command> --help' for more information on a command.`)
}
