package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/chatutil/markup"
)

// MatchFlags contains flags for the match command
type MatchFlags struct {
	All    bool
	Limit  int
	Format string
}

// MatchOutput is the structured result of the match command.
type MatchOutput struct {
	Type    string          `json:"type"    yaml:"type"`
	Count   int             `json:"count"   yaml:"count"`
	Matches []*markup.Match `json:"matches" yaml:"matches"`
}

// SetupMatchFlags creates and configures a FlagSet for the match command.
// Returns the FlagSet and a MatchFlags struct with bound flag variables.
func SetupMatchFlags() (*flag.FlagSet, *MatchFlags) {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	flags := &MatchFlags{}

	fs.BoolVar(&flags.All, "all", false, "report every non-overlapping match instead of the first")
	fs.IntVar(&flags.Limit, "limit", 0, "maximum matches reported with --all (0 means no limit)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: chatutil match [flags] <TYPE> <text|->\n\n")
		Writef(output, "Match message markup against a named pattern and print the extracted fields.\n")
		Writef(output, "Use '-' to read the text from stdin.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nPattern Types:\n")
		for _, t := range markup.PatternTypes() {
			if markup.CanExtract(t) {
				Writef(output, "  %s\n", t)
			}
		}
		Writef(output, "\nExamples:\n")
		Writef(output, "  chatutil match MENTION_USER '<@80351110224678912>'\n")
		Writef(output, "  chatutil match --all --format json emoji '<:wave:1> <a:dance:2>'\n")
		Writef(output, "  cat message.txt | chatutil match --all TEXT_URL -\n")
	}

	return fs, flags
}

// HandleMatch executes the match command
func HandleMatch(args []string) error {
	fs, flags := SetupMatchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("match command requires a pattern type and text")
	}

	typeName, content := fs.Arg(0), fs.Arg(1)
	if content == StdinFilePath {
		data, err := ReadInput(StdinFilePath)
		if err != nil {
			return err
		}
		content = string(data)
	}

	matcher, err := markup.NewMatcher()
	if err != nil {
		return err
	}

	var matches []*markup.Match
	if flags.All {
		n := flags.Limit
		if n <= 0 {
			n = -1
		}
		matches, err = matcher.MatchAll(typeName, content, n)
	} else {
		var m *markup.Match
		m, err = matcher.Match(typeName, content)
		if m != nil {
			matches = []*markup.Match{m}
		}
	}
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(MatchOutput{
			Type:    strings.ToUpper(typeName),
			Count:   len(matches),
			Matches: matches,
		}, flags.Format)
	}

	if len(matches) == 0 {
		Writef(os.Stderr, "No match\n")
		return nil
	}
	for _, m := range matches {
		writeMatch(m)
	}
	return nil
}

func writeMatch(m *markup.Match) {
	Writef(os.Stdout, "%s [%d:%d] %q\n", m.Type, m.Start, m.End, m.Matched)
	if m.Name != "" {
		Writef(os.Stdout, "  Name: %s\n", m.Name)
	}
	if m.ID != "" {
		Writef(os.Stdout, "  ID: %s\n", m.ID)
	}
	if m.Animated {
		Writef(os.Stdout, "  Animated: true\n")
	}
	if m.Language != "" {
		Writef(os.Stdout, "  Language: %s\n", m.Language)
	}
	if m.Text != "" {
		Writef(os.Stdout, "  Text: %q\n", m.Text)
	}
}
