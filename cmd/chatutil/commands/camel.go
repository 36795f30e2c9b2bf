package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/chatutil/casing"
)

// CamelFlags contains flags for the camel command
type CamelFlags struct {
	Skip        string
	DeepSkip    bool
	InputFormat string
	Keys        bool
}

// SetupCamelFlags creates and configures a FlagSet for the camel command.
// Returns the FlagSet and a CamelFlags struct with bound flag variables.
func SetupCamelFlags() (*flag.FlagSet, *CamelFlags) {
	fs := flag.NewFlagSet("camel", flag.ContinueOnError)
	flags := &CamelFlags{}

	fs.StringVar(&flags.Skip, "skip", "", "comma-separated keys to leave unconverted")
	fs.BoolVar(&flags.DeepSkip, "deep-skip", false, "apply --skip at every depth instead of only the top-level mapping")
	fs.StringVar(&flags.InputFormat, "input-format", "", "input format: json or yaml (default: detected from content)")
	fs.BoolVar(&flags.Keys, "keys", false, "treat arguments as keys and print each converted key")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: chatutil camel [flags] <file|->\n")
		Writef(output, "       chatutil camel --keys <key>...\n\n")
		Writef(output, "Convert snake_case keys of a JSON or YAML document to camelCase.\n")
		Writef(output, "The converted document is written to stdout in the input format.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  chatutil camel guild.json\n")
		Writef(output, "  chatutil camel --skip permissions,role_ids member.yaml\n")
		Writef(output, "  curl -s $API/guilds/1 | chatutil camel -\n")
		Writef(output, "  chatutil camel --keys premium_since joined_at\n")
	}

	return fs, flags
}

// HandleCamel executes the camel command
func HandleCamel(args []string) error {
	fs, flags := SetupCamelFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Keys {
		if fs.NArg() == 0 {
			fs.Usage()
			return fmt.Errorf("camel --keys requires at least one key")
		}
		for _, key := range fs.Args() {
			fmt.Println(casing.ToCamelCase(key))
		}
		return nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("camel command requires exactly one file path or '-' for stdin")
	}

	format, err := casing.ParseFormat(flags.InputFormat)
	if err != nil {
		return err
	}

	data, err := ReadInput(fs.Arg(0))
	if err != nil {
		return err
	}

	doc, format, err := casing.Decode(data, format, camelOptions(flags)...)
	if err != nil {
		return fmt.Errorf("converting %s: %w", FormatInputPath(fs.Arg(0)), err)
	}

	out, err := casing.Marshal(doc, format)
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	Writef(os.Stdout, "%s", out)
	if format == casing.FormatJSON {
		Writef(os.Stdout, "\n")
	}
	return nil
}

func camelOptions(flags *CamelFlags) []casing.Option {
	opts := []casing.Option{casing.WithDeepSkip(flags.DeepSkip)}
	var skip []string
	for _, key := range strings.Split(flags.Skip, ",") {
		if key = strings.TrimSpace(key); key != "" {
			skip = append(skip, key)
		}
	}
	if len(skip) > 0 {
		opts = append(opts, casing.WithSkip(skip...))
	}
	return opts
}
