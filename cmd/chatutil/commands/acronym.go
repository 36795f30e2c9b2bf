package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/chatutil/casing"
)

// SetupAcronymFlags creates and configures a FlagSet for the acronym command.
func SetupAcronymFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("acronym", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: chatutil acronym <name>...\n\n")
		Writef(output, "Print the acronym of a guild or channel name. Multiple arguments are\n")
		Writef(output, "joined with spaces, so quoting the name is optional.\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  chatutil acronym Hello World\n")
		Writef(output, "  chatutil acronym \"Bob's Place\"\n")
	}

	return fs
}

// HandleAcronym executes the acronym command
func HandleAcronym(args []string) error {
	fs := SetupAcronymFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("acronym command requires a name")
	}

	fmt.Println(casing.Acronym(strings.Join(fs.Args(), " ")))
	return nil
}
