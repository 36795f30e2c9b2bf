package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/chatutil/color"
)

// ColorFlags contains flags for the color command
type ColorFlags struct {
	NoHash bool
	Format string
}

// ColorOutput is the structured result of the color command.
type ColorOutput struct {
	Int int       `json:"int" yaml:"int"`
	Hex string    `json:"hex" yaml:"hex"`
	RGB color.RGB `json:"rgb" yaml:"rgb"`
}

// SetupColorFlags creates and configures a FlagSet for the color command.
// Returns the FlagSet and a ColorFlags struct with bound flag variables.
func SetupColorFlags() (*flag.FlagSet, *ColorFlags) {
	fs := flag.NewFlagSet("color", flag.ContinueOnError)
	flags := &ColorFlags{}

	fs.BoolVar(&flags.NoHash, "no-hash", false, "omit the leading '#' from the hex form")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: chatutil color [flags] <value>\n\n")
		Writef(output, "Convert a color between its packed integer, hex and RGB forms.\n")
		Writef(output, "The value may be #rrggbb, 0xrrggbb, a decimal integer, or r,g,b.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  chatutil color '#5865f2'\n")
		Writef(output, "  chatutil color 5793266\n")
		Writef(output, "  chatutil color --format json 88,101,242\n")
	}

	return fs, flags
}

// HandleColor executes the color command
func HandleColor(args []string) error {
	fs, flags := SetupColorFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("color command requires exactly one value")
	}

	n, err := color.Parse(fs.Arg(0))
	if err != nil {
		return err
	}

	out := ColorOutput{Int: n, Hex: color.IntToHex(n, !flags.NoHash), RGB: color.IntToRGB(n)}
	if flags.Format != FormatText {
		return OutputStructured(out, flags.Format)
	}

	Writef(os.Stdout, "Int: %d\n", out.Int)
	Writef(os.Stdout, "Hex: %s\n", out.Hex)
	Writef(os.Stdout, "RGB: %s\n", out.RGB)
	return nil
}
