// Package options validates mutually exclusive arguments shared by the MCP
// tools and CLI commands.
package options

import (
	"fmt"
	"strings"
)

// Arg names an argument and records whether the caller supplied it.
type Arg struct {
	Name string
	Set  bool
}

// ExactlyOne returns an error unless exactly one of args is set.
func ExactlyOne(args ...Arg) error {
	names := make([]string, 0, len(args))
	var set []string
	for _, a := range args {
		names = append(names, a.Name)
		if a.Set {
			set = append(set, a.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("exactly one of %s must be provided", strings.Join(names, ", "))
	default:
		return fmt.Errorf("exactly one of %s must be provided (got %s)", strings.Join(names, ", "), strings.Join(set, " and "))
	}
}
