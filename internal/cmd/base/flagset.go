package base

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps flag.FlagSet so commands can append generated flag
// documentation to their Help() text.
type FlagSet struct {
	*flag.FlagSet
}

func NewFlagSet(f *flag.FlagSet) *FlagSet {
	// Commands render their own help; suppress flag's usage output.
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help renders the flag set as an options block.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		usage := fl.Usage
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0" {
			usage += fmt.Sprintf(" (default: %s)", fl.DefValue)
		}
		fmt.Fprintf(&b, "  -%s\n      %s\n", fl.Name, usage)
	})
	return b.String()
}
