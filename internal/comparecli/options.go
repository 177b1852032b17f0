// internal/comparecli/options.go
package comparecli

import (
	"errors"
	"flag"
	"fmt"

	"dnascan/internal/cli"
	"dnascan/internal/version"
)

// Options holds all flags for the dnascan-compare tool.
type Options struct {
	ReferenceFile string
	VariantFile   string
	Output        string
	Version       bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pairwise DNA sequence comparison

Aligns two FASTA sequences position by position, lists and classifies
mutations, and compares the translated proteins.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ReferenceFile, "reference", "", "reference FASTA file [*]")
	fs.StringVar(&opt.VariantFile, "variant", "", "variant FASTA file [*]")
	fs.StringVar(&opt.Output, "output", cli.OutputText, "output format: text | json [text]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.ReferenceFile == "" || opt.VariantFile == "" {
		return opt, errors.New("--reference and --variant must both be supplied")
	}
	if opt.Output != cli.OutputText && opt.Output != cli.OutputJSON {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
