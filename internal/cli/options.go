// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"dnascan/internal/version"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds all flags for the dnascan analyze tool.
type Options struct {
	FastaFile string
	Output    string
	Version   bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA sequence analysis

Reports nucleotide composition, GC/AT content, reverse complement, codons,
open reading frames, and the translated protein of a FASTA sequence.

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

	fs.StringVar(&opt.FastaFile, "fasta", "", "FASTA file ('-' for stdin, '.gz' ok) [*]")
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json [text]")
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

	if opt.FastaFile == "" {
		return opt, errors.New("--fasta is required")
	}
	if opt.Output != OutputText && opt.Output != OutputJSON {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
