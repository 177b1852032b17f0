// internal/compareapp/app.go
package compareapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dnascan/internal/cli"
	"dnascan/internal/comparecli"
	"dnascan/internal/fasta"
	"dnascan/internal/output"
	"dnascan/internal/report"
	"dnascan/internal/version"
	"dnascan/internal/writers"
)

// RunContext parses argv, compares the two FASTA inputs, and writes the
// report. Exit codes: 0 ok, 1 runtime failure, 2 usage error.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := comparecli.NewFlagSet("dnascan-compare")
	fs.SetOutput(io.Discard)

	opts, err := comparecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnascan-compare version %s\n", version.Version)
		return 0
	}

	ref, err := fasta.Load(opts.ReferenceFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	variant, err := fasta.Load(opts.VariantFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	rep := report.Compare(ref.Header, ref.Sequence, variant.Header, variant.Sequence)

	switch opts.Output {
	case cli.OutputJSON:
		err = output.EncodePretty(outw, rep)
	default:
		err = output.WriteComparisonText(outw, rep)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
