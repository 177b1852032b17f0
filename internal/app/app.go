// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"dnascan/internal/cli"
	"dnascan/internal/fasta"
	"dnascan/internal/output"
	"dnascan/internal/report"
	"dnascan/internal/version"
	"dnascan/internal/writers"
)

// RunContext parses argv, analyzes the FASTA input, and writes the report.
// Exit codes: 0 ok, 1 runtime failure, 2 usage error.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnascan")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "dnascan version %s\n", version.Version)
		return 0
	}

	rec, err := fasta.Load(opts.FastaFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	rep, err := report.Analyze(rec.Header, rec.Sequence)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	switch opts.Output {
	case cli.OutputJSON:
		err = output.EncodePretty(outw, rep)
	default:
		err = output.WriteAnalysisText(outw, rep)
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
