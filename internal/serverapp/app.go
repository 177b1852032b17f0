// internal/serverapp/app.go
package serverapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"dnascan/internal/config"
	"dnascan/internal/history"
	"dnascan/internal/server"
	"dnascan/internal/version"
)

// Options holds all flags for the dnascan-server tool. Flags override the
// YAML config file.
type Options struct {
	ConfigFile  string
	Listen      string
	HistoryPath string
	Version     bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA analysis HTTP API

Serves /analyze, /compare, and /upload over validated FASTA input.

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

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file [none]")
	fs.StringVar(&opt.Listen, "listen", "", "listen address (overrides config) [:8000]")
	fs.StringVar(&opt.HistoryPath, "history", "", "sqlite run-history path (overrides config) [disabled]")
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
	return opt, nil
}

// RunContext starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Exit codes: 0 ok, 1 runtime failure, 2 usage error.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := NewFlagSet("dnascan-server")
	fs.SetOutput(io.Discard)

	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "dnascan-server version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Listen != "" {
		cfg.Listen = opts.Listen
	}
	if opts.HistoryPath != "" {
		cfg.HistoryPath = opts.HistoryPath
	}

	lvl, err := cfg.SlogLevel()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	var hist *history.Store
	if cfg.HistoryPath != "" {
		hist, err = history.Open(cfg.HistoryPath)
		if err != nil {
			log.Error("open history store", "err", err)
			return 1
		}
		defer func() { _ = hist.Close() }()
	}

	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      server.New(cfg, log, hist).Handler(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Listen, "history", cfg.HistoryPath != "")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "err", err)
			return 1
		}
		return 0
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		log.Error("serve", "err", err)
		return 1
	}
}
