// Command litgrid renders a literature record collection as an interactive,
// filterable table with a derived distribution chart. One load serves three
// surfaces: an HTTP server, a terminal viewer, and a one-shot static HTML
// export.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/litgrid/litgrid/internal/config"
	"github.com/litgrid/litgrid/internal/logging"
	"github.com/litgrid/litgrid/internal/prefs"
	"github.com/litgrid/litgrid/internal/record"
	"github.com/litgrid/litgrid/internal/source"
	"github.com/litgrid/litgrid/internal/tui"
	"github.com/litgrid/litgrid/internal/viewer"
	"github.com/litgrid/litgrid/internal/web"
)

func main() {
	input := flag.String("input", "", "record collection to load (.csv or .json)")
	summaryPath := flag.String("summary", "", "external aggregation summary JSON (overrides the computed one)")
	mode := flag.String("mode", "serve", "delivery surface: serve, tui or export")
	out := flag.String("out", "litgrid.html", "output file for export mode")
	flag.Parse()

	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: litgrid -input records.csv [-summary summary.json] [-mode serve|tui|export] [-out viewer.html]")
		os.Exit(2)
	}

	v, err := load(*input, *summaryPath, cfg)
	if err != nil {
		slog.Error("loading records", "error", err)
		os.Exit(1)
	}

	switch *mode {
	case "serve":
		err = serve(v, cfg)
	case "tui":
		err = tui.Run(v, fileStore(cfg))
	case "export":
		err = export(v, cfg, *out)
	default:
		err = fmt.Errorf("unknown mode %q (want serve, tui or export)", *mode)
	}
	if err != nil {
		slog.Error("litgrid failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

// load reads the record collection, normalizes it, and pairs it with its
// aggregation summary: computed from the normalized records, or read from an
// external file when one is given.
func load(input, summaryPath string, cfg *config.Config) (*viewer.Viewer, error) {
	var rows record.Collection
	var err error
	switch strings.ToLower(filepath.Ext(input)) {
	case ".csv":
		rows, err = source.ReadCSV(input)
	case ".json":
		rows, err = source.ReadJSON(input)
	default:
		return nil, fmt.Errorf("unsupported input %s: want .csv or .json", input)
	}
	if err != nil {
		return nil, err
	}
	rows = source.Normalize(rows)

	var sum *record.Summary
	if summaryPath != "" {
		if sum, err = source.ReadSummary(summaryPath); err != nil {
			return nil, err
		}
	} else {
		sum = source.Summarize(rows, cfg.Viewer.MaxKeywords)
	}

	slog.Info("records loaded", "records", len(rows), "time_field", sum.TimeField)

	return viewer.New(rows, sum, viewer.Config{
		DefaultVisibleColumns: cfg.Viewer.VisibleColumns,
		DefaultSearchField:    cfg.Viewer.SearchField,
		PageSize:              cfg.Viewer.PageSize,
		Title:                 cfg.Viewer.Title,
		TrustMarkup:           cfg.Viewer.TrustMarkup,
	}), nil
}

// serve runs the HTTP surface until SIGINT/SIGTERM, then shuts down
// gracefully within the configured timeout.
func serve(v *viewer.Viewer, cfg *config.Config) error {
	srv := web.NewServer(v, cfg)

	done := make(chan error, 1)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		slog.Info("shutting down", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		done <- srv.Shutdown(ctx)
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-done
}

// export writes the one-shot static document.
func export(v *viewer.Viewer, cfg *config.Config, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := web.WriteStatic(f, v, fileStore(cfg)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	slog.Info("export written", "path", out)
	return nil
}

// fileStore resolves the preference store for the non-web surfaces. A store
// that cannot be resolved degrades to no persistence, never to a failed run.
func fileStore(cfg *config.Config) prefs.Store {
	path := cfg.Prefs.Path
	if path == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			slog.Warn("no preference store available", "error", err)
			return nil
		}
		path = p
	}
	return prefs.NewFileStore(path)
}
