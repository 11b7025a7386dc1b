// Package main is the entry point for the textstat tool, which decodes a
// file into a UTF-16 text buffer and reports its line statistics.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/watch"
	"github.com/dshills/textcore/text"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, path := parseFlags()

	if !text.IsEncodingSupported(cfg.Encoding) {
		fmt.Fprintf(os.Stderr, "Error: unsupported encoding %q\n", cfg.Encoding)
		return 1
	}

	if err := reportOnce(os.Stdout, path, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !cfg.Watch {
		return 0
	}

	w, err := watch.New(path, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", path, err)
		return 1
	}
	defer w.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-signals:
			return 0
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "Error: watch: %v\n", err)
		case _, ok := <-w.Events():
			if !ok {
				return 0
			}
			if err := reportOnce(os.Stdout, path, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

// reportOnce decodes the file and writes one report.
func reportOnce(out *os.File, path string, cfg config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var progress func(int64)
	if cfg.Progress {
		total := info.Size()
		progress = func(n int64) {
			fmt.Fprintf(os.Stderr, "\rread %d/%d bytes", n, total)
			if n >= total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}

	tx := text.Build(f, info.Size(), cfg.Encoding, cfg.ChunkSize, progress)
	rep := newReport(path, info.Size(), tx)

	if cfg.JSON {
		js, err := rep.JSON()
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		fmt.Fprintln(out, js)
		return nil
	}
	rep.WriteText(out)
	return nil
}

func parseFlags() (config.Config, string) {
	var (
		configPath  string
		showVersion bool
	)
	flags := config.Default()

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&flags.Encoding, "encoding", "", "Source encoding (IANA name)")
	flag.StringVar(&flags.Encoding, "e", "", "Source encoding (shorthand)")
	flag.IntVar(&flags.ChunkSize, "chunk-size", 0, "Decode read granularity in bytes")
	flag.BoolVar(&flags.JSON, "json", false, "Emit the report as JSON")
	flag.BoolVar(&flags.Watch, "watch", false, "Re-report when the file changes")
	flag.BoolVar(&flags.Watch, "w", false, "Re-report when the file changes (shorthand)")
	flag.BoolVar(&flags.Progress, "progress", false, "Show decode progress on stderr")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textstat - line statistics for text files\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textstat [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  textstat notes.txt              Report on a UTF-8 file\n")
		fmt.Fprintf(os.Stderr, "  textstat -e ISO-8859-1 old.txt  Decode Latin-1 input\n")
		fmt.Fprintf(os.Stderr, "  textstat -json -w log.txt       JSON report, refreshed on change\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("textstat %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file.
	if flags.Encoding != "" {
		cfg.Encoding = flags.Encoding
	}
	if flags.ChunkSize > 0 {
		cfg.ChunkSize = flags.ChunkSize
	}
	cfg.JSON = cfg.JSON || flags.JSON
	cfg.Watch = cfg.Watch || flags.Watch
	cfg.Progress = cfg.Progress || flags.Progress

	return cfg, flag.Arg(0)
}
