// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/jeranaias/fcomp/internal/config"
	"github.com/jeranaias/fcomp/internal/diff"
	"github.com/jeranaias/fcomp/internal/source"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const usageText = `fcomp - compare two text files line by line

Usage:
  fcomp [-n] [options] file1 file2
  fcomp --init-config [options]

Either file may be "-" for standard input.

Options:
  -n                    Give up when the files differ in more than n lines
                        (-0 accepts only identical files)
  --max-distance N      Same as -n (-1 = unlimited, 0 = identical only)
  --max-lines N         Refuse files with more than N lines (0 = unlimited)
  --max-edits N         Give up after N edit steps (0 = unlimited)
  -i, --ignore-case     Compare lines case-insensitively
  -w, --ignore-space    Ignore all whitespace when comparing lines
  --normalize           Apply Unicode NFC before comparing
  --color MODE          auto, always or never
  --width N             Truncate report lines to N columns (0 = off)
  --config PATH         Read settings from PATH
  --init-config         Write the current settings to the config file
  -v, --verbose         Log progress to stderr
  --version             Show version
  -h, --help            Show this help

Exit codes:
  0  files compared      2  usage error        7  file not found
  1  too many changes    3  config error       8  file too large
`

var flagSpecs = []FlagSpec{
	{Name: "max-distance"},
	{Name: "max-lines"},
	{Name: "max-edits"},
	{Name: "ignore-case", Short: "i", Bool: true},
	{Name: "ignore-space", Short: "w", Bool: true},
	{Name: "normalize", Bool: true},
	{Name: "color"},
	{Name: "width"},
	{Name: "config"},
	{Name: "init-config", Bool: true},
	{Name: "verbose", Short: "v", Bool: true},
	{Name: "version", Bool: true},
	{Name: "help", Short: "h", Bool: true},
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options is a parsed command line with the configuration resolved.
type Options struct {
	Files      [2]string
	Config     *config.Config
	ConfigPath string // file named by --config, "" for the default

	InitConfig  bool
	Verbose     bool
	ShowVersion bool
	ShowHelp    bool
}

// Parse parses args and resolves the configuration: flags override
// environment variables, which override the config file and defaults.
func Parse(args []string) (*Options, error) {
	p, err := NewArgParser(args, flagSpecs)
	if err != nil {
		return nil, err
	}

	opts := &Options{
		ConfigPath:  p.Flag("config"),
		InitConfig:  p.BoolFlag("init-config"),
		Verbose:     p.BoolFlag("verbose"),
		ShowVersion: p.BoolFlag("version"),
		ShowHelp:    p.BoolFlag("help"),
	}
	if opts.ShowHelp || opts.ShowVersion {
		return opts, nil
	}

	if !opts.InitConfig {
		if p.PositionalCount() != 2 {
			return nil, errMissingFiles
		}
		opts.Files = [2]string{p.Positional(0), p.Positional(1)}
		if opts.Files[0] == source.Stdin && opts.Files[1] == source.Stdin {
			return nil, &ValidationError{Field: "files", Value: "- -", Reason: "only one file may be standard input"}
		}
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, p); err != nil {
		return nil, err
	}
	opts.Config = cfg
	return opts, nil
}

func loadConfig(opts *Options) (*config.Config, error) {
	if opts.InitConfig {
		// The file is about to be written: start from defaults.
		cfg := config.Default()
		if err := cfg.ApplyEnvOverrides(); err != nil {
			return nil, &ConfigError{Err: err}
		}
		cfg.SetDefaults()
		return cfg, nil
	}

	if opts.ConfigPath != "" {
		cfg, err := config.LoadFromPath(opts.ConfigPath)
		if err != nil {
			return nil, &ConfigError{Path: opts.ConfigPath, Err: err}
		}
		return cfg, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, p *ArgParser) error {
	if n, ok := p.Bound(); ok {
		cfg.Diff.MaxDistance = n
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"max-distance", &cfg.Diff.MaxDistance},
		{"max-lines", &cfg.Input.MaxLines},
		{"max-edits", &cfg.Diff.MaxEdits},
		{"width", &cfg.UI.Width},
	}
	for _, f := range ints {
		if !p.HasFlag(f.name) {
			continue
		}
		n, err := p.FlagInt(f.name)
		if err != nil {
			return err
		}
		*f.dst = n
	}

	if p.HasFlag("ignore-case") {
		cfg.Diff.IgnoreCase = p.BoolFlag("ignore-case")
	}
	if p.HasFlag("ignore-space") {
		cfg.Diff.IgnoreSpace = p.BoolFlag("ignore-space")
	}
	if p.HasFlag("normalize") {
		cfg.Input.Normalize = p.BoolFlag("normalize")
	}
	if p.HasFlag("color") {
		cfg.UI.Color = p.Flag("color")
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return &ValidationError{Field: "options", Reason: err.Error()}
	}
	return nil
}

// =============================================================================
// RUN
// =============================================================================

// Run executes fcomp with args and returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, errorMessage(err))
		if exitCodeFor(err) == ExitUsageError {
			fmt.Fprintln(stderr, "Run 'fcomp --help' for usage.")
		}
		return exitCodeFor(err)
	}

	switch {
	case opts.ShowHelp:
		fmt.Fprint(stdout, usageText)
		return ExitSuccess
	case opts.ShowVersion:
		fmt.Fprintf(stdout, "fcomp %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return ExitSuccess
	}

	logger := newLogger(stderr, opts.Verbose)

	if opts.InitConfig {
		path, err := initConfig(opts)
		if err != nil {
			fmt.Fprintln(stderr, errorMessage(err))
			return exitCodeFor(err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitSuccess
	}

	if err := compare(opts, stdin, stdout, logger); err != nil {
		var distanceErr diff.DistanceError
		msg := errorMessage(err)
		if errors.As(err, &distanceErr) {
			styles := NewStyles(stderr, ColorProfile(opts.Config.UI.Color, stderr))
			msg = styles.Render(styles.Differ, msg)
		}
		logger.Printf("ERROR: %v", err)
		fmt.Fprintln(stderr, msg)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func newLogger(stderr io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(stderr, "fcomp: ", 0)
}

// initConfig writes the resolved configuration, refusing to overwrite.
func initConfig(opts *Options) (string, error) {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return "", &ConfigError{Err: err}
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return "", &ConfigError{Path: path, Err: fs.ErrExist}
	}
	if err := config.SaveTOML(opts.Config, path); err != nil {
		return "", &ConfigError{Path: path, Err: err}
	}
	return path, nil
}

// compare reads both inputs and writes the report to stdout.
func compare(opts *Options, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	cfg := opts.Config
	if opts.ConfigPath != "" {
		logger.Printf("CONFIG: loaded %s", opts.ConfigPath)
	}
	logger.Printf("CONFIG: max_distance=%d max_edits=%d max_lines=%d ignore_case=%t ignore_space=%t normalize=%t",
		cfg.Diff.MaxDistance, cfg.Diff.MaxEdits, cfg.Input.MaxLines,
		cfg.Diff.IgnoreCase, cfg.Diff.IgnoreSpace, cfg.Input.Normalize)

	srcOpts := source.Options{MaxLines: cfg.Input.MaxLines, Normalize: cfg.Input.Normalize}
	var inputs [2][]string
	for i, name := range opts.Files {
		lines, err := readInput(name, stdin, srcOpts)
		if err != nil {
			return err
		}
		logger.Printf("INPUT: %s: %d lines", name, len(lines))
		inputs[i] = lines
	}

	changes, script, err := diff.Compare(inputs[0], inputs[1], diff.Options{
		MaxDistance: cfg.Diff.MaxDistance,
		MaxEdits:    cfg.Diff.MaxEdits,
		Equal:       diff.EqualFunc(cfg.Diff.IgnoreCase, cfg.Diff.IgnoreSpace),
	})
	styles := NewStyles(stdout, ColorProfile(cfg.UI.Color, stdout))
	if errors.Is(err, diff.ErrIdentical) {
		logger.Printf("DIFF: identical, %d lines", len(inputs[0]))
		fmt.Fprintln(stdout, styles.Render(styles.Identical, "The files are identical."))
		return nil
	}
	if err != nil {
		return err
	}

	stats := script.Stats()
	logger.Printf("DIFF: distance %d (%d inserted, %d deleted), %d edit nodes",
		script.Distance(), stats.Inserted, stats.Deleted, script.Nodes())

	n, err := diff.WriteChanges(stdout, changes, diff.RenderOptions{
		Width:  cfg.UI.Width,
		Header: styles.Header(),
	})
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Printf("DIFF: %d change records", n)
	return nil
}

func readInput(name string, stdin io.Reader, opts source.Options) ([]string, error) {
	if name == source.Stdin {
		return source.Read(stdin, "<stdin>", opts)
	}
	return source.ReadFile(name, opts)
}
