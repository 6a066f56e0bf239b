// exifmeta prints the EXIF metadata of images.
//
// Usage:
//
//	exifmeta [flags] <path>...
//
// Each field is printed as "<tag name> | <value with unit>". With
// --recursive, directories are walked and every regular file is read.
// Files without EXIF data are reported on stderr and skipped.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/simonhull/exifmeta"
	"github.com/simonhull/exifmeta/internal/query"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		configPath  string
		showVersion bool
		cfg         = defaultConfig()
	)

	flagSet := pflag.NewFlagSet("exifmeta", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&cfg.Recursive, "recursive", "r", false, "walk directories and read every regular file")
	flagSet.StringVarP(&cfg.Output, "output", "o", "text", "output format: text, json, yaml or cbor")
	flagSet.StringVar(&cfg.Where, "where", "", "only print files matching this expression, e.g. \"FNumber < 4\"")
	flagSet.StringVarP(&configPath, "config", "c", "", "read settings from a YAML file")
	flagSet.IntVarP(&cfg.Jobs, "jobs", "j", 0, "files decoded in parallel (default: number of CPUs)")
	flagSet.BoolVar(&cfg.Strict, "strict", false, "fail a file when any field cannot be decoded")
	flagSet.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log skipped files and decode warnings")
	flagSet.BoolVar(&showVersion, "version", false, "print version and exit")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if showVersion {
		info := exifmeta.GetVersionInfo()
		fmt.Fprintf(stdout, "exifmeta %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return nil
	}

	if configPath != "" {
		fileCfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = mergeFlags(fileCfg, cfg, flagSet)
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	if flagSet.NArg() == 0 {
		printHelp(stderr, flagSet)
		return fmt.Errorf("no input paths")
	}

	logLevel := slog.LevelInfo
	if cfg.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	var filter *query.Filter
	if cfg.Where != "" {
		var err error
		if filter, err = query.Compile(cfg.Where); err != nil {
			return err
		}
	}

	paths, err := collectPaths(flagSet.Args(), cfg, logger)
	if err != nil {
		return err
	}

	out, err := newWriter(cfg.Output, stdout, len(paths) > 1)
	if err != nil {
		return err
	}

	opts := []exifmeta.Option{}
	if cfg.Strict {
		opts = append(opts, exifmeta.WithStrictParsing())
	}
	if cfg.Jobs > 0 {
		opts = append(opts, exifmeta.WithConcurrency(cfg.Jobs))
	}

	var failed, matched int
	err = exifmeta.DecodeEach(ctx, paths, func(path string, file *exifmeta.File, err error) error {
		if err != nil {
			failed++
			logger.Error("cannot read metadata", "path", path, "error", err)
			return nil
		}
		for _, w := range file.Warnings {
			logger.Debug("decode warning", "path", path, "warning", w.String())
		}
		if filter != nil {
			ok, err := filter.Match(file.Fields)
			if err != nil {
				logger.Warn("filter failed", "path", path, "error", err)
				return nil
			}
			if !ok {
				logger.Debug("filtered out", "path", path)
				return nil
			}
		}
		matched++
		return out.Write(file)
	}, opts...)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Debug("done", "files", len(paths), "printed", matched, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(paths))
	}
	return nil
}

// mergeFlags overlays the flags set on the command line onto the
// settings read from a config file.
func mergeFlags(fileCfg, flagCfg *Config, flagSet *pflag.FlagSet) *Config {
	merged := *fileCfg
	if flagSet.Changed("recursive") {
		merged.Recursive = flagCfg.Recursive
	}
	if flagSet.Changed("output") {
		merged.Output = flagCfg.Output
	}
	if flagSet.Changed("where") {
		merged.Where = flagCfg.Where
	}
	if flagSet.Changed("jobs") {
		merged.Jobs = flagCfg.Jobs
	}
	if flagSet.Changed("strict") {
		merged.Strict = flagCfg.Strict
	}
	if flagSet.Changed("verbose") {
		merged.Verbose = flagCfg.Verbose
	}
	return &merged
}

// collectPaths expands the command-line arguments into files. Directories
// are walked when recursive is set and skipped otherwise.
func collectPaths(args []string, cfg *Config, logger *slog.Logger) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			// Let the decoder report it alongside other failures.
			paths = append(paths, arg)
			continue
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		if !cfg.Recursive {
			logger.Warn("skipping directory, use --recursive to read it", "path", arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("cannot walk", "path", path, "error", err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !cfg.wantFile(path) {
				logger.Debug("skipping by extension", "path", path)
				return nil
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}
	return paths, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `exifmeta prints the EXIF metadata of JPEG, TIFF and TIFF-based raw images.

Usage:
  exifmeta [flags] <path>...

Examples:
  # Print every field of one photo
  exifmeta photo.jpg

  # Walk a directory tree and emit JSON Lines
  exifmeta -r -o json ~/Pictures

  # Only list wide-aperture shots
  exifmeta -r --where "FNumber <= 2" ~/Pictures

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
