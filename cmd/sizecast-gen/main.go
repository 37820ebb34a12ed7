// Package main provides the CLI entrypoint for sizecast-gen.
//
// sizecast-gen turns the capability table into the per-width conversion
// files of package sizecast:
//   - Loads and validates the YAML table
//   - Renders one file per pointer width plus the unsupported-target guard
//   - Writes them, or with -check reports files that are out of date
//   - With -verify type-checks the package for every GOARCH in the table
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sizecast/internal/gen"
	"sizecast/internal/typecheck"
	"sizecast/matrix"
)

// errStale is returned by -check when generated files differ.
var errStale = errors.New("generated files are out of date, run go generate")

type options struct {
	table   string
	out     string
	check   bool
	verify  bool
	verbose bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "sizecast-gen: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sizecast-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.table, "table", "matrix/matrix.yaml", "capability table")
	fs.StringVar(&opts.out, "out", ".", "directory of package sizecast")
	fs.BoolVar(&opts.check, "check", false, "fail if the generated files in -out are stale instead of writing them")
	fs.BoolVar(&opts.verify, "verify", false, "type-check -out for every GOARCH named by the table")
	fs.BoolVar(&opts.verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return opts, nil
}

func newLogger(verbose bool, w io.Writer) *zap.Logger {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level))
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := newLogger(opts.verbose, stderr)
	defer func() { _ = log.Sync() }()

	file, err := matrix.LoadFile(opts.table)
	if err != nil {
		return err
	}

	diags := matrix.Validate(file)
	for _, w := range diags.Warnings {
		log.Warn("table warning", zap.String("diagnostic", w.String()))
	}

	table, err := matrix.Resolve(file)
	if err != nil {
		return err
	}

	config := gen.DefaultGeneratorConfig()
	config.Source = tableSource(opts.table, opts.out)
	config.DebugDir = os.TempDir()

	files, err := gen.NewGenerator(config, gen.WithLogger(log)).Generate(table)
	if err != nil {
		return err
	}

	if opts.check {
		stale, err := gen.Stale(files, opts.out)
		if err != nil {
			return err
		}

		if len(stale) > 0 {
			log.Error("stale generated files", zap.Strings("files", stale))
			return errStale
		}
	} else if err := gen.WriteFiles(files, opts.out); err != nil {
		return err
	}

	if opts.verify {
		return verify(ctx, log, table, opts.out)
	}

	return nil
}

func verify(ctx context.Context, log *zap.Logger, table *matrix.Table, dir string) error {
	var targets []typecheck.Target

	for _, tag := range table.Tags() {
		if typecheck.KnownArch(tag) {
			targets = append(targets, typecheck.TargetFor(tag))
		}
	}

	reports, err := typecheck.Matrix(ctx, log, dir, targets)
	if err != nil {
		return err
	}

	for _, r := range reports {
		selected := table.Select(r.Target.GOARCH)
		if len(selected) != 1 || int64(selected[0].Width) != r.PointerWidth {
			return fmt.Errorf("%s compiled with PointerWidth %d, which the table does not select", r.Target, r.PointerWidth)
		}

		log.Info("verified target", zap.Stringer("target", r.Target), zap.Int64("pointer_width", r.PointerWidth))
	}

	return nil
}

// tableSource names the table relative to the output package, so the
// generated header does not depend on the working directory.
func tableSource(table, out string) string {
	rel, err := filepath.Rel(out, table)
	if err != nil {
		return filepath.ToSlash(table)
	}

	return filepath.ToSlash(rel)
}
