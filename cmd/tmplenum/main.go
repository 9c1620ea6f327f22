package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-tmplenum/pkg/catalog"
	"github.com/goliatone/go-tmplenum/pkg/emit"
	"github.com/goliatone/go-tmplenum/pkg/emit/template/pongo"
	"github.com/goliatone/go-tmplenum/pkg/expand"
	"github.com/goliatone/go-tmplenum/pkg/orchestrator"
)

// errReported marks failures whose diagnostics were already printed.
var errReported = errors.New("tmplenum: failed")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if !errors.Is(err, errReported) {
			log.SetFlags(0)
			log.SetPrefix("tmplenum: ")
			log.Println(err)
		}
		os.Exit(1)
	}
}

type cliOptions struct {
	strict    bool
	catalog   string
	emit      string
	templates string
	pkg       string
	guard     string
	report    bool
	verbose   bool
	noColor   bool
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("tmplenum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: tmplenum [flags] < template > output\n\n")
		fmt.Fprintf(fs.Output(), "Replace {NAME} placeholders with their position in the enumeration catalog.\n\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.strict, "strict", false, "fail on placeholders missing from the catalog")
	fs.StringVar(&opts.catalog, "catalog", "", "catalog document or directory of documents (YAML/JSON)")
	fs.StringVar(&opts.emit, "emit", "", "print the catalog table instead of expanding stdin (go, c, yaml, text)")
	fs.StringVar(&opts.templates, "templates", "", "directory whose go.tpl/c.tpl replace the built-in emitter templates")
	fs.StringVar(&opts.pkg, "package", "", "package name for -emit go")
	fs.StringVar(&opts.guard, "guard", "", "include guard for -emit c")
	fs.BoolVar(&opts.report, "report", false, "print placeholder usage to stderr after expanding")
	fs.BoolVar(&opts.verbose, "v", false, "log unknown placeholders that are passed through")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable coloured diagnostics")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, errReported
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("unexpected arguments %v; the template is read from stdin", fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	color.NoColor = opts.noColor || !isTerminal(stderr)

	options := []orchestrator.Option{orchestrator.WithStrict(opts.strict)}
	if opts.verbose {
		options = append(options, orchestrator.WithLogger(log.New(stderr, "tmplenum: ", 0)))
	}
	if opts.catalog != "" {
		option, err := catalogOption(opts.catalog)
		if err != nil {
			return err
		}
		options = append(options, option)
	}

	if opts.templates != "" {
		registry, err := emit.NewDefaultRegistry(pongo.WithOverrideDir(opts.templates))
		if err != nil {
			return err
		}
		options = append(options, orchestrator.WithRegistry(registry))
	}

	gen := orchestrator.New(options...)
	if _, err := gen.Catalog(); err != nil {
		return err
	}

	if opts.emit != "" {
		return gen.Emit(ctx, opts.emit, stdout, emit.Options{
			Package: opts.pkg,
			Guard:   opts.guard,
		})
	}

	template, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	err = gen.Expand(ctx, orchestrator.Request{
		Input:  bytes.NewReader(template),
		Output: stdout,
	})
	if unknown := expand.UnknownPlaceholders(err); len(unknown) > 0 {
		printUnknown(stderr, unknown)
		return errReported
	}
	if err != nil {
		return err
	}

	if opts.report {
		report, err := gen.Report(ctx, bytes.NewReader(template))
		if err != nil {
			return err
		}
		printReport(stderr, report)
	}
	return nil
}

func catalogOption(path string) (orchestrator.Option, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return orchestrator.WithCatalogFS(os.DirFS(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	cat, err := catalog.Parse(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return orchestrator.WithCatalog(cat), nil
}

func printUnknown(w io.Writer, unknown []*expand.UnknownPlaceholderError) {
	label := color.New(color.FgRed, color.Bold)
	hint := color.New(color.FgCyan)

	for _, upe := range unknown {
		label.Fprint(w, "error")
		fmt.Fprintf(w, ": unknown placeholder %s at %d:%d", upe.Token.Text(), upe.Token.Line, upe.Token.Column)
		if len(upe.Suggestions) > 0 {
			fmt.Fprint(w, " (did you mean ")
			for i, s := range upe.Suggestions {
				if i > 0 {
					fmt.Fprint(w, ", ")
				}
				hint.Fprint(w, s)
			}
			fmt.Fprint(w, "?)")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d unknown placeholder(s); nothing written\n", len(unknown))
}

func printReport(w io.Writer, report expand.Report) {
	heading := color.New(color.Bold)
	warn := color.New(color.FgYellow)

	heading.Fprintln(w, "placeholder report")
	fmt.Fprintf(w, "  substituted: %d token(s), %d distinct name(s)\n", report.Total(), len(report.Counts))
	fmt.Fprintf(w, "  inert names: %d\n", len(report.Inert))
	for _, token := range report.Unknown {
		warn.Fprintf(w, "  unknown %s at %d:%d\n", token.Text(), token.Line, token.Column)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
