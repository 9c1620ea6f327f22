package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-tmplenum/pkg/emit"
	"github.com/goliatone/go-tmplenum/pkg/orchestrator"
)

func main() {
	var (
		outputPath = flag.String("output", "pkg/catalog/testdata/floatinfo.yaml", "output path for the catalog snapshot")
		format     = flag.String("format", "yaml", "emitter used for the snapshot")
		check      = flag.Bool("check", false, "fail when the snapshot on disk is stale instead of rewriting it")
	)
	flag.Parse()

	var buf bytes.Buffer
	gen := orchestrator.New()
	if err := gen.Emit(context.Background(), *format, &buf, emit.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "emit snapshot: %v\n", err)
		os.Exit(1)
	}

	if *check {
		current, err := os.ReadFile(*outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read snapshot: %v\n", err)
			os.Exit(1)
		}
		if !bytes.Equal(current, buf.Bytes()) {
			fmt.Fprintf(os.Stderr, "%s is stale; rerun without -check\n", *outputPath)
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write snapshot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Catalog snapshot written to %s\n", *outputPath)
}
