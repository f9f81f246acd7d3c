// Command logicc compiles bounded first-order logic formulas to x86
// assembly.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/funvibe/logicc/internal/analyzer"
	"github.com/funvibe/logicc/internal/backend"
	"github.com/funvibe/logicc/internal/cache"
	"github.com/funvibe/logicc/internal/codegen"
	"github.com/funvibe/logicc/internal/config"
	"github.com/funvibe/logicc/internal/lexer"
	"github.com/funvibe/logicc/internal/parser"
	"github.com/funvibe/logicc/internal/pipeline"
	"github.com/funvibe/logicc/internal/prettyprinter"
	"github.com/funvibe/logicc/internal/utils"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(exitFailure)
		}
	}()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
		printUsage(stderr, "logicc")
		return exitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitFailure
	}
	rep := newReporter(stdout, stderr, cfg.Color)
	mode := codegen.Options{ShortCircuit: cfg.ShortCircuit, Optimize: cfg.Optimize}.Mode()

	source, err := os.ReadFile(opts.input)
	if err != nil {
		rep.fatal("Cannot open file '%s'", opts.input)
		return exitFailure
	}

	ctx := pipeline.NewPipelineContext(string(source))
	ctx.FilePath = opts.input
	if opts.verbose {
		ctx.Trace = stderr
		fmt.Fprintf(stdout, "Parsing input file: %s\n", opts.input)
	}

	ctx = pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{}).Run(ctx)
	if ctx.HasErrors() {
		rep.syntaxErrors(ctx.Errors)
		fmt.Fprintln(stderr, "Parsing failed. Cannot generate code.")
		return exitFailure
	}

	if opts.printAST {
		fmt.Fprintln(stdout, "Abstract Syntax Tree:")
		fmt.Fprint(stdout, prettyprinter.NewTreePrinter().Print(ctx.AstRoot))
		fmt.Fprintln(stdout)
	}
	if opts.printYAML {
		doc, err := prettyprinter.PrintYAML(ctx.AstRoot)
		if err != nil {
			rep.fatal("%s", err)
			return exitFailure
		}
		fmt.Fprint(stdout, doc)
	}

	if opts.checkOnly {
		return checkOnly(ctx, rep)
	}

	output := opts.output
	if output == "" {
		output = utils.OutputPath(opts.input, cfg.OutputDir)
		if cfg.OutputDir != "" {
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				rep.fatal("Could not create output directory '%s'", cfg.OutputDir)
				return exitFailure
			}
		}
	}

	// Analysis always runs so its diagnostics do not depend on the cache.
	ctx = pipeline.New(&analyzer.SemanticAnalyzerProcessor{}).Run(ctx)
	rep.semantic(ctx.Errors, ctx.Warnings)
	if ctx.HasErrors() {
		fmt.Fprintln(stderr, "Semantic analysis failed. Cannot generate code.")
		return exitFailure
	}

	store := openCache(cfg.Cache, rep)
	if store != nil {
		defer store.Close()
	}
	key := cache.Key(mode.String(), ctx.SourceCode)

	if asm, ok := lookup(store, key, rep); ok {
		if err := os.WriteFile(output, []byte(asm), 0o644); err != nil {
			rep.fatal("Could not open output file '%s'", output)
			return exitFailure
		}
		ctx.Assembly = asm
		if opts.verbose {
			fmt.Fprintf(stdout, "Using cached assembly (%s mode)\n", mode)
		}
	} else {
		if opts.verbose {
			fmt.Fprintln(stdout, "Generating assembly code...")
		}
		ctx = pipeline.New(codegen.NewCodegenProcessor(codegen.Options{
			ShortCircuit: cfg.ShortCircuit,
			Optimize:     cfg.Optimize,
			OutputFile:   output,
		})).Run(ctx)

		if ctx.HasErrors() {
			for _, e := range ctx.Errors {
				rep.fatal("%s", e.Message)
			}
			fmt.Fprintln(stderr, "Code generation failed.")
			return exitFailure
		}
		store.put(key, mode, ctx, rep)
	}

	fmt.Fprintf(stdout, "Assembly code generated successfully: %s\n", output)

	if opts.run {
		b, err := backend.New(opts.backendName())
		if err != nil {
			rep.fatal("%s", err)
			return exitFailure
		}
		ctx = pipeline.New(backend.NewExecutionProcessor(b)).Run(ctx)
		if ctx.HasErrors() || ctx.Result == nil {
			for _, e := range ctx.Errors {
				rep.fatal("%s", e.Message)
			}
			return exitFailure
		}
		if *ctx.Result {
			fmt.Fprintln(stdout, "Result: TRUE")
		} else {
			fmt.Fprintln(stdout, "Result: FALSE")
		}
	}
	return exitOK
}

func checkOnly(ctx *pipeline.PipelineContext, rep *reporter) int {
	fmt.Fprintln(rep.out, "Performing semantic analysis...")
	ctx = (&analyzer.SemanticAnalyzerProcessor{}).Process(ctx)
	rep.semantic(ctx.Errors, ctx.Warnings)
	if ctx.HasErrors() {
		fmt.Fprintln(rep.out, "\nSemantic analysis failed. See errors above.")
		return exitFailure
	}
	fmt.Fprintln(rep.out, "\nSemantic analysis completed successfully!")
	return exitOK
}

// loadConfig reads -config, or logicc.yaml next to the input, and applies
// command-line flags on top.
func loadConfig(opts *options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		found, err := config.FindConfig(filepath.Dir(opts.input))
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.shortCircuit {
		cfg.ShortCircuit = true
	}
	if opts.optimize {
		cfg.Optimize = true
		cfg.ShortCircuit = true
	}
	if opts.cachePath != "" {
		cfg.Cache = opts.cachePath
	}
	return cfg, nil
}

// artifactStore wraps the cache so that every failure degrades to a
// warning. A nil store is a disabled cache.
type artifactStore struct {
	*cache.Cache
}

func openCache(path string, rep *reporter) *artifactStore {
	if path == "" {
		return nil
	}
	c, err := cache.Open(path)
	if err != nil {
		rep.warn("cache disabled: %s", err)
		return nil
	}
	return &artifactStore{c}
}

func lookup(s *artifactStore, key string, rep *reporter) (string, bool) {
	if s == nil {
		return "", false
	}
	asm, ok, err := s.Get(context.Background(), key)
	if err != nil {
		rep.warn("cache lookup failed: %s", err)
		return "", false
	}
	return asm, ok
}

func (s *artifactStore) put(key string, mode codegen.Mode, ctx *pipeline.PipelineContext, rep *reporter) {
	if s == nil || ctx.Assembly == "" {
		return
	}
	if err := s.Put(context.Background(), key, mode.String(), ctx.RunID, ctx.Assembly); err != nil {
		rep.warn("cache update failed: %s", err)
	}
}
