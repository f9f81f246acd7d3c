package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUsage = errors.New("usage")

// options holds the parsed command line. Boolean flags only ever switch
// features on; the config file supplies the rest.
type options struct {
	input  string
	output string

	shortCircuit bool
	optimize     bool
	checkOnly    bool
	printAST     bool
	printYAML    bool
	run          bool
	treeWalk     bool
	verbose      bool

	configPath string
	cachePath  string
}

// backendName selects the execution backend for -run.
func (o *options) backendName() string {
	if o.treeWalk {
		return "tree"
	}
	return "asm"
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s <input_file> [<output_file>] [-s] [-o]\n", prog)
	fmt.Fprintln(w, "  -s: Enable short-circuit evaluation")
	fmt.Fprintln(w, "  -o: Enable additional optimizations")
	fmt.Fprintln(w, "  -c: Check only (parse and semantic analysis)")
	fmt.Fprintln(w, "  -ast: Print the abstract syntax tree")
	fmt.Fprintln(w, "  -yaml: Print the abstract syntax tree as YAML")
	fmt.Fprintln(w, "  -run: Execute the generated program and print its result")
	fmt.Fprintln(w, "  -tree: With -run, evaluate the tree instead of the assembly")
	fmt.Fprintln(w, "  -v: Trace pipeline stages")
	fmt.Fprintln(w, "  -config <file>: Use this config file instead of logicc.yaml")
	fmt.Fprintln(w, "  -cache <file>: Cache generated assembly in this SQLite database")
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-s":
			opts.shortCircuit = true
		case "-o":
			opts.optimize = true
		case "-c":
			opts.checkOnly = true
		case "-ast", "--ast":
			opts.printAST = true
		case "-yaml", "--yaml":
			opts.printYAML = true
		case "-run", "--run":
			opts.run = true
		case "-tree", "--tree":
			opts.treeWalk = true
		case "-v", "--verbose":
			opts.verbose = true
		case "-config", "--config", "-cache", "--cache":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%w: %s requires a file argument", errUsage, arg)
			}
			i++
			if strings.HasSuffix(arg, "config") {
				opts.configPath = args[i]
			} else {
				opts.cachePath = args[i]
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return nil, fmt.Errorf("%w: Unknown argument: %s", errUsage, arg)
			}
			positional = append(positional, arg)
		}
	}

	switch len(positional) {
	case 0:
		return nil, fmt.Errorf("%w: missing input file", errUsage)
	case 1, 2:
	default:
		return nil, fmt.Errorf("%w: Unknown argument: %s", errUsage, positional[2])
	}
	opts.input = positional[0]
	if len(positional) == 2 {
		opts.output = positional[1]
	}
	if opts.optimize {
		opts.shortCircuit = true
	}
	return opts, nil
}
