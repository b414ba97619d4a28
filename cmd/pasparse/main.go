/*
Pasparse parses a teaching-language source file and prints its syntax tree
and production trace.

Usage:

	pasparse [flags] FILE

The flags are:

	-v, --version
		Give the current version and then exit.

	-g, --grammar VARIANT
		Select the parsing strategy: "rd" (recursive-descent), "lr0",
		"slr1", or "lr1". Defaults to "slr1".

	-t, --trace
		Also print the production trace (the order each production was
		fully recognized in).

If FILE is omitted, source is read from stdin.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/pastac"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitParseError indicates the input could not be parsed.
	ExitParseError

	// ExitUsageError indicates bad flags or arguments.
	ExitUsageError
)

var (
	returnCode   int     = ExitSuccess
	flagVersion  *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	flagGrammar  *string = pflag.StringP("grammar", "g", "slr1", "Parsing strategy: rd, lr0, slr1, or lr1")
	flagTrace    *bool   = pflag.BoolP("trace", "t", false, "Also print the production trace")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Println("pasparse (pastac frontend) 0.1.0")
		return
	}

	variant, err := parseVariant(*flagGrammar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	src, err := readSource(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	cfg := pastac.NewDefault()
	cfg.Variant = variant
	cfg.EmitDerivation = *flagTrace
	fe := pastac.New(cfg)

	tree, trace, err := fe.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
		return
	}

	if cfg.EmitTree {
		fmt.Println(tree.String())
	}

	if cfg.EmitDerivation {
		fmt.Println("production trace:")
		for _, prod := range trace {
			fmt.Printf("  %d\n", prod)
		}
	}
}

func parseVariant(s string) (pastac.ParserVariant, error) {
	switch strings.ToLower(s) {
	case "rd", "recursive-descent":
		return pastac.RecursiveDescent, nil
	case "lr0":
		return pastac.LR0, nil
	case "slr1":
		return pastac.SLR1, nil
	case "lr1":
		return pastac.LR1, nil
	default:
		return 0, fmt.Errorf("unknown grammar variant %q (want rd, lr0, slr1, or lr1)", s)
	}
}

func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}
