/*
Pastac compiles a teaching-language source file down to three-address
code, or with -i runs an interactive session that compiles one line at a
time.

Usage:

	pastac [flags] FILE

The flags are:

	-v, --version
		Give the current version and then exit.

	-g, --grammar VARIANT
		Select the parsing strategy: "rd" (recursive-descent), "lr0",
		"slr1", or "lr1". Defaults to "slr1".

	-i, --interactive
		Start a read-eval-print loop instead of compiling a file. Each
		line entered is compiled and its TAC printed; a blank line exits.

If FILE is omitted and -i is not given, source is read from stdin.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dekarrin/pastac"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitCompileError indicates the input could not be compiled.
	ExitCompileError

	// ExitUsageError indicates bad flags or arguments.
	ExitUsageError
)

var (
	returnCode      int     = ExitSuccess
	flagVersion     *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	flagGrammar     *string = pflag.StringP("grammar", "g", "slr1", "Parsing strategy: rd, lr0, slr1, or lr1")
	flagInteractive *bool   = pflag.BoolP("interactive", "i", false, "Start an interactive read-eval-print loop")
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
		fmt.Println("pastac 0.1.0")
		return
	}

	variant, err := parseVariant(*flagGrammar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	cfg := pastac.NewDefault()
	cfg.Variant = variant
	fe := pastac.New(cfg)

	if *flagInteractive {
		if err := runRepl(fe); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitCompileError
		}
		return
	}

	src, err := readSource(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	result, err := fe.Compile(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitCompileError
		return
	}

	fmt.Print(result.Program.String())
}

// runRepl compiles one line of source at a time, printing the TAC it
// produces. A blank line (or EOF) ends the session.
func runRepl(fe *pastac.Frontend) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "pastac> "})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil // EOF or interrupt ends the session cleanly
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}

		result, err := fe.Compile(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			continue
		}
		fmt.Print(result.Program.String())
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
