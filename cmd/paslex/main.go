/*
Paslex tokenizes a teaching-language source file and prints its token
stream, one token per line.

Usage:

	paslex [flags] FILE

The flags are:

	-v, --version
		Give the current version and then exit.

If FILE is omitted, source is read from stdin.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/pastac/internal/lex"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitLexError indicates the input could not be fully tokenized.
	ExitLexError

	// ExitUsageError indicates bad flags or arguments.
	ExitUsageError
)

var (
	returnCode  int   = ExitSuccess
	flagVersion *bool = pflag.BoolP("version", "v", false, "Gives the version info")
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
		fmt.Println("paslex (pastac frontend) 0.1.0")
		return
	}

	src, err := readSource(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	stream, err := lex.Lex(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitLexError
		return
	}

	for stream.HasNext() {
		tok := stream.Next()
		fmt.Println(tok.String())
	}
	fmt.Println(stream.Next().String())
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
