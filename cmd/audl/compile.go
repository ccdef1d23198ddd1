package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/go-audl/internal/audl"
	"github.com/grindlemire/go-audl/internal/log"
)

var errCompileFailed = errors.New("compile failed")

// runCompile implements the compile subcommand.
// It compiles one file, or stdin when no file is given, and prints the
// result exactly as an editor host would show it.
func runCompile(args []string) error {
	var cfg commonFlags
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	cfg.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	closeLog, err := openLog(cfg.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	var source []byte
	switch fs.NArg() {
	case 0:
		if isTerminal(os.Stdin.Fd()) {
			return errors.New("refusing to read AUDL from a terminal; pass a file or pipe the source in")
		}
		source, err = io.ReadAll(os.Stdin)
	case 1:
		source, err = os.ReadFile(fs.Arg(0))
	default:
		return fmt.Errorf("compile takes at most one file, got %d", fs.NArg())
	}
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	return compileTo(os.Stdout, string(source), cfg.options())
}

// compileTo writes the compiled template, or the error comment, to w.
func compileTo(w io.Writer, source string, opts audl.Options) error {
	if log.Enabled() {
		log.Debug("%d tokens", len(audl.Tokenize(source)))
	}
	out := audl.CompileWithOptions(source, opts)
	log.Compile("%d bytes in, %d bytes out", len(source), len(out))

	if audl.IsErrorOutput(out) {
		fmt.Fprintln(w, out)
		return errCompileFailed
	}
	_, err := io.WriteString(w, out)
	return err
}
