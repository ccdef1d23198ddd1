package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grindlemire/go-audl/internal/audl"
	"github.com/grindlemire/go-audl/internal/log"
)

// runCheck implements the check subcommand.
// It compiles .audl files without writing output.
func runCheck(args []string) error {
	var cfg commonFlags
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	cfg.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	closeLog, err := openLog(cfg.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectAudlFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found", sourceExt)
	}

	if cfg.verbose {
		fmt.Printf("Checking %d %s file(s)\n", len(files), sourceExt)
	}

	var errorCount int
	for _, inputPath := range files {
		if cfg.verbose {
			fmt.Printf("Checking %s\n", inputPath)
		}

		if err := checkFile(inputPath, cfg.options()); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
			errorCount++
			continue
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if cfg.verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}

	return nil
}

// checkFile compiles a single .audl file and discards the result.
func checkFile(inputPath string, opts audl.Options) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	if _, err := audl.CompileTemplateWithOptions(string(source), opts); err != nil {
		log.Compile("%s: %v", inputPath, err)
		return err
	}
	log.Compile("%s: ok", inputPath)
	return nil
}
