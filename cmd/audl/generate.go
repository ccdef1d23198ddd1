package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-audl/internal/audl"
	"github.com/grindlemire/go-audl/internal/log"
)

// generateConfig holds the generate flags.
type generateConfig struct {
	commonFlags
	goOut bool   // write name_audl.go instead of name.vue
	pkg   string // package for Go output; defaults to the directory name
}

// runGenerate implements the generate subcommand.
// It compiles .audl files and writes the corresponding output files.
func runGenerate(args []string) error {
	var cfg generateConfig
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	cfg.register(fs)
	fs.BoolVar(&cfg.goOut, "go", false, "write Go files embedding the template as a constant")
	fs.StringVar(&cfg.pkg, "pkg", "", "package name for -go output (default: directory name)")
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
		fmt.Printf("Found %d %s file(s)\n", len(files), sourceExt)
	}

	errs := generateAll(files, cfg)

	var errorCount int
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", files[i], err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if cfg.verbose {
		fmt.Printf("Successfully generated %d file(s)\n", len(files))
	}

	return nil
}

// generateAll processes files in parallel. The returned slice holds one
// error (or nil) per input file, in input order.
func generateAll(files []string, cfg generateConfig) []error {
	errs := make([]error, len(files))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, inputPath := range files {
		eg.Go(func() error {
			outputPath, err := generateFile(inputPath, cfg)
			if err != nil {
				log.Generate("%s: %v", inputPath, err)
				errs[i] = err
				return nil
			}
			log.Generate("%s -> %s", inputPath, outputPath)
			if cfg.verbose {
				fmt.Printf("Processed %s -> %s\n", inputPath, outputPath)
			}
			return nil
		})
	}
	_ = eg.Wait()

	return errs
}

// generateFile compiles a single .audl file and writes its output.
// It returns the path written.
func generateFile(inputPath string, cfg generateConfig) (string, error) {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	var (
		outputPath string
		output     []byte
	)
	if cfg.goOut {
		pkg := cfg.pkg
		if pkg == "" {
			pkg = packageName(inputPath)
		}
		outputPath = audl.GoFileName(inputPath)
		output, err = audl.GenerateGo(pkg, inputPath, string(source), cfg.options())
		if err != nil {
			return "", err
		}
	} else {
		outputPath = templateFileName(inputPath)
		template, err := audl.CompileTemplateWithOptions(string(source), cfg.options())
		if err != nil {
			return "", err
		}
		output = []byte(template)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return outputPath, nil
}
