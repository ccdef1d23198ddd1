// Package main provides the CLI tool for the AUDL compiler.
//
// Usage:
//
//	audl compile [file]        Compile one file (or stdin) to stdout
//	audl generate [path...]    Write a .vue template next to each .audl file
//	audl check [path...]       Check .audl files without writing anything
//	audl watch [path...]       Regenerate templates whenever sources change
//	audl serve                 Start the browser playground
//	audl help                  Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `audl - compiler from AUDL markup to Vue templates

Usage:
  audl <command> [options] [path...]

Commands:
  compile     Compile a single file (or stdin) and print the template
  generate    Generate .vue (or Go) files from .audl files
  check       Check .audl files without generating output
  watch       Regenerate .vue files whenever .audl files change
  serve       Start the browser playground
  version     Print version information
  help        Show this help message

Options:
  -v          Verbose output
  -indent N   Spaces per nesting level (default 2)
  -log PATH   Write debug logs to PATH

Examples:
  audl compile page.audl              Print the compiled template
  cat page.audl | audl compile        Compile from stdin
  audl generate ./...                 Recursively process all .audl files
  audl generate -go -pkg views ./ui   Embed templates in Go files
  audl check page.audl                Check syntax without generating
  audl watch -interval 500ms ./ui     Rebuild on change
  audl serve -addr localhost:8080     Open the playground
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var run func([]string) error
	switch command {
	case "compile":
		run = runCompile
	case "generate":
		run = runGenerate
	case "check":
		run = runCheck
	case "watch":
		run = runWatch
	case "serve":
		run = runServe
	case "version":
		fmt.Printf("audl version %s\n", version)
		return
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
