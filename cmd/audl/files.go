package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-audl/internal/audl"
	"github.com/grindlemire/go-audl/internal/log"
)

const sourceExt = ".audl"

// commonFlags are shared by every subcommand that compiles files.
type commonFlags struct {
	verbose bool
	indent  int
	logPath string
}

func (c *commonFlags) register(set *flag.FlagSet) {
	set.BoolVar(&c.verbose, "v", false, "verbose output")
	set.IntVar(&c.indent, "indent", audl.DefaultIndentWidth, "spaces per nesting level")
	set.StringVar(&c.logPath, "log", "", "path to log file for debugging")
}

func (c *commonFlags) options() audl.Options {
	return audl.Options{IndentWidth: c.indent}
}

// openLog routes debug logging to path. The returned func restores the
// default (no logging) and closes the file.
func openLog(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(nil)
		f.Close()
	}, nil
}

// collectAudlFiles finds all .audl files from the given paths.
// Supports:
//   - Direct file paths: "header.audl"
//   - Directory paths: "./components"
//   - Recursive pattern: "./..."
func collectAudlFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") || path == "..." {
			root := strings.TrimSuffix(strings.TrimSuffix(path, "..."), "/")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, sourceExt) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Non-recursive
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), sourceExt) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, sourceExt) {
			files = append(files, path)
		}
	}

	return files, nil
}

// templateFileName converts a .audl filename to its .vue output filename.
//
//	header.audl -> header.vue
func templateFileName(inputPath string) string {
	return strings.TrimSuffix(inputPath, sourceExt) + ".vue"
}

// packageName guesses a Go package name from the directory holding path.
func packageName(path string) string {
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "templates"
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, filepath.Base(abs))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "templates"
	}
	return name
}
