package main

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/grindlemire/go-audl/internal/log"
)

// runWatch implements the watch subcommand.
// It polls .audl files and regenerates the .vue output of any file whose
// contents changed. Polling is enough for editor-speed changes.
func runWatch(args []string) error {
	var cfg generateConfig
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	cfg.register(fs)
	interval := fs.Duration("interval", 300*time.Millisecond, "watch polling interval")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := newWatcher(paths, cfg)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		if err := w.poll(); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// watcher remembers the last seen content hash of every source file.
type watcher struct {
	paths  []string
	cfg    generateConfig
	hashes map[string][32]byte
}

func newWatcher(paths []string, cfg generateConfig) *watcher {
	return &watcher{
		paths:  paths,
		cfg:    cfg,
		hashes: make(map[string][32]byte),
	}
}

// poll regenerates every file that is new or changed since the last poll.
// Compile errors are reported to stderr and do not stop the watch.
func (w *watcher) poll() error {
	files, err := collectAudlFiles(w.paths)
	if err != nil {
		return err
	}

	for _, path := range files {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: reading file: %v\n", path, err)
			continue
		}
		sum := sha256.Sum256(src)
		if prev, ok := w.hashes[path]; ok && prev == sum {
			continue
		}
		w.hashes[path] = sum

		log.Watch("changed %s", path)
		outputPath, err := generateFile(path, w.cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		fmt.Printf("Generated %s\n", outputPath)
	}
	return nil
}
