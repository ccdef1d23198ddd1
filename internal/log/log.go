// Package log provides centralized debug logging for the audl tools.
package log

import (
	"fmt"
	"io"
	"sync"
)

var (
	out io.Writer
	mu  sync.Mutex
)

// SetOutput sets the log destination. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Debug writes a debug log message if logging is enabled.
func Debug(format string, args ...any) {
	write("", format, args...)
}

// Compile writes a compile-prefixed log message.
func Compile(format string, args ...any) {
	write("[compile] ", format, args...)
}

// Generate writes a generate-prefixed log message.
func Generate(format string, args ...any) {
	write("[generate] ", format, args...)
}

// Watch writes a watch-prefixed log message.
func Watch(format string, args ...any) {
	write("[watch] ", format, args...)
}

// Server writes a server-prefixed log message.
func Server(format string, args ...any) {
	write("[server] ", format, args...)
}

// Enabled returns true if logging is enabled.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

func write(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		fmt.Fprintf(out, prefix+format+"\n", args...)
	}
}
