//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package main

// isTerminal always reports false; stdin is read as-is.
func isTerminal(fd uintptr) bool {
	return false
}
