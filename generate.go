//go:build ignore

package main

// This file exists solely to provide a go:generate directive at the project root.
// Run `go generate` to regenerate the .vue files of the example programs
// under ./examples.
//
// Usage:
//   go generate
//
// For individual packages, add this directive to any Go file:
//   //go:generate go run github.com/grindlemire/go-audl/cmd/audl generate ./...

//go:generate go run ./cmd/audl generate ./examples/...
