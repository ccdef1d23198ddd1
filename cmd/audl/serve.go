package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/go-audl/internal/playground"
)

// runServe implements the serve subcommand.
func runServe(args []string) error {
	var cfg commonFlags
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfg.register(fs)
	addr := fs.String("addr", "localhost:8080", "address to listen on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	closeLog, err := openLog(cfg.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", *addr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("AUDL playground on http://%s\n", ln.Addr())
	return playground.Serve(ctx, ln, cfg.options())
}
