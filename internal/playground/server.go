// Package playground serves a minimal browser editor host for AUDL.
//
// The page posts the whole editor contents to /compile on every (debounced)
// change and shows the response verbatim. The server itself holds no state.
package playground

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-audl/internal/audl"
	"github.com/grindlemire/go-audl/internal/log"
)

// MaxSourceBytes bounds the size of a /compile request body.
const MaxSourceBytes = 1 << 20

// NewHandler returns the playground routes.
//
//	GET  /          editor page
//	POST /compile   AUDL source in, template (or error comment) out
//	GET  /complete  ?prefix=xx, JSON list of known tags
func NewHandler(opts audl.Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handlePage)
	mux.HandleFunc("POST /compile", compileHandler(opts))
	mux.HandleFunc("GET /complete", handleComplete)
	return mux
}

func handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page().Render(w); err != nil {
		log.Server("render page: %v", err)
	}
}

func compileHandler(opts audl.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxSourceBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "source too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "reading body", http.StatusBadRequest)
			return
		}

		out := audl.CompileWithOptions(string(src), opts)
		if audl.IsErrorOutput(out) {
			log.Server("compile failed: %s", out)
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, out)
	}
}

func handleComplete(w http.ResponseWriter, r *http.Request) {
	matches := audl.CompleteTag(r.URL.Query().Get("prefix"))
	if matches == nil {
		matches = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(matches); err != nil {
		log.Server("encode completions: %v", err)
	}
}

// Serve runs the playground on ln until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, ln net.Listener, opts audl.Options) error {
	srv := &http.Server{
		Handler:           NewHandler(opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Server("listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Server("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
