// Package webhook receives updates pushed by the Bot API and exposes a health
// probe. Requests are traced with otelhttp.
package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/folderkeeper/internal/logging"
	"github.com/dmitrijs2005/folderkeeper/internal/telegram"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// maxBody bounds a single update payload.
const maxBody = 1 << 20

// Sink accepts converted updates, typically bot.Dispatcher.
type Sink interface {
	Dispatch(ctx context.Context, u telegram.Update) error
}

type Server struct {
	srv    *http.Server
	sink   Sink
	secret string
	log    logging.Logger
}

func New(addr, secret string, sink Sink, log logging.Logger) *Server {
	s := &Server{sink: sink, secret: secret, log: log.With("component", "webhook")}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Router returns the HTTP routes.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	r.Handle("/telegram/{secret}", otelhttp.NewHandler(http.HandlerFunc(s.update), "POST /telegram")).Methods(http.MethodPost)
	return r
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	got := mux.Vars(r)["secret"]
	if subtle.ConstantTimeCompare([]byte(got), []byte(s.secret)) != 1 {
		http.NotFound(w, r)
		return
	}

	var raw tgbotapi.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&raw); err != nil {
		s.log.Warn(r.Context(), "bad update payload", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	u, ok := telegram.Convert(raw)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	// the dispatcher outlives the request
	if err := s.sink.Dispatch(context.WithoutCancel(r.Context()), u); err != nil {
		s.log.Error(r.Context(), "dispatch update", "update_id", u.ID, "error", err)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "webhook listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
