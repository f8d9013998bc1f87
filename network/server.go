package network

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"scoreboard/board"
	"scoreboard/session"
)

type Server struct {
	addr      string
	hub       *session.Hub
	accessLog io.Writer

	// set until the first page view reports the launch-time clear
	startupNotice atomic.Bool
}

func NewServer(addr string, hub *session.Hub) *Server {
	s := &Server{addr: addr, hub: hub, accessLog: os.Stdout}
	s.startupNotice.Store(true)
	return s
}

// SetAccessLog redirects the combined access log (stdout by default).
func (s *Server) SetAccessLog(w io.Writer) {
	s.accessLog = w
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	route := func(path string, h http.HandlerFunc, methods ...string) {
		router.Handle(path, handlers.CombinedLoggingHandler(s.accessLog, h)).Methods(methods...)
	}

	route("/", s.home, "GET")
	route("/submit", s.submit, "POST")
	route("/clear", s.clear, "POST")
	route("/copy", s.copyAll, "GET")
	route("/api/scores", s.scores, "GET")
	route("/health", s.health, "GET")
	route("/ws", s.serveWS, "GET")

	return router
}

// ListenAndServe serves until ctx ends, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (ws endpoint: /ws)", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) scores(w http.ResponseWriter, r *http.Request) {
	st, err := s.hub.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) copyAll(w http.ResponseWriter, r *http.Request) {
	st, err := s.hub.State(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	text, ok := exportText(st)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, board.ErrNothingToCopy.Error()+"\n")
		return
	}
	_, _ = io.WriteString(w, text)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
