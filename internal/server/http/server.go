package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/keelhq/opsq/internal/runtime"
	"github.com/keelhq/opsq/internal/server/http/controllers"
	worklistsvc "github.com/keelhq/opsq/internal/services/worklist"
	"github.com/keelhq/opsq/pkg/id"
	"github.com/keelhq/opsq/pkg/log"
)

// Server serves the HTTP/JSON API.
type Server struct {
	rt     *runtime.Runtime
	srv    *http.Server
	lis    net.Listener
	svc    *worklistsvc.Service
	logger log.Logger
	reqIDs *id.Generator
}

// New builds a Server over an open runtime. Routes are registered at
// construction; ListenAndServe only binds and serves.
func New(rt *runtime.Runtime, logger log.Logger) *Server {
	s := &Server{
		rt:     rt,
		svc:    worklistsvc.NewService(rt, logger),
		logger: logger.WithComponent("http"),
		reqIDs: id.NewGenerator(),
	}
	mux := http.NewServeMux()
	controllers.NewControllerRegistry(rt, s.svc).RegisterAllRoutes(mux)
	s.srv = &http.Server{Handler: cors(s.logging(mux))}
	return s
}

// ListenAndServe binds addr and serves until ctx is canceled, then
// shuts down gracefully with a short drain timeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	s.logger.Info("http listening", log.Str("addr", l.Addr().String()))
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

// Close closes the listener if one is bound.
func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// Handler returns the configured handler chain, for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Staff-Id")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logging tags each request with a generated ID and logs it at debug
// level with its duration.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := s.reqIDs.Next().String()
		w.Header().Set("X-Request-Id", reqID)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			log.Str("id", reqID),
			log.Str("method", r.Method),
			log.Str("path", r.URL.Path),
			log.Dur("elapsed", time.Since(start)))
	})
}
