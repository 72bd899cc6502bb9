// Package server exposes the simulation engine and profile store over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/lifebridge/lifebridge/internal/calculation"
	"github.com/lifebridge/lifebridge/internal/store"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Server routes requests to the engine and the store
type Server struct {
	engine *calculation.CalculationEngine
	store  store.ProfileStore
	logger *zap.Logger
}

// New creates a server. A nil logger disables request logging.
func New(engine *calculation.CalculationEngine, profiles store.ProfileStore, logger *zap.Logger) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, store: profiles, logger: logger}
}

// Handler returns the routing handler wrapped with request logging
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.logRequests(s.route)
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "lifebridge",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	s.logger.Info("HTTP server stopped")
	return nil
}

func (s *Server) logRequests(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		s.logger.Info("request",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("path", ctx.Path()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(start)))
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch path {
	case "/healthz":
		s.methods(ctx, map[string]fasthttp.RequestHandler{fasthttp.MethodGet: s.handleHealth})
		return
	case "/benefits":
		s.methods(ctx, map[string]fasthttp.RequestHandler{fasthttp.MethodGet: s.handleBenefits})
		return
	case "/simulate":
		s.methods(ctx, map[string]fasthttp.RequestHandler{fasthttp.MethodPost: s.handleSimulate})
		return
	case "/compare":
		s.methods(ctx, map[string]fasthttp.RequestHandler{fasthttp.MethodPost: s.handleCompare})
		return
	case "/profiles":
		s.methods(ctx, map[string]fasthttp.RequestHandler{
			fasthttp.MethodGet:  s.handleListProfiles,
			fasthttp.MethodPost: s.handleSaveProfile,
		})
		return
	}

	if rest, ok := strings.CutPrefix(path, "/profiles/"); ok {
		if id, ok := strings.CutSuffix(rest, "/simulation"); ok && validID(id) {
			ctx.SetUserValue("id", id)
			s.methods(ctx, map[string]fasthttp.RequestHandler{fasthttp.MethodGet: s.handleProfileSimulation})
			return
		}
		if validID(rest) {
			ctx.SetUserValue("id", rest)
			s.methods(ctx, map[string]fasthttp.RequestHandler{
				fasthttp.MethodGet:    s.handleGetProfile,
				fasthttp.MethodDelete: s.handleDeleteProfile,
			})
			return
		}
	}

	writeError(ctx, fasthttp.StatusNotFound, "no route for "+path)
}

// methods dispatches on the request method, answering 405 for the rest
func (s *Server) methods(ctx *fasthttp.RequestCtx, handlers map[string]fasthttp.RequestHandler) {
	if h, ok := handlers[string(ctx.Method())]; ok {
		h(ctx)
		return
	}
	allowed := make([]string, 0, len(handlers))
	for m := range handlers {
		allowed = append(allowed, m)
	}
	ctx.Response.Header.Set("Allow", strings.Join(sortedMethods(allowed), ", "))
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
}

func validID(id string) bool {
	return id != "" && !strings.Contains(id, "/")
}
