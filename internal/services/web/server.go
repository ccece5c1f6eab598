package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"golang.org/x/net/netutil"

	"github.com/louisbranch/password-sheet/internal/platform/timeouts"
	"github.com/louisbranch/password-sheet/internal/sheet"
)

// DefaultMaxConnections caps simultaneously open client connections.
const DefaultMaxConnections = 64

// Generator produces one sheet per call.
type Generator interface {
	Generate(ctx context.Context) (sheet.Sheet, error)
}

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// MaxConnections bounds concurrent connections; zero uses DefaultMaxConnections.
	MaxConnections int
	// RepositoryURL is linked from the information page when set.
	RepositoryURL string
}

// Server hosts the sheet HTTP server.
type Server struct {
	httpAddr       string
	maxConnections int
	httpServer     *http.Server
	listener       net.Listener
}

// NewServer builds a configured web server around generator.
func NewServer(config Config, generator Generator) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if generator == nil {
		return nil, errors.New("sheet generator is required")
	}
	if config.MaxConnections < 0 {
		return nil, errors.New("max connections must not be negative")
	}
	if config.MaxConnections == 0 {
		config.MaxConnections = DefaultMaxConnections
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(config, generator),
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
	}
	return &Server{
		httpAddr:       httpAddr,
		maxConnections: config.MaxConnections,
		httpServer:     httpServer,
	}, nil
}

// Listen binds the listening socket. ListenAndServe calls it when needed.
func (s *Server) Listen() error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if s.listener != nil {
		return nil
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	s.listener = netutil.LimitListener(listener, s.maxConnections)
	return nil
}

// Addr returns the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpAddr
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight downloads
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := s.Listen(); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	log.Printf("password sheet listening on %s (max %d connections)", s.Addr(), s.maxConnections)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
