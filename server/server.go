package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/relaypage/dataset"
	"github.com/ncobase/relaypage/logging"
	"github.com/ncobase/relaypage/paging"
)

// Server exposes a dataset as a paginated HTTP endpoint.
type Server struct {
	engine    *gin.Engine
	paginator *paging.Paginator
	source    *dataset.Source
	logger    *logging.Logger
}

// New creates a server and registers its routes.
func New(p *paging.Paginator, source *dataset.Source, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.StandardLogger()
	}
	s := &Server{
		engine:    gin.New(),
		paginator: p,
		source:    source,
		logger:    logger,
	}
	s.engine.Use(gin.Recovery(), Trace(), AccessLog(logger))
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/version", s.version)
	s.engine.GET("/items", s.items)
}

// Handler returns the http.Handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof(ctx, "Starting server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Infof(shutdownCtx, "Shutting down server")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
