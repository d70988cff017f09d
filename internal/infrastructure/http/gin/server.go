package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginlib "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

type Server struct {
	srv             *http.Server
	shutdownTimeout time.Duration
	log             logger.Logger
}

// NewEngine returns an engine with recovery, request logging and CORS.
func NewEngine(cfg config.ServerConfig, log logger.Logger) *ginlib.Engine {
	r := ginlib.New()
	r.Use(ginlib.Recovery())
	r.Use(RequestLogger(log))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, RequestIDHeader)
	c.ExposeHeaders = []string{RequestIDHeader}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// RequestLogger tags every request with an id, stores it in the request
// context for logger.WithContext and logs one line when the request ends.
func RequestLogger(log logger.Logger) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), id))

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
		}
		l := log.WithContext(c.Request.Context())
		if c.Writer.Status() >= http.StatusInternalServerError {
			l.Error("request", fields...)
			return
		}
		l.Info("request", fields...)
	}
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine, log logger.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Address(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if s.srv.Handler == nil {
		return fmt.Errorf("gin engine is nil")
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", logger.String("addr", s.srv.Addr))
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

	s.log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
