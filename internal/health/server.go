// Package health exposes liveness and readiness endpoints for process supervision.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves /healthz and /readyz
type Server struct {
	log    *zap.Logger
	db     Pinger
	router *gin.Engine
}

// NewServer creates the health router
func NewServer(log *zap.Logger, db Pinger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		log:    log,
		db:     db,
		router: gin.New(),
	}

	r := s.router
	r.Use(gin.Recovery())
	r.Use(s.loggingMiddleware())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/readyz", s.ready)

	return s
}

// Handler returns the http.Handler to mount
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.log.Warn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "database": "disconnected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "database": "connected"})
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		s.log.Debug("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
