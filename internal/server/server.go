// internal/server/server.go
package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rulecraft-chat/internal/common/logger"
	"rulecraft-chat/internal/common/metrics"
)

// Responder is the single entry point into the chat core.
type Responder interface {
	Respond(ctx context.Context, message string) string
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Server wires the chat core into an HTTP surface: the chat endpoint, the
// embedded chat page, health and metrics.
type Server struct {
	engine    *gin.Engine
	responder Responder
	logger    logger.Logger
	started   time.Time
}

func New(r Responder, log logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:    gin.New(),
		responder: r,
		logger:    log.With(map[string]interface{}{"component": "server"}),
		started:   time.Now(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(s.requestLogging())

	s.engine.GET("/", s.handleIndex)
	s.engine.POST("/chat", s.handleChat)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Handler exposes the gin engine as an http.Handler for the outer
// http.Server and for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestLogging tags every request with an id and records duration.
func (s *Server) requestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		metrics.HTTPRequestDuration.WithLabelValues(c.FullPath(), strconv.Itoa(status)).Observe(elapsed.Seconds())
		s.logger.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    status,
			"duration":  elapsed.String(),
		})
	}
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The responder never fails; an empty message yields the prompt reply
	reply := s.responder.Respond(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"uptime": time.Since(s.started).String(),
	})
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
