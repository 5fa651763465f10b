// Package server exposes the tracefire HTTP API over Gin.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/tracefire-io/tracefire/internal/buildinfo"
	"github.com/tracefire-io/tracefire/internal/models"
	"github.com/tracefire-io/tracefire/internal/store"
)

// Server holds the Gin engine and the store it serves.
type Server struct {
	engine *gin.Engine
	store  *store.Store
	httpd  *http.Server
}

// New creates a server around the given store.
func New(s *store.Store) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	srv := &Server{
		engine: engine,
		store:  s,
	}
	srv.setupRoutes()
	return srv
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": buildinfo.Version,
		})
	})

	v1 := s.engine.Group("/v1")
	agents := v1.Group("/agents/:agent")
	agents.GET("/actions", s.handleListActions)
	agents.POST("/actions", s.handleCreateAction)
	agents.DELETE("/logs/:log", s.handleDeleteLog)
	agents.GET("/stats", s.handleStats)
}

func (s *Server) handleListActions(c *gin.Context) {
	agentID := c.Param("agent")
	roomID := c.Query("room")
	excludeTypes := c.QueryArray("exclude")

	actions, err := s.store.List(agentID, roomID, excludeTypes)
	if err != nil {
		log.WithError(err).Error("failed to list actions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list actions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

func (s *Server) handleCreateAction(c *gin.Context) {
	var call models.ModelCall
	if err := c.ShouldBindJSON(&call); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if call.Body.ModelType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "modelType is required"})
		return
	}

	id, err := s.store.Insert(c.Param("agent"), call)
	if err != nil {
		log.WithError(err).Error("failed to insert action")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record action"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (s *Server) handleDeleteLog(c *gin.Context) {
	err := s.store.Delete(c.Param("agent"), c.Param("log"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to delete log")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Param("agent"))
	if err != nil {
		log.WithError(err).Error("failed to aggregate stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API on addr until the listener fails or Shutdown is called.
func (s *Server) Run(addr string) error {
	s.httpd = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	log.WithField("addr", addr).Info("serving tracefire API")
	err := s.httpd.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpd == nil {
		return nil
	}
	return s.httpd.Shutdown(ctx)
}
