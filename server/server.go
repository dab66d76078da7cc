// Package server exposes the pipeline over HTTP for local tooling that
// prefers a request/response surface over the CLI.
package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shortform-preprod/config"
	"shortform-preprod/types"
	"shortform-preprod/workflow"
)

// Server wraps a gin engine around one Workflow
type Server struct {
	cfg    *config.Config
	wf     *workflow.Workflow
	engine *gin.Engine
}

// workflowRequest is the POST /api/workflow body: the creative brief plus
// an optional explicit output directory.
type workflowRequest struct {
	types.Brief
	OutputDir string `json:"output_dir,omitempty"`
}

// New builds the server and registers all routes
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		cfg:    cfg,
		wf:     workflow.New(cfg),
		engine: engine,
	}

	engine.GET("/healthz", s.handleHealth)
	engine.POST("/api/workflow", s.handleWorkflow)

	return s
}

// Run blocks serving HTTP on addr; an empty addr uses the configured one
func (s *Server) Run(addr string) error {
	if addr == "" {
		addr = s.cfg.Server.Addr
	}
	log.Printf("🌐 Serving on %s", addr)
	return s.engine.Run(addr)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleWorkflow(c *gin.Context) {
	var req workflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := req.Brief.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.wf.Run(c.Request.Context(), req.Brief, req.OutputDir)
	status := http.StatusOK
	if !result.Success {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}
