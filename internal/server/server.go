package server

import (
	"log"
	"net/http"

	"VolScanner/internal/model"

	"github.com/gin-gonic/gin"
)

// ScanRunner runs one full watchlist scan.
type ScanRunner interface {
	Scan() *model.ScanResult
}

// Server exposes the dashboard and the scan API over HTTP.
type Server struct {
	Scanner ScanRunner
	engine  *gin.Engine
}

// New creates the HTTP server and registers all routes.
func New(sc ScanRunner, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &Server{
		Scanner: sc,
		engine:  gin.Default(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.getDashboard)
	s.engine.POST("/api/scan", s.postScan)
	s.engine.GET("/api/health", s.getHealth)
}

// Run starts the server on the given address. Blocks.
func (s *Server) Run(addr string) error {
	log.Printf("[INFO] http server listening on %s", addr)
	return s.engine.Run(addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) getDashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardHTML))
}

func (s *Server) postScan(c *gin.Context) {
	result := s.Scanner.Scan()
	c.JSON(http.StatusOK, result)
}

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
