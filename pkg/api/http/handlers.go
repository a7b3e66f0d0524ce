package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = `<!DOCTYPE html>
<html>
  <head><title>Demo API</title></head>
  <body>
    <h1>Hello from Demo API</h1>
    <p>A small web service for exercising the build, test and deploy pipeline.</p>
  </body>
</html>`

// HealthResponse represents the /health payload
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// InfoResponse represents the /info payload
type InfoResponse struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	PID       int    `json:"pid"`
	Hostname  string `json:"hostname"`
	GoVersion string `json:"go_version"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleIndex serves the landing page
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Uptime: s.monitor.Uptime(),
	})
}

// handleInfo reports host and process facts
func (s *Server) handleInfo(c *gin.Context) {
	snap := s.monitor.Snapshot()

	c.JSON(http.StatusOK, InfoResponse{
		OS:        snap.OS,
		Arch:      snap.Arch,
		PID:       snap.PID,
		Hostname:  snap.Hostname,
		GoVersion: snap.GoVersion,
	})
}

// handleNotFound is the fallback for everything outside the route table
func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not Found"})
}
