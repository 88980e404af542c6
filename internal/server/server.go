// Package server exposes the processing pipeline over HTTP. The transport
// layer holds no document state: every request is handled independently.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/torstenfaruhn/persberichten-tool/internal/app"
)

type Server struct {
	app     *app.App
	metrics *Metrics
}

// New builds a server around a wired application.
func New(a *app.App) *Server {
	return &Server{app: a, metrics: NewMetrics()}
}

// Router assembles routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(), securityHeaders())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/process", s.handleProcess)
	api.POST("/reprocess", s.handleReprocess)
	api.POST("/download", s.handleDownload)
	api.POST("/download-log", s.handleDownloadLog)
	api.POST("/download-pdf", s.handleDownloadPDF)
	return r
}

// Start serves until the listener fails.
func (s *Server) Start() error {
	cfg := s.app.Config()
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// The whole-request budget plus slack for writing the response.
		ReadTimeout:  cfg.RequestTimeout + 30*time.Second,
		WriteTimeout: cfg.RequestTimeout + 30*time.Second,
	}
	log.Info().Str("addr", cfg.ListenAddr).Bool("llm", cfg.RewriteEnabled).Msg("listening")
	return srv.ListenAndServe()
}
