package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/torstenfaruhn/persberichten-tool/internal/pipeline"
	"github.com/torstenfaruhn/persberichten-tool/internal/report"
	"github.com/torstenfaruhn/persberichten-tool/internal/signal"
)

// processResponse is the JSON envelope of /api/process and /api/reprocess.
type processResponse struct {
	OK            bool            `json:"ok"`
	Signals       []signal.Signal `json:"signals"`
	OutputTxt     string          `json:"output_txt,omitempty"`
	CleanedSource string          `json:"cleaned_source,omitempty"`
	TechLog       string          `json:"tech_log,omitempty"`
	LLMMode       bool            `json:"llm_mode"`
}

func techLog(code, msg string) string {
	return fmt.Sprintf("%d\t%s\t%s", time.Now().Unix(), code, msg)
}

func (s *Server) handleProcess(c *gin.Context) {
	cfg := s.app.Config()
	if c.Request.ContentLength > cfg.MaxUploadBytes {
		s.respondRejected(c, rejection(signal.FileTooLarge()), "file_too_large")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxUploadBytes)

	apiKey := c.PostForm("apiKey")
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.respondRejected(c, rejection(signal.UnreadableFile()), "missing_file")
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		s.respondRejected(c, rejection(signal.UnreadableFile()), "open_failed")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		s.respondRejected(c, rejection(signal.FileTooLarge()), "read_failed")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
	defer cancel()
	res := s.app.Process(ctx, fileHeader.Filename, data, apiKey)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		s.metrics.IncProcessed("timeout", "E005")
		c.JSON(http.StatusGatewayTimeout, processResponse{
			OK:      false,
			Signals: []signal.Signal{signal.ProcessTimeout()},
			TechLog: techLog("E005", "process_timeout"),
			LLMMode: cfg.RewriteEnabled,
		})
		return
	}
	s.respond(c, res, "processed")
}

func (s *Server) handleReprocess(c *gin.Context) {
	var req struct {
		APIKey string `json:"apiKey"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondRejected(c, rejection(signal.UnreadableFile()), "bad_request")
		return
	}
	cfg := s.app.Config()
	ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
	defer cancel()
	res := s.app.Reprocess(ctx, req.Text)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		s.metrics.IncProcessed("timeout", "E005")
		c.JSON(http.StatusGatewayTimeout, processResponse{
			OK:      false,
			Signals: []signal.Signal{signal.ProcessTimeout()},
			TechLog: techLog("E005", "process_timeout"),
			LLMMode: cfg.RewriteEnabled,
		})
		return
	}
	s.respond(c, res, "reprocessed")
}

func (s *Server) handleDownload(c *gin.Context) {
	s.serveAttachment(c, "nieuwsconcept.txt", "text/plain; charset=utf-8", nil)
}

func (s *Server) handleDownloadLog(c *gin.Context) {
	s.serveAttachment(c, "technisch-log.txt", "text/plain; charset=utf-8", nil)
}

func (s *Server) handleDownloadPDF(c *gin.Context) {
	s.serveAttachment(c, "nieuwsconcept.pdf", "application/pdf", func(content string) ([]byte, error) {
		var buf bytes.Buffer
		if err := report.WritePDF(content, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// serveAttachment returns posted content as a download, optionally passed
// through a renderer.
func (s *Server) serveAttachment(c *gin.Context, name, mime string, render func(string) ([]byte, error)) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	body := []byte(req.Content)
	if render != nil {
		rendered, err := render(req.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
			return
		}
		body = rendered
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, mime, body)
}

func (s *Server) respond(c *gin.Context, res pipeline.Result, okMsg string) {
	llmMode := s.app.Config().RewriteEnabled
	if !res.Outcome.Accepted {
		code := "unknown"
		if fatal, ok := res.Outcome.FirstFatal(); ok {
			code = fatal.Code
		}
		s.metrics.IncProcessed("rejected", code)
		c.JSON(http.StatusBadRequest, processResponse{
			OK:            false,
			Signals:       res.Outcome.Signals,
			CleanedSource: res.Normalized,
			TechLog:       techLog(code, "rejected"),
			LLMMode:       llmMode,
		})
		return
	}
	s.metrics.IncProcessed("accepted", "OK")
	if res.Draft != nil {
		s.metrics.IncDraft(string(res.Draft.Source))
	}
	c.JSON(http.StatusOK, processResponse{
		OK:            true,
		Signals:       res.Outcome.Signals,
		OutputTxt:     res.Report,
		CleanedSource: res.Normalized,
		TechLog:       techLog("OK", okMsg),
		LLMMode:       llmMode,
	})
}

func (s *Server) respondRejected(c *gin.Context, res pipeline.Result, logMsg string) {
	llmMode := s.app.Config().RewriteEnabled
	code := "unknown"
	if fatal, ok := res.Outcome.FirstFatal(); ok {
		code = fatal.Code
	}
	s.metrics.IncProcessed("rejected", code)
	c.JSON(http.StatusBadRequest, processResponse{
		OK:      false,
		Signals: res.Outcome.Signals,
		TechLog: techLog(code, logMsg),
		LLMMode: llmMode,
	})
}

func rejection(fatal signal.Signal) pipeline.Result {
	return pipeline.Result{
		Outcome: signal.Outcome{Accepted: false, Signals: []signal.Signal{fatal}},
	}
}
