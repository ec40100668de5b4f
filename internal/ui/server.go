// Package ui serves the chat window: an input box, a send button, the latest
// reply and the full conversation history, rendered from controller snapshots.
package ui

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"llmChat/internal/service"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Chat is the part of service.Controller the window drives.
type Chat interface {
	Submit(ctx context.Context, text string) (service.Snapshot, error)
	Refresh(ctx context.Context) (service.Snapshot, error)
	Snapshot() service.Snapshot
}

type Server struct {
	Chat Chat
}

func NewServer(chat Chat) *Server {
	return &Server{Chat: chat}
}

type sendRequest struct {
	Message *string `json:"message" binding:"required"`
}

func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	r.GET("/", s.handleIndex)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	api.GET("/state", s.handleState)
	api.GET("/history", s.handleHistory)
	api.POST("/send", s.handleSend)

	return r
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{"Model": s.Chat.Snapshot().Model})
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, s.Chat.Snapshot())
}

func (s *Server) handleHistory(c *gin.Context) {
	snap, err := s.Chat.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": snap.History})
}

func (s *Server) handleSend(c *gin.Context) {
	// plain form and text posts skip the CORS preflight, so only JSON is accepted
	if c.ContentType() != gin.MIMEJSON {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "content type must be " + gin.MIMEJSON})
		return
	}

	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// a send outlives the request that started it
	snap, err := s.Chat.Submit(context.WithoutCancel(c.Request.Context()), *req.Message)
	switch {
	case errors.Is(err, service.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "state": snap})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "state": snap})
	default:
		c.JSON(http.StatusOK, snap)
	}
}

// Run serves the window on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[ui.Server.Run] chat window on http://%s/", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ui.Server.Run] shutdown:", err)
		return err
	}
	return nil
}
