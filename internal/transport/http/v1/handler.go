// Package v1 provides the studio's JSON API handlers.
package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kamilio/song-builder-sub001/internal/repository"
	"github.com/kamilio/song-builder-sub001/internal/service"
	"github.com/kamilio/song-builder-sub001/internal/storage"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the studio routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Lyrics: conversation tree
	e.GET("/v1/messages", h.ListMessages)
	e.POST("/v1/messages", h.SubmitMessage)
	e.GET("/v1/messages/:message_id", h.GetMessage)
	e.PATCH("/v1/messages/:message_id", h.EditMessage)
	e.DELETE("/v1/messages/:message_id", h.DeleteMessage)
	e.GET("/v1/messages/:message_id/ancestors", h.GetAncestors)
	e.GET("/v1/messages/:message_id/latest_leaf", h.GetLatestLeaf)

	// Lyrics: songs
	e.GET("/v1/messages/:message_id/songs", h.ListSongs)
	e.POST("/v1/messages/:message_id/songs", h.AttachSong)
	e.POST("/v1/songs/:song_id/pin", h.PinSong)
	e.DELETE("/v1/songs/:song_id", h.DeleteSong)

	// Video: scripts and tool calls
	e.GET("/v1/scripts", h.ListScripts)
	e.POST("/v1/scripts", h.CreateScript)
	e.GET("/v1/scripts/:script_id", h.GetScript)
	e.DELETE("/v1/scripts/:script_id", h.DeleteScript)
	e.POST("/v1/scripts/:script_id/tool_calls", h.ApplyToolCalls)
	e.POST("/v1/scripts/:script_id/generate", h.GenerateScriptEdits)

	// Video: global templates
	e.GET("/v1/templates", h.ListTemplates)
	e.POST("/v1/templates", h.CreateTemplate)
	e.PUT("/v1/templates/:name", h.UpdateTemplate)
	e.DELETE("/v1/templates/:name", h.DeleteTemplate)
	e.GET("/v1/templates/:name/usage", h.GetTemplateUsage)

	// Gallery: sessions, generations, items
	e.GET("/v1/gallery/sessions", h.ListSessions)
	e.POST("/v1/gallery/sessions", h.CreateSession)
	e.GET("/v1/gallery/sessions/:session_id", h.GetSession)
	e.DELETE("/v1/gallery/sessions/:session_id", h.DeleteSession)
	e.GET("/v1/gallery/sessions/:session_id/generations", h.ListGenerations)
	e.POST("/v1/gallery/sessions/:session_id/generations", h.CreateGeneration)
	e.GET("/v1/gallery/generations/:generation_id/items", h.ListItems)
	e.POST("/v1/gallery/items/:item_id/pin", h.PinItem)
	e.DELETE("/v1/gallery/items/:item_id", h.DeleteItem)

	// Settings
	e.GET("/v1/lyrics/settings", h.GetLyricsSettings)
	e.PUT("/v1/lyrics/settings", h.SetLyricsSettings)
	e.GET("/v1/gallery/settings", h.GetGallerySettings)
	e.PUT("/v1/gallery/settings", h.SetGallerySettings)

	// Export / import / reset per vertical
	e.GET("/v1/export/:vertical", h.Export)
	e.POST("/v1/import/:vertical", h.Import)
	e.POST("/v1/reset/:vertical", h.Reset)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// serviceError maps a service error onto the right status code. Capacity
// rejections are surfaced as 507 so the UI can tell a full store apart
// from a crash.
func serviceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrCapacityExceeded):
		status = http.StatusInsufficientStorage
	case errors.Is(err, repository.ErrTemplateExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": what + " not found"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}
