package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListSessions returns all live gallery sessions.
// GET /v1/gallery/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	sessions, err := h.service.GetSessions(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"sessions": sessions})
}

// CreateSession creates a gallery session.
// POST /v1/gallery/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "title is required")
	}

	session, err := h.service.CreateSession(c.Request().Context(), req.Title)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

// GetSession returns a single session.
// GET /v1/gallery/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	session, err := h.service.GetSession(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if session == nil {
		return notFound(c, "session")
	}
	return c.JSON(http.StatusOK, session)
}

// DeleteSession soft-deletes a session.
// DELETE /v1/gallery/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	session, err := h.service.DeleteSession(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if session == nil {
		return notFound(c, "session")
	}
	return c.JSON(http.StatusOK, session)
}

// ListGenerations returns a session's generation steps in step order.
// GET /v1/gallery/sessions/:session_id/generations
func (h *Handler) ListGenerations(c echo.Context) error {
	gens, err := h.service.GenerationsForSession(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"generations": gens})
}

// CreateGeneration records a prompt step and its produced image URLs.
// POST /v1/gallery/sessions/:session_id/generations
func (h *Handler) CreateGeneration(c echo.Context) error {
	var req struct {
		Prompt string   `json:"prompt"`
		URLs   []string `json:"urls"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Prompt == "" {
		return badRequest(c, "prompt is required")
	}

	result, err := h.service.CreateGeneration(c.Request().Context(), c.Param("session_id"), req.Prompt, req.URLs)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// ListItems returns the live items of a generation.
// GET /v1/gallery/generations/:generation_id/items
func (h *Handler) ListItems(c echo.Context) error {
	items, err := h.service.ItemsForGeneration(c.Request().Context(), c.Param("generation_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

// PinItem toggles an item's pinned flag.
// POST /v1/gallery/items/:item_id/pin
func (h *Handler) PinItem(c echo.Context) error {
	var req struct {
		Pinned bool `json:"pinned"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.service.PinItem(c.Request().Context(), c.Param("item_id"), req.Pinned)
	if err != nil {
		return serviceError(c, err)
	}
	if item == nil {
		return notFound(c, "item")
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteItem soft-deletes an item.
// DELETE /v1/gallery/items/:item_id
func (h *Handler) DeleteItem(c echo.Context) error {
	item, err := h.service.DeleteItem(c.Request().Context(), c.Param("item_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if item == nil {
		return notFound(c, "item")
	}
	return c.JSON(http.StatusOK, item)
}
