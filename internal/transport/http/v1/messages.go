package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// ListMessages returns all live messages of the conversation forest.
// GET /v1/messages
func (h *Handler) ListMessages(c echo.Context) error {
	messages, err := h.service.GetMessages(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": messages})
}

// SubmitMessage appends a user message and generates the assistant reply.
// POST /v1/messages
func (h *Handler) SubmitMessage(c echo.Context) error {
	var req struct {
		Content  string  `json:"content"`
		ParentID *string `json:"parentId"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Content == "" {
		return badRequest(c, "content is required")
	}

	result, err := h.service.SubmitMessage(c.Request().Context(), req.ParentID, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, result)
}

// GetMessage returns a single message.
// GET /v1/messages/:message_id
func (h *Handler) GetMessage(c echo.Context) error {
	msg, err := h.service.GetMessage(c.Request().Context(), c.Param("message_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if msg == nil {
		return notFound(c, "message")
	}

	checkpoint, err := h.service.IsCheckpoint(c.Request().Context(), msg.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    msg,
		"checkpoint": checkpoint,
	})
}

// EditMessage applies an inline field edit.
// PATCH /v1/messages/:message_id
func (h *Handler) EditMessage(c echo.Context) error {
	var edit domain.MessageEdit
	if err := c.Bind(&edit); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.service.EditMessage(c.Request().Context(), c.Param("message_id"), edit)
	if err != nil {
		return serviceError(c, err)
	}
	if msg == nil {
		return notFound(c, "message")
	}
	return c.JSON(http.StatusOK, msg)
}

// DeleteMessage soft-deletes a message.
// DELETE /v1/messages/:message_id
func (h *Handler) DeleteMessage(c echo.Context) error {
	msg, err := h.service.DeleteMessage(c.Request().Context(), c.Param("message_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if msg == nil {
		return notFound(c, "message")
	}
	return c.JSON(http.StatusOK, msg)
}

// GetAncestors returns the root-first chain ending at the message.
// GET /v1/messages/:message_id/ancestors
func (h *Handler) GetAncestors(c echo.Context) error {
	chain, err := h.service.Ancestors(c.Request().Context(), c.Param("message_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if chain == nil {
		return notFound(c, "message")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": chain})
}

// GetLatestLeaf returns the newest leaf in the message's subtree.
// GET /v1/messages/:message_id/latest_leaf
func (h *Handler) GetLatestLeaf(c echo.Context) error {
	leaf, err := h.service.LatestLeaf(c.Request().Context(), c.Param("message_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if leaf == nil {
		return notFound(c, "message")
	}
	return c.JSON(http.StatusOK, leaf)
}
