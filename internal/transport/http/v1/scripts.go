package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// ListScripts returns all scripts.
// GET /v1/scripts
func (h *Handler) ListScripts(c echo.Context) error {
	scripts, err := h.service.GetScripts(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"scripts": scripts})
}

// CreateScript creates an empty script.
// POST /v1/scripts
func (h *Handler) CreateScript(c echo.Context) error {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Title == "" {
		return badRequest(c, "title is required")
	}

	script, err := h.service.CreateScript(c.Request().Context(), req.Title)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, script)
}

// GetScript returns a single script.
// GET /v1/scripts/:script_id
func (h *Handler) GetScript(c echo.Context) error {
	script, err := h.service.GetScript(c.Request().Context(), c.Param("script_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if script == nil {
		return notFound(c, "script")
	}
	return c.JSON(http.StatusOK, script)
}

// DeleteScript removes a script.
// DELETE /v1/scripts/:script_id
func (h *Handler) DeleteScript(c echo.Context) error {
	existed, err := h.service.DeleteScript(c.Request().Context(), c.Param("script_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if !existed {
		return notFound(c, "script")
	}
	return c.NoContent(http.StatusNoContent)
}

// ApplyToolCalls runs a tool-call sequence against a script and returns
// the resulting document plus the per-call outcomes.
// POST /v1/scripts/:script_id/tool_calls
func (h *Handler) ApplyToolCalls(c echo.Context) error {
	var req struct {
		Calls []domain.ToolCall `json:"calls"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.Calls) == 0 {
		return badRequest(c, "calls is required")
	}

	script, results, err := h.service.ApplyToolCalls(c.Request().Context(), c.Param("script_id"), req.Calls)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"script":  script,
		"results": results,
	})
}

// GenerateScriptEdits asks the LLM for edits and applies them.
// POST /v1/scripts/:script_id/generate
func (h *Handler) GenerateScriptEdits(c echo.Context) error {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Prompt == "" {
		return badRequest(c, "prompt is required")
	}

	script, results, err := h.service.GenerateScriptEdits(c.Request().Context(), c.Param("script_id"), req.Prompt)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"script":  script,
		"results": results,
	})
}
