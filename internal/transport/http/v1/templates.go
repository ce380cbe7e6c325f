package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type templateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Value    string `json:"value"`
}

// ListTemplates returns all global templates.
// GET /v1/templates
func (h *Handler) ListTemplates(c echo.Context) error {
	list, err := h.service.GetTemplates(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"templates": list})
}

// CreateTemplate creates a global template.
// POST /v1/templates
func (h *Handler) CreateTemplate(c echo.Context) error {
	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	tpl, err := h.service.CreateTemplate(c.Request().Context(), req.Name, req.Category, req.Value)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, tpl)
}

// UpdateTemplate replaces a template's category and value.
// PUT /v1/templates/:name
func (h *Handler) UpdateTemplate(c echo.Context) error {
	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	tpl, err := h.service.UpdateTemplate(c.Request().Context(), c.Param("name"), req.Category, req.Value)
	if err != nil {
		return serviceError(c, err)
	}
	if tpl == nil {
		return notFound(c, "template")
	}
	return c.JSON(http.StatusOK, tpl)
}

// DeleteTemplate removes a global template.
// DELETE /v1/templates/:name
func (h *Handler) DeleteTemplate(c echo.Context) error {
	existed, err := h.service.DeleteTemplate(c.Request().Context(), c.Param("name"))
	if err != nil {
		return serviceError(c, err)
	}
	if !existed {
		return notFound(c, "template")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetTemplateUsage reports where the template's placeholder is used.
// GET /v1/templates/:name/usage
func (h *Handler) GetTemplateUsage(c echo.Context) error {
	summary, err := h.service.TemplateUsage(c.Request().Context(), c.Param("name"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
