package v1

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kamilio/song-builder-sub001/internal/domain"
)

// Export dumps one vertical's raw persisted state.
// GET /v1/export/:vertical
func (h *Handler) Export(c echo.Context) error {
	ctx := c.Request().Context()
	switch c.Param("vertical") {
	case "lyrics":
		doc, err := h.service.ExportLyrics(ctx)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, doc)
	case "video":
		doc, err := h.service.ExportVideo(ctx)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, doc)
	case "gallery":
		doc, err := h.service.ExportGallery(ctx)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(http.StatusOK, doc)
	}
	return badRequest(c, "unknown vertical")
}

// Import restores one vertical from an export document. Fields with an
// unexpected shape are skipped; partial documents are fine.
// POST /v1/import/:vertical
func (h *Handler) Import(c echo.Context) error {
	ctx := c.Request().Context()
	switch c.Param("vertical") {
	case "lyrics":
		var doc domain.LyricsExport
		if err := json.NewDecoder(c.Request().Body).Decode(&doc); err != nil {
			return badRequest(c, "invalid export document")
		}
		if err := h.service.ImportLyrics(ctx, &doc); err != nil {
			return serviceError(c, err)
		}
	case "video":
		var doc domain.VideoExport
		if err := json.NewDecoder(c.Request().Body).Decode(&doc); err != nil {
			return badRequest(c, "invalid export document")
		}
		if err := h.service.ImportVideo(ctx, &doc); err != nil {
			return serviceError(c, err)
		}
	case "gallery":
		var doc domain.GalleryExport
		if err := json.NewDecoder(c.Request().Body).Decode(&doc); err != nil {
			return badRequest(c, "invalid export document")
		}
		if err := h.service.ImportGallery(ctx, &doc); err != nil {
			return serviceError(c, err)
		}
	default:
		return badRequest(c, "unknown vertical")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "imported"})
}

// Reset clears one vertical's persisted state.
// POST /v1/reset/:vertical
func (h *Handler) Reset(c echo.Context) error {
	ctx := c.Request().Context()
	var err error
	switch c.Param("vertical") {
	case "lyrics":
		err = h.service.ResetLyrics(ctx)
	case "video":
		err = h.service.ResetVideo(ctx)
	case "gallery":
		err = h.service.ResetGallery(ctx)
	default:
		return badRequest(c, "unknown vertical")
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}

// GetLyricsSettings returns the lyrics vertical's settings object.
// GET /v1/lyrics/settings
func (h *Handler) GetLyricsSettings(c echo.Context) error {
	raw, err := h.service.LyricsSettings(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// SetLyricsSettings replaces the lyrics vertical's settings object.
// PUT /v1/lyrics/settings
func (h *Handler) SetLyricsSettings(c echo.Context) error {
	raw, err := readBody(c)
	if err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.SetLyricsSettings(c.Request().Context(), raw); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

// GetGallerySettings returns the gallery vertical's settings object.
// GET /v1/gallery/settings
func (h *Handler) GetGallerySettings(c echo.Context) error {
	raw, err := h.service.GallerySettings(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// SetGallerySettings replaces the gallery vertical's settings object.
// PUT /v1/gallery/settings
func (h *Handler) SetGallerySettings(c echo.Context) error {
	raw, err := readBody(c)
	if err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.SetGallerySettings(c.Request().Context(), raw); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}

func readBody(c echo.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
