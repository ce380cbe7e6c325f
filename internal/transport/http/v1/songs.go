package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListSongs returns the live songs attached to a message.
// GET /v1/messages/:message_id/songs
func (h *Handler) ListSongs(c echo.Context) error {
	songs, err := h.service.SongsForMessage(c.Request().Context(), c.Param("message_id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"songs": songs})
}

// AttachSong records a generated audio URL against a message.
// POST /v1/messages/:message_id/songs
func (h *Handler) AttachSong(c echo.Context) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.URL == "" {
		return badRequest(c, "url is required")
	}

	song, err := h.service.AttachSong(c.Request().Context(), c.Param("message_id"), req.URL)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, song)
}

// PinSong toggles a song's pinned flag.
// POST /v1/songs/:song_id/pin
func (h *Handler) PinSong(c echo.Context) error {
	var req struct {
		Pinned bool `json:"pinned"`
	}
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	song, err := h.service.PinSong(c.Request().Context(), c.Param("song_id"), req.Pinned)
	if err != nil {
		return serviceError(c, err)
	}
	if song == nil {
		return notFound(c, "song")
	}
	return c.JSON(http.StatusOK, song)
}

// DeleteSong soft-deletes a song.
// DELETE /v1/songs/:song_id
func (h *Handler) DeleteSong(c echo.Context) error {
	song, err := h.service.DeleteSong(c.Request().Context(), c.Param("song_id"))
	if err != nil {
		return serviceError(c, err)
	}
	if song == nil {
		return notFound(c, "song")
	}
	return c.JSON(http.StatusOK, song)
}
