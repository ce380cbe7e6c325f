// Package http provides the HTTP server for the studio.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kamilio/song-builder-sub001/internal/service"
	v1 "github.com/kamilio/song-builder-sub001/internal/transport/http/v1"
	"github.com/kamilio/song-builder-sub001/internal/transport/ws"
)

// NewServer creates and configures the studio HTTP server: the v1 JSON
// API plus the websocket notification endpoint.
func NewServer(svc *service.Service, hub *ws.Hub) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	v1Handler := v1.NewHandler(svc)
	v1Handler.RegisterRoutes(e)

	wsHandler := ws.NewHandler(hub)
	e.GET("/ws", wsHandler.Serve)

	return e
}
