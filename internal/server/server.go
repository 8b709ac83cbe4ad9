package server

import (
	"tshirtshop/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Start はechoを組み立てて待ち受ける
func Start(addr string, cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	RegisterRoutes(e, cfg, h)

	return e.Start(addr)
}
