package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Order        *handler.OrderHandler
	PartnerOrder *handler.PartnerOrderHandler
	Partner      *handler.PartnerHandler
}

// Start はechoを組み立ててListenする。
func Start(addr string, cfg config.Config, logger zerolog.Logger, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLog(logger))

	registerRoutes(e, cfg, h)

	return e.Start(addr)
}
