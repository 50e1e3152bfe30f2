package server

import (
	"net/http"

	"app/internal/config"

	"github.com/labstack/echo/v4"
)

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	//死活監視用
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.PartnerOrder.RegisterRoutes(e, cfg)
	h.Partner.RegisterRoutes(e, cfg)
}
