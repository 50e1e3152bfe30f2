package handler

import (
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 取引先の参照API（社員向け）。
type PartnerHandler struct {
	uc *usecase.PartnerUsecase
}

func NewPartnerHandler(uc *usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

func (h *PartnerHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/partners")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.EmployeeGuard())

	g.GET("", h.list)
	g.GET("/:id", h.detail)
}

func (h *PartnerHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, out)
}

func (h *PartnerHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(400, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(200, out)
}
