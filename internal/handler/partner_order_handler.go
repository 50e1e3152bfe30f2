package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// パートナー本人の発注API。
type PartnerOrderHandler struct {
	partnerOrderUC *usecase.PartnerOrderUsecase
	orderUC        *usecase.OrderUsecase
}

func NewPartnerOrderHandler(partnerOrderUC *usecase.PartnerOrderUsecase, orderUC *usecase.OrderUsecase) *PartnerOrderHandler {
	return &PartnerOrderHandler{partnerOrderUC: partnerOrderUC, orderUC: orderUC}
}

func (h *PartnerOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/partner/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.PartnerGuard())

	g.POST("", h.create)
	g.GET("", h.list)
}

func (h *PartnerOrderHandler) create(c echo.Context) error {
	partnerID, ok := getSubjectIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.PlacePartnerOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.partnerOrderUC.PlaceOrder(c.Request().Context(), partnerID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PartnerOrderHandler) list(c echo.Context) error {
	partnerID, ok := getSubjectIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.orderUC.ListOrdersByPartner(c.Request().Context(), partnerID, page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
