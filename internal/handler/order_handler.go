package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 社員向けの注文API。
type OrderHandler struct {
	orderUC    *usecase.OrderUsecase
	approvalUC *usecase.ApprovalUsecase
}

func NewOrderHandler(orderUC *usecase.OrderUsecase, approvalUC *usecase.ApprovalUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, approvalUC: approvalUC}
}

type ApprovalActionRequest struct {
	Approved bool `json:"approved"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.EmployeeGuard())

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/pending", h.pending)
	g.GET("/:id", h.detail)
	g.POST("/:id/approval", h.approval)
}

func (h *OrderHandler) create(c echo.Context) error {
	employeeID, ok := getSubjectIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.orderUC.CreateOrder(c.Request().Context(), employeeID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) list(c echo.Context) error {
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

	out, err := h.orderUC.ListOrders(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 自分の番になっている注文の一覧。
func (h *OrderHandler) pending(c echo.Context) error {
	employeeID, ok := getSubjectIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.approvalUC.PendingApprovals(c.Request().Context(), employeeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	employeeID, ok := getSubjectIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.orderUC.GetOrderDetails(c.Request().Context(), id, employeeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// 承認アクション。approved=trueでステップを進め、falseは何も変えない。
func (h *OrderHandler) approval(c echo.Context) error {
	employeeID, ok := getSubjectIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ApprovalActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	var out usecase.ApprovalResultOutput
	if req.Approved {
		out, err = h.approvalUC.Approve(c.Request().Context(), employeeID, id)
	} else {
		out, err = h.approvalUC.Decline(c.Request().Context(), employeeID, id)
	}
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
