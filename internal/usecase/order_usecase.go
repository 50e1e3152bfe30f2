package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 社員発注とその閲覧系。
type OrderUsecase struct {
	tx       repo.TransactionManager
	assigner *ApproverAssigner
}

func NewOrderUsecase(tx repo.TransactionManager, assigner *ApproverAssigner) *OrderUsecase {
	return &OrderUsecase{tx: tx, assigner: assigner}
}

type OrderItemInput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Note      *string `json:"note"`
}

type CreateOrderInput struct {
	PartnerID   int64            `json:"partner_id"`
	PaymentTerm *string          `json:"payment_term"`
	Currency    *string          `json:"currency"`
	OrderNote   *string          `json:"order_note"`
	Items       []OrderItemInput `json:"items"`
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderApproverOutput struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Role         string `json:"role"`
}

type OrderOutput struct {
	ID              int64                 `json:"id"`
	PartnerID       int64                 `json:"partner_id"`
	PartnerName     string                `json:"partner_name"`
	Status          string                `json:"status"`
	StatusText      string                `json:"status_text"`
	CurrentStep     int                   `json:"current_step"`
	CurrentStepText string                `json:"current_step_text"`
	OrdererFullName string                `json:"orderer_full_name"`
	TotalPrice      int64                 `json:"total_price"`
	CreatedAt       time.Time             `json:"created_at"`
	Items           []OrderItemOutput     `json:"items"`
	Approvers       []OrderApproverOutput `json:"approvers,omitempty"`

	// 閲覧者の承認可否（社員として閲覧したときだけ埋まる）
	CanApprove bool          `json:"can_approve"`
	ViewerRole *ApproverInfo `json:"viewer_role,omitempty"`
}

// 社員による注文作成。ヘッダ作成・承認者割り当て・明細追加・合計再計算を
// 1トランザクションで行う。どこかで失敗したら何も残らない。
// このルートは在庫チェックをしない（パートナー発注だけがチェックする）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, employeeID int64, in CreateOrderInput) (OrderOutput, error) {
	if employeeID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.PartnerID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid partner_id")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item")
		}
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		emp, err := r.Employees().FindByID(ctx, employeeID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		partner, err := r.Partners().FindByID(ctx, in.PartnerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "partner not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID, total, items, err := createOrderWithItems(ctx, r, u.assigner, createOrderParams{
			partnerID:      in.PartnerID,
			ordererName:    emp.Name,
			ordererSurname: emp.Surname,
			paymentTerm:    in.PaymentTerm,
			currency:       in.Currency,
			orderNote:      in.OrderNote,
			items:          in.Items,
		})
		if err != nil {
			return err
		}

		approvers, err := r.Approvers().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{
			ID:              orderID,
			PartnerID:       in.PartnerID,
			PartnerName:     partner.PartnerName,
			Status:          string(model.OrderStatusActive),
			StatusText:      "Pending Approval",
			CurrentStep:     0,
			CurrentStepText: model.StepText(0),
			OrdererFullName: emp.FullName(),
			TotalPrice:      total,
			Items:           items,
			Approvers:       toApproverOutputs(approvers),
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

type createOrderParams struct {
	partnerID      int64
	ordererName    string
	ordererSurname string
	paymentTerm    *string
	currency       *string
	orderNote      *string
	items          []OrderItemInput
}

// 両方の発注ルートが共有する作成シーケンス。
// ヘッダ(step=0, ACTIVE, total=0) → 承認者割り当て → 明細を1件ずつ追加し、
// そのたびに全明細の合計で合計金額を上書きする。
func createOrderWithItems(ctx context.Context, r repo.TxRepos, assigner *ApproverAssigner, p createOrderParams) (int64, int64, []OrderItemOutput, error) {
	orderID, err := r.Orders().Create(ctx, model.Order{
		PartnerID:      p.partnerID,
		CurrentStep:    0,
		Status:         model.OrderStatusActive,
		OrdererName:    p.ordererName,
		OrdererSurname: p.ordererSurname,
		TotalPrice:     0,
		PaymentTerm:    p.paymentTerm,
		Currency:       p.currency,
		OrderNote:      p.orderNote,
	})
	if err != nil {
		return 0, 0, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := assigner.Assign(ctx, r, orderID); err != nil {
		return 0, 0, nil, err
	}

	outItems := make([]OrderItemOutput, 0, len(p.items))
	var total int64 = 0

	for _, it := range p.items {
		product, err := r.Products().FindByID(ctx, it.ProductID)
		if err == repo.ErrNotFound {
			return 0, 0, nil, NewHTTPError(http.StatusBadRequest, "invalid product")
		}
		if err != nil {
			return 0, 0, nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//価格・名前・単位は注文時点のスナップショット
		if _, err := r.OrderItems().Create(ctx, model.OrderItem{
			OrderID:             orderID,
			ProductID:           it.ProductID,
			ProductNameSnapshot: product.ProductName,
			UnitSnapshot:        product.Unit,
			UnitPriceSnapshot:   product.Price,
			Quantity:            it.Quantity,
			Note:                it.Note,
			Currency:            p.currency,
		}); err != nil {
			return 0, 0, nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//合計は差分加算ではなく毎回全明細から計算し直す
		total, err = r.OrderItems().SumTotal(ctx, orderID)
		if err != nil {
			return 0, 0, nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().UpdateTotalPrice(ctx, orderID, total); err != nil {
			return 0, 0, nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      product.ProductName,
			Unit:      product.Unit,
			Price:     product.Price,
			Quantity:  it.Quantity,
		})
	}

	return orderID, total, outItems, nil
}

// 注文詳細。viewerEmployeeIDが正なら、その社員の承認可否も載せる。
func (u *OrderUsecase) GetOrderDetails(ctx context.Context, orderID int64, viewerEmployeeID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		approvers, err := r.Approvers().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		partnerName := ""
		if p, err := r.Partners().FindByID(ctx, order.PartnerID); err == nil {
			partnerName = p.PartnerName
		}

		out = toOrderOutput(order, partnerName, items)
		out.Approvers = toApproverOutputs(approvers)

		if viewerEmployeeID > 0 {
			allowed, info, err := approvalGate(ctx, r, order, viewerEmployeeID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out.CanApprove = allowed
			out.ViewerRole = info
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 全注文の一覧（ダッシュボード）。
func (u *OrderUsecase) ListOrders(ctx context.Context, page int, limit int) ([]OrderOutput, error) {
	if page < 1 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().List(ctx, page, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs, err = toOrderOutputs(ctx, r, orders)
		return err
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 特定パートナーの注文一覧。
func (u *OrderUsecase) ListOrdersByPartner(ctx context.Context, partnerID int64, page int, limit int) ([]OrderOutput, error) {
	if partnerID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid partner_id")
	}
	if page < 1 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, _, err := r.Orders().ListByPartnerID(ctx, partnerID, page, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs, err = toOrderOutputs(ctx, r, orders)
		return err
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func toOrderOutputs(ctx context.Context, r repo.TxRepos, orders []model.Order) ([]OrderOutput, error) {
	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		partnerName := ""
		if p, err := r.Partners().FindByID(ctx, o.PartnerID); err == nil {
			partnerName = p.PartnerName
		}
		outs = append(outs, toOrderOutput(o, partnerName, nil))
	}
	return outs, nil
}

func toOrderOutput(o model.Order, partnerName string, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Unit:      it.UnitSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		PartnerID:       o.PartnerID,
		PartnerName:     partnerName,
		Status:          string(o.Status),
		StatusText:      o.StatusText(),
		CurrentStep:     o.CurrentStep,
		CurrentStepText: o.CurrentStepText(),
		OrdererFullName: o.OrdererFullName(),
		TotalPrice:      o.TotalPrice,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}

func toApproverOutputs(approvers []model.OrderApprover) []OrderApproverOutput {
	outs := make([]OrderApproverOutput, 0, len(approvers))
	for _, a := range approvers {
		role := ""
		if a.Role != nil {
			role = string(*a.Role)
		}
		outs = append(outs, OrderApproverOutput{
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			Role:         role,
		})
	}
	return outs
}
