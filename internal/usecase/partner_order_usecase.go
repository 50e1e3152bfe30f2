package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// パートナー発注。社員発注との違いは、書き込みの前に全明細を
// 在庫（全倉庫合計）と突き合わせることだけ。1件でも足りなければ
// 注文は丸ごと作られない。2つのルートは意図的に統一していない。
type PartnerOrderUsecase struct {
	tx       repo.TransactionManager
	assigner *ApproverAssigner
}

func NewPartnerOrderUsecase(tx repo.TransactionManager, assigner *ApproverAssigner) *PartnerOrderUsecase {
	return &PartnerOrderUsecase{tx: tx, assigner: assigner}
}

type PlacePartnerOrderInput struct {
	PaymentTerm *string          `json:"payment_term"`
	Currency    *string          `json:"currency"`
	OrderNote   *string          `json:"order_note"`
	Items       []OrderItemInput `json:"items"`
}

// パートナー本人による発注。
func (u *PartnerOrderUsecase) PlaceOrder(ctx context.Context, partnerID int64, in PlacePartnerOrderInput) (OrderOutput, error) {
	if partnerID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
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
		partner, err := r.Partners().FindByID(ctx, partnerID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//先に全明細をチェックして、足りないものを全部集める
		shortfalls := []StockShortfall{}
		for _, it := range in.Items {
			product, err := r.Products().FindByID(ctx, it.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			available, err := r.Stocks().TotalQuantityByProduct(ctx, it.ProductID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if it.Quantity > available {
				shortfalls = append(shortfalls, StockShortfall{
					ProductID:   it.ProductID,
					ProductName: product.ProductName,
					Requested:   it.Quantity,
					Available:   available,
				})
			}
		}

		//1件でも足りなければ何も書かずに終わる
		if len(shortfalls) > 0 {
			return &StockShortfallError{Items: shortfalls}
		}

		orderID, total, items, err := createOrderWithItems(ctx, r, u.assigner, createOrderParams{
			partnerID:      partnerID,
			ordererName:    partner.PartnerName,
			ordererSurname: "",
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
			PartnerID:       partnerID,
			PartnerName:     partner.PartnerName,
			Status:          string(model.OrderStatusActive),
			StatusText:      "Pending Approval",
			CurrentStep:     0,
			CurrentStepText: model.StepText(0),
			OrdererFullName: partner.PartnerName,
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
