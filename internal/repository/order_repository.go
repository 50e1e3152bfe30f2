package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	List(ctx context.Context, page int, limit int) ([]model.Order, int64, error)
	ListByPartnerID(ctx context.Context, partnerID int64, page int, limit int) ([]model.Order, int64, error)

	// 条件付きでステップを1つ進める。
	// (id, status=ACTIVE, current_step=expectedStep) が一致した行だけ更新し、
	// 更新できたかをboolで返す。承認の同時実行はここで1つに絞られる。
	AdvanceStep(ctx context.Context, orderID int64, expectedStep int) (bool, error)

	// ACTIVEな注文をCOMPLETEDにする。
	Complete(ctx context.Context, orderID int64) (bool, error)

	// 明細の合計で注文の合計金額を上書きする。
	UpdateTotalPrice(ctx context.Context, orderID int64, total int64) error
}
