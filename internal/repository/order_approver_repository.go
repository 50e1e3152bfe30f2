package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderApproverRepository interface {
	// 割り当ては(注文,社員)につき1行。作成後は変更しない。
	Create(ctx context.Context, approver model.OrderApprover) error

	// 社員名とロールを埋めて返す。
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderApprover, error)

	// 社員が割り当てられている注文IDの一覧。
	ListOrderIDsByEmployee(ctx context.Context, employeeID int64) ([]int64, error)

	Exists(ctx context.Context, orderID int64, employeeID int64) (bool, error)
}
