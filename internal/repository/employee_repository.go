package repository

import (
	"context"

	"app/internal/domain/model"
)

type EmployeeRepository interface {
	FindByID(ctx context.Context, employeeID int64) (model.Employee, error)
	FindByEmail(ctx context.Context, email string) (model.Employee, error)

	// 指定ロールを現在持っている社員の一覧（割り当て候補）。
	ListByRole(ctx context.Context, role model.ApprovalRole) ([]model.Employee, error)
}
