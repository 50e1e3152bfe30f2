package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type OrderApproverGormRepository struct {
	db *gorm.DB
}

func NewOrderApproverGormRepository(db *gorm.DB) *OrderApproverGormRepository {
	return &OrderApproverGormRepository{db: db}
}

func (r *OrderApproverGormRepository) Create(ctx context.Context, approver model.OrderApprover) error {
	return r.db.WithContext(ctx).Create(&approver).Error
}

// JOINの結果を受けるための行型。
type approverRow struct {
	ID         int64
	OrderID    int64
	EmployeeID int64
	Name       string
	Surname    string
	Role       *model.ApprovalRole
}

func (r *OrderApproverGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderApprover, error) {
	var rows []approverRow
	err := r.db.WithContext(ctx).
		Table("order_approvers").
		Select("order_approvers.id, order_approvers.order_id, order_approvers.employee_id, employees.name, employees.surname, employees.role").
		Joins("JOIN employees ON employees.id = order_approvers.employee_id").
		Where("order_approvers.order_id = ?", orderID).
		Order("order_approvers.id asc").
		Scan(&rows).Error
	if err != nil {
		return []model.OrderApprover{}, err
	}

	out := make([]model.OrderApprover, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.OrderApprover{
			ID:           row.ID,
			OrderID:      row.OrderID,
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.Name + " " + row.Surname,
			Role:         row.Role,
		})
	}
	return out, nil
}

func (r *OrderApproverGormRepository) ListOrderIDsByEmployee(ctx context.Context, employeeID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.OrderApprover{}).
		Where("employee_id = ?", employeeID).
		Order("order_id desc").
		Pluck("order_id", &ids).Error
	if err != nil {
		return []int64{}, err
	}
	return ids, nil
}

func (r *OrderApproverGormRepository) Exists(ctx context.Context, orderID int64, employeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OrderApprover{}).
		Where("order_id = ? AND employee_id = ?", orderID, employeeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
