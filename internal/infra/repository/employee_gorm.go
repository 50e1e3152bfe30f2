package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

func (r *EmployeeGormRepository) FindByID(ctx context.Context, employeeID int64) (model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("id = ?", employeeID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Employee{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeGormRepository) FindByEmail(ctx context.Context, email string) (model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Employee{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeGormRepository) ListByRole(ctx context.Context, role model.ApprovalRole) ([]model.Employee, error) {
	var items []model.Employee
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return []model.Employee{}, err
	}
	return items, nil
}
