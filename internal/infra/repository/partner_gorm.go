package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PartnerGormRepository struct {
	db *gorm.DB
}

func NewPartnerGormRepository(db *gorm.DB) *PartnerGormRepository {
	return &PartnerGormRepository{db: db}
}

func (r *PartnerGormRepository) FindByID(ctx context.Context, partnerID int64) (model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).Where("id = ?", partnerID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Partner{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Partner{}, err
	}
	return p, nil
}

func (r *PartnerGormRepository) FindByEmail(ctx context.Context, email string) (model.Partner, error) {
	var p model.Partner
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Partner{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Partner{}, err
	}
	return p, nil
}

func (r *PartnerGormRepository) List(ctx context.Context) ([]model.Partner, error) {
	var items []model.Partner
	err := r.db.WithContext(ctx).Order("partner_name asc").Find(&items).Error
	if err != nil {
		return []model.Partner{}, err
	}
	return items, nil
}
