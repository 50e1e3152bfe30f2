package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PartnerUsecase struct {
	partners repo.PartnerRepository
}

func NewPartnerUsecase(partners repo.PartnerRepository) *PartnerUsecase {
	return &PartnerUsecase{partners: partners}
}

type PartnerOutput struct {
	ID          int64   `json:"id"`
	PartnerName string  `json:"partner_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Country     *string `json:"country"`
	City        *string `json:"city"`
}

func (u *PartnerUsecase) List(ctx context.Context) ([]PartnerOutput, error) {
	partners, err := u.partners.List(ctx)
	if err != nil {
		return []PartnerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]PartnerOutput, 0, len(partners))
	for _, p := range partners {
		outs = append(outs, toPartnerOutput(p))
	}
	return outs, nil
}

func (u *PartnerUsecase) Detail(ctx context.Context, partnerID int64) (PartnerOutput, error) {
	if partnerID <= 0 {
		return PartnerOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.partners.FindByID(ctx, partnerID)
	if err == repo.ErrNotFound {
		return PartnerOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return PartnerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toPartnerOutput(p), nil
}

func toPartnerOutput(p model.Partner) PartnerOutput {
	return PartnerOutput{
		ID:          p.ID,
		PartnerName: p.PartnerName,
		Email:       p.Email,
		Phone:       p.Phone,
		Country:     p.Country,
		City:        p.City,
	}
}
