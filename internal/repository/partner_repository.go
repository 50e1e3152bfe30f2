package repository

import (
	"context"

	"app/internal/domain/model"
)

type PartnerRepository interface {
	FindByID(ctx context.Context, partnerID int64) (model.Partner, error)
	FindByEmail(ctx context.Context, email string) (model.Partner, error)
	List(ctx context.Context) ([]model.Partner, error)
}
