package repository

import (
	"context"

	"app/internal/domain/model"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.AuditLog, error)
}
