package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	Create(ctx context.Context, item model.OrderItem) (int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// SUM(単価スナップショット×数量)。明細追加のたびに全件から計算し直す。
	SumTotal(ctx context.Context, orderID int64) (int64, error)
}
