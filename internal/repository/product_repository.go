package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, page int, limit int) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
}
