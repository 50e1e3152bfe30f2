package repository

import (
	"context"

	"app/internal/domain/model"
)

// 在庫は読み取り専用。注文処理が在庫を減らすことはない。
type StockRepository interface {
	// 全倉庫合計の在庫数。行が無ければ0。
	TotalQuantityByProduct(ctx context.Context, productID int64) (int64, error)

	// 倉庫ごとの内訳（商品名・倉庫名入り）。
	ListByProduct(ctx context.Context, productID int64) ([]model.Stock, error)
}
