package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type StockGormRepository struct {
	db *gorm.DB
}

func NewStockGormRepository(db *gorm.DB) *StockGormRepository {
	return &StockGormRepository{db: db}
}

// 全倉庫合計。
func (r *StockGormRepository) TotalQuantityByProduct(ctx context.Context, productID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Stock{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

type stockRow struct {
	ID            int64
	ProductID     int64
	WarehouseID   int64
	Quantity      int64
	ProductName   string
	WarehouseName string
}

func (r *StockGormRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Stock, error) {
	var rows []stockRow
	err := r.db.WithContext(ctx).
		Table("stocks").
		Select("stocks.id, stocks.product_id, stocks.warehouse_id, stocks.quantity, products.product_name, warehouses.warehouse_name").
		Joins("JOIN products ON products.id = stocks.product_id").
		Joins("JOIN warehouses ON warehouses.id = stocks.warehouse_id").
		Where("stocks.product_id = ?", productID).
		Order("stocks.quantity desc").
		Scan(&rows).Error
	if err != nil {
		return []model.Stock{}, err
	}

	out := make([]model.Stock, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Stock{
			ID:            row.ID,
			ProductID:     row.ProductID,
			WarehouseID:   row.WarehouseID,
			Quantity:      row.Quantity,
			ProductName:   row.ProductName,
			WarehouseName: row.WarehouseName,
		})
	}
	return out, nil
}
