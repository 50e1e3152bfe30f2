package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	tx repo.TransactionManager
}

func NewProductUsecase(tx repo.TransactionManager) *ProductUsecase {
	return &ProductUsecase{tx: tx}
}

type ProductOutput struct {
	ID          int64  `json:"id"`
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Price       int64  `json:"price"`
}

type StockLineOutput struct {
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int64  `json:"quantity"`
}

type ProductDetailOutput struct {
	ProductOutput
	TotalStock int64             `json:"total_stock"`
	Stocks     []StockLineOutput `json:"stocks"`
}

func (u *ProductUsecase) List(ctx context.Context, page int, limit int) ([]ProductOutput, error) {
	if page < 1 {
		return []ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return []ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	var outs []ProductOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		products, _, err := r.Products().List(ctx, page, limit)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]ProductOutput, 0, len(products))
		for _, p := range products {
			outs = append(outs, toProductOutput(p))
		}
		return nil
	})

	if err != nil {
		return []ProductOutput{}, err
	}
	return outs, nil
}

// 商品詳細＋全倉庫の在庫内訳。
func (u *ProductUsecase) Detail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out ProductDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		total, err := r.Stocks().TotalQuantityByProduct(ctx, productID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		stocks, err := r.Stocks().ListByProduct(ctx, productID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines := make([]StockLineOutput, 0, len(stocks))
		for _, s := range stocks {
			lines = append(lines, StockLineOutput{
				WarehouseID:   s.WarehouseID,
				WarehouseName: s.WarehouseName,
				Quantity:      s.Quantity,
			})
		}

		out = ProductDetailOutput{
			ProductOutput: toProductOutput(p),
			TotalStock:    total,
			Stocks:        lines,
		}
		return nil
	})

	if err != nil {
		return ProductDetailOutput{}, err
	}
	return out, nil
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		Description: p.Description,
		Unit:        p.Unit,
		Price:       p.Price,
	}
}
