package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 在庫不足の1件分。
type StockShortfall struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Requested   int64  `json:"requested"`
	Available   int64  `json:"available"`
}

// パートナー発注の在庫チェック結果。
// 足りない商品を全件持つ（最初の1件だけではない）。
type StockShortfallError struct {
	Items []StockShortfall
}

func (e *StockShortfallError) Error() string {
	return fmt.Sprintf("insufficient stock for %d product(s)", len(e.Items))
}

func AsStockShortfall(err error) (*StockShortfallError, bool) {
	var se *StockShortfallError
	ok := errors.As(err, &se)
	return se, ok
}
