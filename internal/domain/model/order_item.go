package model

import "time"

// 注文明細。商品名・単位・単価は注文時点のスナップショット。
// 商品マスタが後で変わっても明細は変わらない。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"order_id"`
	ProductID           int64     `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string    `gorm:"type:varchar(255);not null" json:"product_name_snapshot"`
	UnitSnapshot        string    `gorm:"type:varchar(20)" json:"unit_snapshot"`
	UnitPriceSnapshot   int64     `gorm:"not null" json:"unit_price_snapshot"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	Note                *string   `gorm:"type:varchar(255)" json:"note"`
	Currency            *string   `gorm:"type:varchar(10)" json:"currency"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
