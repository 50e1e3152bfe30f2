package model

import "time"

// 倉庫ごとの在庫。読み取り専用で、注文が在庫を減らすことはない。
type Stock struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64     `gorm:"not null;index:idx_product_warehouse,unique" json:"product_id"`
	WarehouseID int64     `gorm:"not null;index:idx_product_warehouse,unique" json:"warehouse_id"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// 表示用（JOINで埋める。永続化しない）
	ProductName   string `gorm:"-" json:"product_name,omitempty"`
	WarehouseName string `gorm:"-" json:"warehouse_name,omitempty"`
}
