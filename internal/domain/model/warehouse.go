package model

import "time"

type Warehouse struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WarehouseName string    `gorm:"type:varchar(255);not null" json:"warehouse_name"`
	Country       *string   `gorm:"type:varchar(100)" json:"country"`
	City          *string   `gorm:"type:varchar(100)" json:"city"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
