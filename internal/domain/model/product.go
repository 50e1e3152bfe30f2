package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductCode string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"product_code"`
	ProductName string         `gorm:"type:varchar(255);not null" json:"product_name"`
	Description string         `gorm:"type:text" json:"description"`
	Unit        string         `gorm:"type:varchar(20)" json:"unit"`
	Price       int64          `gorm:"not null" json:"price"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
