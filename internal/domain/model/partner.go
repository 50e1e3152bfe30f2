package model

import "time"

// 取引先。パートナー発注のログイン主体でもある。
type Partner struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PartnerName  string    `gorm:"type:varchar(255);not null" json:"partner_name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Phone        *string   `gorm:"type:varchar(30)" json:"phone"`
	Country      *string   `gorm:"type:varchar(100)" json:"country"`
	City         *string   `gorm:"type:varchar(100)" json:"city"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
