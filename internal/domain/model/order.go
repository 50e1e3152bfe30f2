package model

import "time"

type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// 注文ヘッダ。CurrentStepは0..3で後退しない。
// 3に達したらStatusはCOMPLETEDになり、以後変更されない。
type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	PartnerID      int64       `gorm:"not null;index" json:"partner_id"`
	CurrentStep    int         `gorm:"not null" json:"current_step"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	OrdererName    string      `gorm:"type:varchar(100);not null" json:"orderer_name"`
	OrdererSurname string      `gorm:"type:varchar(100)" json:"orderer_surname"`
	TotalPrice     int64       `gorm:"not null" json:"total_price"`
	PaymentTerm    *string     `gorm:"type:varchar(100)" json:"payment_term"`
	Currency       *string     `gorm:"type:varchar(10)" json:"currency"`
	OrderNote      *string     `gorm:"type:text" json:"order_note"`
	CreatedAt      time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (o Order) StatusText() string {
	switch o.Status {
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusActive:
		return "Pending Approval"
	default:
		return "Unknown"
	}
}

func (o Order) CurrentStepText() string {
	return StepText(o.CurrentStep)
}

func (o Order) OrdererFullName() string {
	if o.OrdererSurname == "" {
		return o.OrdererName
	}
	return o.OrdererName + " " + o.OrdererSurname
}
