package model

import "time"

// 注文の承認者割り当て。注文作成時に1回だけ書き、以後変更しない。
// どのステップを担当するかは行には持たず、担当者のロールと
// 注文のcurrent_stepの突き合わせで毎回導出する。
type OrderApprover struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64     `gorm:"not null;index:idx_order_employee,unique" json:"order_id"`
	EmployeeID int64     `gorm:"not null;index:idx_order_employee,unique" json:"employee_id"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	// 表示用（JOINで埋める。永続化しない）
	EmployeeName string        `gorm:"-" json:"employee_name,omitempty"`
	Role         *ApprovalRole `gorm:"-" json:"role,omitempty"`
}
