package model

import "time"

// 承認・却下の操作ログ種別。
type AuditAction string

const (
	//承認ステップを進めた操作。
	AuditActionApproveOrderStep AuditAction = "APPROVE_ORDER_STEP"
	//承認を却下した操作（注文自体は変わらない）。
	AuditActionDeclineOrderStep AuditAction = "DECLINE_ORDER_STEP"
)

// 監査ログ（承認操作ログ）。
// 「誰が」「どの注文の」「どのステップを」「どうしたか」を残す。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//操作した社員のID。
	ActorEmployeeID int64 `gorm:"not null;index" json:"actor_employee_id"`

	//操作の種類（APPROVE_ORDER_STEP / DECLINE_ORDER_STEP）。
	Action AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`

	//対象の注文ID。
	OrderID int64 `gorm:"not null;index" json:"order_id"`

	//JSON文字列で保存する。
	BeforeJSON string `gorm:"type:text" json:"before_json"`

	//JSON文字列で保存する。
	AfterJSON string `gorm:"type:text" json:"after_json"`

	//作成時刻
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
