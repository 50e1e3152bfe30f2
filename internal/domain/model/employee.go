package model

import "time"

// 社員。Roleは承認ロール（無い社員がほとんど）。
// ロール持ちだけが承認フローの担当者に選ばれる。
type Employee struct {
	ID           int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"column:password_hash;not null" json:"-"`
	Name         string        `gorm:"type:varchar(100);not null" json:"name"`
	Surname      string        `gorm:"type:varchar(100);not null" json:"surname"`
	Phone        *string       `gorm:"type:varchar(30)" json:"phone"`
	DepartmentID int64         `gorm:"not null;index" json:"department_id"`
	Role         *ApprovalRole `gorm:"type:varchar(20);index" json:"role"`
	ManagerID    *int64        `gorm:"index" json:"manager_id"`
	StartDate    time.Time     `json:"start_date"`
	CreatedAt    time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (e Employee) FullName() string {
	return e.Name + " " + e.Surname
}

// 承認ロールを持つかどうか。
func (e Employee) HasApprovalRole() bool {
	return e.Role != nil && e.Role.Valid()
}
