package model

type Department struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartmentName string `gorm:"type:varchar(255);not null" json:"department_name"`
}
