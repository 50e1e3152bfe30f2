package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	approvers  repo.OrderApproverRepository
	employees  repo.EmployeeRepository
	partners   repo.PartnerRepository
	products   repo.ProductRepository
	stocks     repo.StockRepository
	auditLogs  repo.AuditLogRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository            { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository    { return r.orderItems }
func (r *txReposGorm) Approvers() repo.OrderApproverRepository { return r.approvers }
func (r *txReposGorm) Employees() repo.EmployeeRepository      { return r.employees }
func (r *txReposGorm) Partners() repo.PartnerRepository        { return r.partners }
func (r *txReposGorm) Products() repo.ProductRepository        { return r.products }
func (r *txReposGorm) Stocks() repo.StockRepository            { return r.stocks }
func (r *txReposGorm) AuditLogs() repo.AuditLogRepository      { return r.auditLogs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:     NewOrderGormRepository(tx),
			orderItems: NewOrderItemGormRepository(tx),
			approvers:  NewOrderApproverGormRepository(tx),
			employees:  NewEmployeeGormRepository(tx),
			partners:   NewPartnerGormRepository(tx),
			products:   NewProductGormRepository(tx),
			stocks:     NewStockGormRepository(tx),
			auditLogs:  NewAuditLogGormRepository(tx),
		}
		return fn(r)
	})
}
