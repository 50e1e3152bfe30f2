package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	approvers  repo.OrderApproverRepository
	employees  repo.EmployeeRepository
	partners   repo.PartnerRepository
	products   repo.ProductRepository
	stocks     repo.StockRepository
	auditLogs  repo.AuditLogRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository            { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository    { return r.orderItems }
func (r *TxReposMock) Approvers() repo.OrderApproverRepository { return r.approvers }
func (r *TxReposMock) Employees() repo.EmployeeRepository      { return r.employees }
func (r *TxReposMock) Partners() repo.PartnerRepository        { return r.partners }
func (r *TxReposMock) Products() repo.ProductRepository        { return r.products }
func (r *TxReposMock) Stocks() repo.StockRepository            { return r.stocks }
func (r *TxReposMock) AuditLogs() repo.AuditLogRepository      { return r.auditLogs }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) ListByPartnerID(ctx context.Context, partnerID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, partnerID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) AdvanceStep(ctx context.Context, orderID int64, expectedStep int) (bool, error) {
	args := m.Called(ctx, orderID, expectedStep)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) Complete(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) UpdateTotalPrice(ctx context.Context, orderID int64, total int64) error {
	args := m.Called(ctx, orderID, total)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) Create(ctx context.Context, item model.OrderItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) SumTotal(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type ApproverRepoMock struct{ mock.Mock }

func (m *ApproverRepoMock) Create(ctx context.Context, approver model.OrderApprover) error {
	args := m.Called(ctx, approver)
	return args.Error(0)
}

func (m *ApproverRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderApprover, error) {
	args := m.Called(ctx, orderID)
	approvers, _ := args.Get(0).([]model.OrderApprover)
	return approvers, args.Error(1)
}

func (m *ApproverRepoMock) ListOrderIDsByEmployee(ctx context.Context, employeeID int64) ([]int64, error) {
	args := m.Called(ctx, employeeID)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *ApproverRepoMock) Exists(ctx context.Context, orderID int64, employeeID int64) (bool, error) {
	args := m.Called(ctx, orderID, employeeID)
	return args.Bool(0), args.Error(1)
}

type EmployeeRepoMock struct{ mock.Mock }

func (m *EmployeeRepoMock) FindByID(ctx context.Context, employeeID int64) (model.Employee, error) {
	args := m.Called(ctx, employeeID)
	e, _ := args.Get(0).(model.Employee)
	return e, args.Error(1)
}

func (m *EmployeeRepoMock) FindByEmail(ctx context.Context, email string) (model.Employee, error) {
	args := m.Called(ctx, email)
	e, _ := args.Get(0).(model.Employee)
	return e, args.Error(1)
}

func (m *EmployeeRepoMock) ListByRole(ctx context.Context, role model.ApprovalRole) ([]model.Employee, error) {
	args := m.Called(ctx, role)
	emps, _ := args.Get(0).([]model.Employee)
	return emps, args.Error(1)
}

type PartnerRepoMock struct{ mock.Mock }

func (m *PartnerRepoMock) FindByID(ctx context.Context, partnerID int64) (model.Partner, error) {
	args := m.Called(ctx, partnerID)
	p, _ := args.Get(0).(model.Partner)
	return p, args.Error(1)
}

func (m *PartnerRepoMock) FindByEmail(ctx context.Context, email string) (model.Partner, error) {
	args := m.Called(ctx, email)
	p, _ := args.Get(0).(model.Partner)
	return p, args.Error(1)
}

func (m *PartnerRepoMock) List(ctx context.Context) ([]model.Partner, error) {
	args := m.Called(ctx)
	partners, _ := args.Get(0).([]model.Partner)
	return partners, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, page int, limit int) ([]model.Product, int64, error) {
	args := m.Called(ctx, page, limit)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) TotalQuantityByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StockRepoMock) ListByProduct(ctx context.Context, productID int64) ([]model.Stock, error) {
	args := m.Called(ctx, productID)
	stocks, _ := args.Get(0).([]model.Stock)
	return stocks, args.Error(1)
}

type AuditLogRepoMock struct{ mock.Mock }

func (m *AuditLogRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditLogRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.AuditLog, error) {
	args := m.Called(ctx, orderID)
	logs, _ := args.Get(0).([]model.AuditLog)
	return logs, args.Error(1)
}

// =====================
// Helpers
// =====================

// 常に同じインデックスを返す乱数（割り当て結果を固定する）
type fixedRand struct{ n int }

func (f *fixedRand) Intn(n int) int {
	if f.n >= n {
		return 0
	}
	return f.n
}

func rolePtr(r model.ApprovalRole) *model.ApprovalRole {
	return &r
}

// error contains（HTTPErrorの実装詳細に依存しない）
func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
