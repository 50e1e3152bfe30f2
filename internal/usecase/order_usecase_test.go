package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderFixture struct {
	tx        *TxManagerMock
	orders    *OrderRepoMock
	items     *OrderItemRepoMock
	approvers *ApproverRepoMock
	employees *EmployeeRepoMock
	partners  *PartnerRepoMock
	products  *ProductRepoMock
	uc        *usecase.OrderUsecase
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		tx:        new(TxManagerMock),
		orders:    new(OrderRepoMock),
		items:     new(OrderItemRepoMock),
		approvers: new(ApproverRepoMock),
		employees: new(EmployeeRepoMock),
		partners:  new(PartnerRepoMock),
		products:  new(ProductRepoMock),
	}
	f.tx.Repos = &TxReposMock{
		orders:     f.orders,
		orderItems: f.items,
		approvers:  f.approvers,
		employees:  f.employees,
		partners:   f.partners,
		products:   f.products,
	}
	f.tx.On("WithinTx", mock.Anything).Return(nil)

	assigner := usecase.NewApproverAssigner(&fixedRand{n: 0})
	f.uc = usecase.NewOrderUsecase(f.tx, assigner)
	return f
}

// 3ロール分の割り当て候補を1人ずつ用意する
func (f *orderFixture) stubApproverCandidates() {
	f.employees.On("ListByRole", mock.Anything, model.RoleCommercial).Return([]model.Employee{
		{ID: 101, Role: rolePtr(model.RoleCommercial)},
	}, nil)
	f.employees.On("ListByRole", mock.Anything, model.RoleTechnical).Return([]model.Employee{
		{ID: 102, Role: rolePtr(model.RoleTechnical)},
	}, nil)
	f.employees.On("ListByRole", mock.Anything, model.RoleParaf).Return([]model.Employee{
		{ID: 103, Role: rolePtr(model.RoleParaf)},
	}, nil)
}

// =====================
// CreateOrder validation
// =====================

func TestOrderUsecase_CreateOrder_Unauthorized(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), 0, usecase.CreateOrderInput{
		PartnerID: 1,
		Items:     []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	assertErrContains(t, err, "unauthorized")
}

func TestOrderUsecase_CreateOrder_ItemsRequired(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 1,
	})
	assertErrContains(t, err, "items required")
}

func TestOrderUsecase_CreateOrder_InvalidItem(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 1,
		Items:     []usecase.OrderItemInput{{ProductID: 1, Quantity: 0}},
	})
	assertErrContains(t, err, "invalid item")
}

func TestOrderUsecase_CreateOrder_PartnerNotFound(t *testing.T) {
	f := newOrderFixture()

	f.employees.On("FindByID", mock.Anything, int64(10)).Return(model.Employee{
		ID: 10, Name: "Taro", Surname: "Yamada",
	}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{}, repo.ErrNotFound)

	_, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 5,
		Items:     []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	assertErrContains(t, err, "partner not found")
}

// =====================
// CreateOrder success path
// =====================

func TestOrderUsecase_CreateOrder_RecomputesTotalPerItem(t *testing.T) {
	f := newOrderFixture()

	f.employees.On("FindByID", mock.Anything, int64(10)).Return(model.Employee{
		ID: 10, Name: "Taro", Surname: "Yamada",
	}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{
		ID: 5, PartnerName: "Acme Trading",
	}, nil)

	f.orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.PartnerID == 5 && o.CurrentStep == 0 &&
			o.Status == model.OrderStatusActive && o.TotalPrice == 0
	})).Return(int64(7), nil)

	f.stubApproverCandidates()
	f.approvers.On("Create", mock.Anything, mock.Anything).Return(nil).Times(3)

	f.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, ProductName: "Widget", Unit: "pcs", Price: 10,
	}, nil)
	f.products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{
		ID: 2, ProductName: "Gadget", Unit: "box", Price: 5,
	}, nil)

	f.items.On("Create", mock.Anything, mock.MatchedBy(func(it model.OrderItem) bool {
		return it.OrderID == 7 && it.ProductID == 1 &&
			it.ProductNameSnapshot == "Widget" && it.UnitPriceSnapshot == 10 && it.Quantity == 2
	})).Return(int64(1), nil)
	f.items.On("Create", mock.Anything, mock.MatchedBy(func(it model.OrderItem) bool {
		return it.OrderID == 7 && it.ProductID == 2 && it.UnitPriceSnapshot == 5 && it.Quantity == 3
	})).Return(int64(2), nil)

	// 明細追加のたびに全件から計算し直す（差分加算ではない）
	f.items.On("SumTotal", mock.Anything, int64(7)).Return(int64(20), nil).Once()
	f.items.On("SumTotal", mock.Anything, int64(7)).Return(int64(35), nil).Once()
	f.orders.On("UpdateTotalPrice", mock.Anything, int64(7), int64(20)).Return(nil).Once()
	f.orders.On("UpdateTotalPrice", mock.Anything, int64(7), int64(35)).Return(nil).Once()

	f.approvers.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderApprover{
		{OrderID: 7, EmployeeID: 101, EmployeeName: "A", Role: rolePtr(model.RoleCommercial)},
		{OrderID: 7, EmployeeID: 102, EmployeeName: "B", Role: rolePtr(model.RoleTechnical)},
		{OrderID: 7, EmployeeID: 103, EmployeeName: "C", Role: rolePtr(model.RoleParaf)},
	}, nil)

	out, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 5,
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, int64(35), out.TotalPrice)
	assert.Equal(t, 0, out.CurrentStep)
	assert.Equal(t, "Taro Yamada", out.OrdererFullName)
	assert.Equal(t, 3, len(out.Approvers))

	f.orders.AssertExpectations(t)
	f.items.AssertExpectations(t)
}

func TestOrderUsecase_CreateOrder_ThirdItemOverwritesTotal(t *testing.T) {
	f := newOrderFixture()

	f.employees.On("FindByID", mock.Anything, int64(10)).Return(model.Employee{ID: 10}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{ID: 5}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(int64(9), nil)
	f.stubApproverCandidates()
	f.approvers.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: 10}, nil)
	f.products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Price: 5}, nil)
	f.products.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, Price: 100}, nil)
	f.items.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)

	// 合計は毎回SUMで上書きされる。35に100を「足す」のではなく135で置き換える。
	f.items.On("SumTotal", mock.Anything, int64(9)).Return(int64(20), nil).Once()
	f.items.On("SumTotal", mock.Anything, int64(9)).Return(int64(35), nil).Once()
	f.items.On("SumTotal", mock.Anything, int64(9)).Return(int64(135), nil).Once()
	f.orders.On("UpdateTotalPrice", mock.Anything, int64(9), int64(20)).Return(nil).Once()
	f.orders.On("UpdateTotalPrice", mock.Anything, int64(9), int64(35)).Return(nil).Once()
	f.orders.On("UpdateTotalPrice", mock.Anything, int64(9), int64(135)).Return(nil).Once()

	f.approvers.On("ListByOrderID", mock.Anything, int64(9)).Return([]model.OrderApprover{}, nil)

	out, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 5,
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
			{ProductID: 3, Quantity: 1},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(135), out.TotalPrice)

	f.orders.AssertExpectations(t)
	f.items.AssertExpectations(t)
}

func TestOrderUsecase_CreateOrder_AssignsOneApproverPerRole(t *testing.T) {
	f := newOrderFixture()

	f.employees.On("FindByID", mock.Anything, int64(10)).Return(model.Employee{ID: 10}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{ID: 5}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)

	f.stubApproverCandidates()
	f.approvers.On("Create", mock.Anything, model.OrderApprover{OrderID: 7, EmployeeID: 101}).Return(nil).Once()
	f.approvers.On("Create", mock.Anything, model.OrderApprover{OrderID: 7, EmployeeID: 102}).Return(nil).Once()
	f.approvers.On("Create", mock.Anything, model.OrderApprover{OrderID: 7, EmployeeID: 103}).Return(nil).Once()

	f.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: 10}, nil)
	f.items.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
	f.items.On("SumTotal", mock.Anything, int64(7)).Return(int64(10), nil)
	f.orders.On("UpdateTotalPrice", mock.Anything, int64(7), int64(10)).Return(nil)
	f.approvers.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderApprover{}, nil)

	_, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 5,
		Items:     []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	assert.NoError(t, err)

	f.approvers.AssertExpectations(t)
}

func TestOrderUsecase_CreateOrder_NoEligibleApprover(t *testing.T) {
	f := newOrderFixture()

	f.employees.On("FindByID", mock.Anything, int64(10)).Return(model.Employee{ID: 10}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{ID: 5}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)

	// COMMERCIALの候補がいない → 注文ごと失敗
	f.employees.On("ListByRole", mock.Anything, model.RoleCommercial).Return([]model.Employee{}, nil)

	_, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 5,
		Items:     []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	})
	assertErrContains(t, err, "no eligible approver")

	f.items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_CreateOrder_InvalidProduct(t *testing.T) {
	f := newOrderFixture()

	f.employees.On("FindByID", mock.Anything, int64(10)).Return(model.Employee{ID: 10}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{ID: 5}, nil)
	f.orders.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)
	f.stubApproverCandidates()
	f.approvers.On("Create", mock.Anything, mock.Anything).Return(nil)

	f.products.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := f.uc.CreateOrder(context.Background(), 10, usecase.CreateOrderInput{
		PartnerID: 5,
		Items:     []usecase.OrderItemInput{{ProductID: 999, Quantity: 1}},
	})
	assertErrContains(t, err, "invalid product")
}

// =====================
// GetOrderDetails / List
// =====================

func TestOrderUsecase_GetOrderDetails_WithViewerGate(t *testing.T) {
	f := newOrderFixture()

	f.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, PartnerID: 5, CurrentStep: 1, Status: model.OrderStatusActive,
		OrdererName: "Taro", OrdererSurname: "Yamada", TotalPrice: 35,
	}, nil)
	f.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{OrderID: 7, ProductID: 1, ProductNameSnapshot: "Widget", UnitPriceSnapshot: 10, Quantity: 2},
	}, nil)
	f.approvers.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderApprover{}, nil)
	f.partners.On("FindByID", mock.Anything, int64(5)).Return(model.Partner{
		ID: 5, PartnerName: "Acme Trading",
	}, nil)

	// 閲覧者はstep1担当のTECHNICALで割り当て済み → 承認可
	f.approvers.On("Exists", mock.Anything, int64(7), int64(20)).Return(true, nil)
	f.employees.On("FindByID", mock.Anything, int64(20)).Return(model.Employee{
		ID: 20, Role: rolePtr(model.RoleTechnical),
	}, nil)

	out, err := f.uc.GetOrderDetails(context.Background(), 7, 20)
	assert.NoError(t, err)
	assert.Equal(t, "Acme Trading", out.PartnerName)
	assert.Equal(t, "Technical Approval", out.CurrentStepText)
	assert.Equal(t, 1, len(out.Items))
	assert.True(t, out.CanApprove)
	if assert.NotNil(t, out.ViewerRole) {
		assert.Equal(t, model.RoleTechnical, out.ViewerRole.Role)
	}
}

func TestOrderUsecase_GetOrderDetails_NotFound(t *testing.T) {
	f := newOrderFixture()

	f.orders.On("FindByID", mock.Anything, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	_, err := f.uc.GetOrderDetails(context.Background(), 99, 0)
	assertErrContains(t, err, "not found")
}

func TestOrderUsecase_ListOrders_InvalidPage(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.ListOrders(context.Background(), 0, 20)
	assertErrContains(t, err, "invalid page")
}

func TestOrderUsecase_ListOrdersByPartner_InvalidLimit(t *testing.T) {
	f := newOrderFixture()

	_, err := f.uc.ListOrdersByPartner(context.Background(), 5, 1, 0)
	assertErrContains(t, err, "invalid limit")
}
