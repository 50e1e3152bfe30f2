package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 承認フローの中核。
// 「誰の番か」は注文のcurrent_stepと担当者ロールの突き合わせで毎回導出する。
// ステップの進みは注文ごとに単一の条件付きUPDATEで直列化される。
type ApprovalUsecase struct {
	tx repo.TransactionManager
}

func NewApprovalUsecase(tx repo.TransactionManager) *ApprovalUsecase {
	return &ApprovalUsecase{tx: tx}
}

// 承認可否の判定結果。allowed=trueのときだけ埋まる。
type ApproverInfo struct {
	EmployeeID int64              `json:"employee_id"`
	Role       model.ApprovalRole `json:"role"`
	Step       int                `json:"step"`
}

type ApprovalResultOutput struct {
	OrderID     int64  `json:"order_id"`
	CurrentStep int    `json:"current_step"`
	Status      string `json:"status"`
	Completed   bool   `json:"completed"`
}

// 承認ゲート本体。CanApproveとApprove/Declineの両方がここを通る。
// 条件: 割り当て済み ∧ 注文がACTIVE ∧ ロールのステップ == current_step。
func approvalGate(ctx context.Context, r repo.TxRepos, order model.Order, employeeID int64) (bool, *ApproverInfo, error) {
	if order.Status != model.OrderStatusActive {
		return false, nil, nil
	}

	assigned, err := r.Approvers().Exists(ctx, order.ID, employeeID)
	if err != nil {
		return false, nil, err
	}
	if !assigned {
		return false, nil, nil
	}

	emp, err := r.Employees().FindByID(ctx, employeeID)
	if err == repo.ErrNotFound {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}

	// 割り当て後にロールを失った社員もここで弾かれる
	if !emp.HasApprovalRole() {
		return false, nil, nil
	}
	if emp.Role.StepIndex() != order.CurrentStep {
		return false, nil, nil
	}

	return true, &ApproverInfo{
		EmployeeID: employeeID,
		Role:       *emp.Role,
		Step:       order.CurrentStep,
	}, nil
}

// 承認可否だけを判定する（読み取りのみ、副作用なし）。
// 注文が存在しない場合はエラーではなくfalseを返す。
func (u *ApprovalUsecase) CanApprove(ctx context.Context, orderID int64, employeeID int64) (bool, *ApproverInfo, error) {
	var allowed bool
	var info *ApproverInfo

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		allowed, info, err = approvalGate(ctx, r, order, employeeID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		return false, nil, err
	}
	return allowed, info, nil
}

// 承認してステップを1つ進める。ゲート判定と更新は同一トランザクションで、
// 更新は期待ステップ付きの条件付きUPDATE。二重承認はここで潰れる。
func (u *ApprovalUsecase) Approve(ctx context.Context, employeeID int64, orderID int64) (ApprovalResultOutput, error) {
	if employeeID <= 0 {
		return ApprovalResultOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return ApprovalResultOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out ApprovalResultOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 完了済み注文への承認は何もしない（リトライしても同じ結果）
		if order.Status == model.OrderStatusCompleted {
			out = toApprovalResult(order.ID, order.CurrentStep, order.Status)
			return nil
		}

		allowed, _, err := approvalGate(ctx, r, order, employeeID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !allowed {
			return NewHTTPError(http.StatusForbidden, "not authorized to approve this order at the current step")
		}

		ok, err := r.Orders().AdvanceStep(ctx, orderID, order.CurrentStep)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			// 誰かが先に進めた。完了していたら冪等に成功扱い、
			// まだACTIVEならステップ不一致なので競合で返す。
			latest, err := r.Orders().FindByID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if latest.Status == model.OrderStatusCompleted {
				out = toApprovalResult(latest.ID, latest.CurrentStep, latest.Status)
				return nil
			}
			return NewHTTPError(http.StatusConflict, "order step changed, try again")
		}

		newStep := order.CurrentStep + 1
		status := model.OrderStatusActive
		if newStep >= model.OrderStepCount {
			if _, err := r.Orders().Complete(ctx, orderID); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			status = model.OrderStatusCompleted
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorEmployeeID: employeeID,
			Action:          model.AuditActionApproveOrderStep,
			OrderID:         orderID,
			BeforeJSON:      stepJSON(order.CurrentStep, model.OrderStatusActive),
			AfterJSON:       stepJSON(newStep, status),
			CreatedAt:       time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toApprovalResult(orderID, newStep, status)
		return nil
	})

	if err != nil {
		return ApprovalResultOutput{}, err
	}
	return out, nil
}

// 却下。注文は一切変更せず、操作ログだけ残す。
// 再割り当てやエスカレーションの仕組みは存在しない。
func (u *ApprovalUsecase) Decline(ctx context.Context, employeeID int64, orderID int64) (ApprovalResultOutput, error) {
	if employeeID <= 0 {
		return ApprovalResultOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return ApprovalResultOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out ApprovalResultOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		allowed, _, err := approvalGate(ctx, r, order, employeeID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !allowed {
			return NewHTTPError(http.StatusForbidden, "not authorized to approve this order at the current step")
		}

		if err := r.AuditLogs().Create(ctx, model.AuditLog{
			ActorEmployeeID: employeeID,
			Action:          model.AuditActionDeclineOrderStep,
			OrderID:         orderID,
			BeforeJSON:      stepJSON(order.CurrentStep, order.Status),
			AfterJSON:       stepJSON(order.CurrentStep, order.Status),
			CreatedAt:       time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toApprovalResult(order.ID, order.CurrentStep, order.Status)
		return nil
	})

	if err != nil {
		return ApprovalResultOutput{}, err
	}
	return out, nil
}

type PendingApprovalOutput struct {
	OrderID         int64     `json:"order_id"`
	PartnerName     string    `json:"partner_name"`
	OrdererFullName string    `json:"orderer_full_name"`
	TotalPrice      int64     `json:"total_price"`
	Role            string    `json:"role"`
	CreatedAt       time.Time `json:"created_at"`
}

// 今この社員の番になっている注文の一覧。
func (u *ApprovalUsecase) PendingApprovals(ctx context.Context, employeeID int64) ([]PendingApprovalOutput, error) {
	if employeeID <= 0 {
		return []PendingApprovalOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []PendingApprovalOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		emp, err := r.Employees().FindByID(ctx, employeeID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = []PendingApprovalOutput{}

		// ロール無しの社員は承認対象を持たない
		if !emp.HasApprovalRole() {
			return nil
		}

		orderIDs, err := r.Approvers().ListOrderIDsByEmployee(ctx, employeeID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, id := range orderIDs {
			order, err := r.Orders().FindByID(ctx, id)
			if err == repo.ErrNotFound {
				continue
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if order.Status != model.OrderStatusActive {
				continue
			}
			if emp.Role.StepIndex() != order.CurrentStep {
				continue
			}

			partnerName := ""
			if p, err := r.Partners().FindByID(ctx, order.PartnerID); err == nil {
				partnerName = p.PartnerName
			}

			outs = append(outs, PendingApprovalOutput{
				OrderID:         order.ID,
				PartnerName:     partnerName,
				OrdererFullName: order.OrdererFullName(),
				TotalPrice:      order.TotalPrice,
				Role:            string(*emp.Role),
				CreatedAt:       order.CreatedAt,
			})
		}
		return nil
	})

	if err != nil {
		return []PendingApprovalOutput{}, err
	}
	return outs, nil
}

func toApprovalResult(orderID int64, step int, status model.OrderStatus) ApprovalResultOutput {
	return ApprovalResultOutput{
		OrderID:     orderID,
		CurrentStep: step,
		Status:      string(status),
		Completed:   status == model.OrderStatusCompleted,
	}
}

func stepJSON(step int, status model.OrderStatus) string {
	return fmt.Sprintf(`{"current_step":%d,"status":"%s"}`, step, status)
}
