package usecase

import (
	"context"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 乱数の注入口。本番は *math/rand.Rand をそのまま渡す。
type RandomSource interface {
	Intn(n int) int
}

// 注文作成時の承認者割り当て。
// ロールごとに候補からランダムに1人選ぶ。割り当ては作成時の1回きりで、
// 選んだ社員が後でロールを失っても再割り当てはしない。
type ApproverAssigner struct {
	rng RandomSource
}

func NewApproverAssigner(rng RandomSource) *ApproverAssigner {
	return &ApproverAssigner{rng: rng}
}

// 3つのロールそれぞれに1人ずつ割り当てる。
// 候補ゼロのロールがあればエラーで、呼び出し元のトランザクションごと巻き戻す。
func (a *ApproverAssigner) Assign(ctx context.Context, r repo.TxRepos, orderID int64) error {
	for _, role := range model.ApprovalRolesInOrder {
		candidates, err := r.Employees().ListByRole(ctx, role)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(candidates) == 0 {
			return NewHTTPError(http.StatusConflict, fmt.Sprintf("no eligible approver for role %s", role))
		}

		picked := candidates[a.rng.Intn(len(candidates))]

		if err := r.Approvers().Create(ctx, model.OrderApprover{
			OrderID:    orderID,
			EmployeeID: picked.ID,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	return nil
}
