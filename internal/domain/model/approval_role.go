package model

// 承認ロール。各ロールは固定で1つの承認ステップに対応する。
type ApprovalRole string

const (
	RoleCommercial ApprovalRole = "COMMERCIAL" // step 0
	RoleTechnical  ApprovalRole = "TECHNICAL"  // step 1
	RoleParaf      ApprovalRole = "PARAF"      // step 2
)

// 承認ステップ数。current_stepがこの値に達したら注文は完了。
const OrderStepCount = 3

// ステップ順のロール一覧。
var ApprovalRolesInOrder = []ApprovalRole{
	RoleCommercial,
	RoleTechnical,
	RoleParaf,
}

// ロールが担当するステップ番号を返す。未知のロールは-1。
func (r ApprovalRole) StepIndex() int {
	switch r {
	case RoleCommercial:
		return 0
	case RoleTechnical:
		return 1
	case RoleParaf:
		return 2
	default:
		return -1
	}
}

func (r ApprovalRole) Valid() bool {
	return r.StepIndex() >= 0
}

// ステップ番号から担当ロールを引く。
func RoleForStep(step int) (ApprovalRole, bool) {
	if step < 0 || step >= len(ApprovalRolesInOrder) {
		return "", false
	}
	return ApprovalRolesInOrder[step], true
}

// 画面表示用のステップ名。
func StepText(step int) string {
	switch step {
	case 0:
		return "Commercial Approval"
	case 1:
		return "Technical Approval"
	case 2:
		return "Paraf Approval"
	case OrderStepCount:
		return "All Approvals Complete"
	default:
		return "Unknown"
	}
}
