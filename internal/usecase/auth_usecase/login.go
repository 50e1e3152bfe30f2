package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/repository"
)

// ログイン主体の種別。
const (
	UserTypeEmployee = "employee"
	UserTypePartner  = "partner"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
	UserType string
}

// handlerがJSONにして返す
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	UserType    string `json:"user_type"`
	SubjectID   int64  `json:"subject_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role,omitempty"`
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(subjectID int64, userType string, role string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type Clock interface {
	Now() time.Time
}

type LoginUsecase struct {
	employees repository.EmployeeRepository
	partners  repository.PartnerRepository
	verifier  PasswordVerifier
	issuer    AccessTokenIssuer
	clock     Clock
}

func NewLoginUsecase(
	employees repository.EmployeeRepository,
	partners repository.PartnerRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		employees: employees,
		partners:  partners,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
	}
}

// ログイン処理。メールで探してパスワードを照合し、短命のJWTを返すだけ。
// リフレッシュトークンやセッションは持たない。
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return out, ErrInvalidCredentials
	}

	switch in.UserType {
	case UserTypeEmployee:
		emp, err := u.employees.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return out, ErrInvalidCredentials
			}
			return out, err
		}
		if !u.verifier.Verify(in.Password, emp.PasswordHash) {
			return out, ErrInvalidCredentials
		}

		role := ""
		if emp.HasApprovalRole() {
			role = string(*emp.Role)
		}

		now := u.clock.Now()
		token, expiresAt, err := u.issuer.Issue(emp.ID, UserTypeEmployee, role, now)
		if err != nil {
			return out, err
		}

		out = LoginOutput{
			AccessToken: token,
			ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
			UserType:    UserTypeEmployee,
			SubjectID:   emp.ID,
			DisplayName: emp.FullName(),
			Role:        role,
		}
		return out, nil

	case UserTypePartner:
		partner, err := u.partners.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return out, ErrInvalidCredentials
			}
			return out, err
		}
		if !u.verifier.Verify(in.Password, partner.PasswordHash) {
			return out, ErrInvalidCredentials
		}

		now := u.clock.Now()
		token, expiresAt, err := u.issuer.Issue(partner.ID, UserTypePartner, "", now)
		if err != nil {
			return out, err
		}

		out = LoginOutput{
			AccessToken: token,
			ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
			UserType:    UserTypePartner,
			SubjectID:   partner.ID,
			DisplayName: partner.PartnerName,
		}
		return out, nil

	default:
		return out, ErrInvalidCredentials
	}
}
