package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	// usernameまたはpasswordの不一致。
	// どちらが違ったかは区別せず同じエラーを返す
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// 平文とハッシュの照合
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// アクセストークンの発行
type TokenIssuer interface {
	Issue(userID int64, isAdmin bool, now time.Time) (token string, expiresAt time.Time, err error)
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	User        model.User
	AccessToken string
	ExpiresAt   time.Time
}

// LoginUsecaseはログインの処理。
type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン実行
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return out, ErrInvalidCredentials
	}

	user, err := u.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	if !u.verifier.Verify(in.Password, user.Password) {
		return out, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.IsAdmin, u.clock.Now())
	if err != nil {
		return out, err
	}

	out.User = user.Sanitized()
	out.AccessToken = token
	out.ExpiresAt = expiresAt
	return out, nil
}
