package auth

import (
	"context"
	"testing"
	"time"

	"app/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// テスト用の決定的なhasher
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(plain string, hashed string) bool {
	return hashed == "hashed:"+plain
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int64, isAdmin bool, now time.Time) (string, time.Time, error) {
	return "token", now.Add(time.Hour), nil
}

func validInput() RegisterUserInput {
	return RegisterUserInput{
		Username: "alice",
		Password: "correct horse battery",
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "090-0000-0000",
	}
}

func newRegisterFixture(t *testing.T) (*RegisterUserUsecase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	clock := fixedClock{now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}
	return NewRegisterUserUsecase(store.Users(), fakeHasher{}, clock), store
}

func TestRegisterUser_Success(t *testing.T) {
	ctx := context.Background()
	uc, store := newRegisterFixture(t)

	out, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "alice", out.User.Username)
	assert.False(t, out.User.IsAdmin)

	//レスポンスにパスワードは出さない
	assert.Empty(t, out.User.Password)

	//保存されているのはハッシュ
	stored, err := store.Users().FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hashed:correct horse battery", stored.Password)
}

func TestRegisterUser_Validation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newRegisterFixture(t)

	tests := []struct {
		name    string
		mutate  func(*RegisterUserInput)
		wantErr error
	}{
		{"short username", func(in *RegisterUserInput) { in.Username = "ab" }, ErrInvalidUsername},
		{"bad email", func(in *RegisterUserInput) { in.Email = "not-an-email" }, ErrInvalidEmailFormat},
		{"short password", func(in *RegisterUserInput) { in.Password = "1234567" }, ErrPasswordTooShort},
		{"weak password", func(in *RegisterUserInput) { in.Password = "password123" }, ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Execute(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterUser_Duplicates(t *testing.T) {
	ctx := context.Background()
	uc, _ := newRegisterFixture(t)

	_, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)

	//同じusername
	in := validInput()
	in.Email = "other@example.com"
	_, err = uc.Execute(ctx, in)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	//同じemail
	in = validInput()
	in.Username = "bob"
	_, err = uc.Execute(ctx, in)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	clock := fixedClock{now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	registerUC := NewRegisterUserUsecase(store.Users(), fakeHasher{}, clock)
	loginUC := NewLoginUsecase(store.Users(), fakeVerifier{}, fakeIssuer{}, clock)

	_, err := registerUC.Execute(ctx, validInput())
	require.NoError(t, err)

	//成功
	out, err := loginUC.Execute(ctx, LoginInput{Username: "alice", Password: "correct horse battery"})
	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, clock.now.Add(time.Hour), out.ExpiresAt)
	assert.Empty(t, out.User.Password)

	//パスワード違い
	_, err = loginUC.Execute(ctx, LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	//存在しないユーザーも同じエラー
	_, err = loginUC.Execute(ctx, LoginInput{Username: "mallory", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// bcryptの実物同士もペアで動くことを一応確認
func TestBcryptHasherVerifier(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)
	verifier := NewBcryptPasswordVerifier()

	hashed, err := hasher.Hash("some password")
	require.NoError(t, err)
	assert.NotEqual(t, "some password", hashed)

	assert.True(t, verifier.Verify("some password", hashed))
	assert.False(t, verifier.Verify("other password", hashed))
}
