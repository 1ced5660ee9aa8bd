package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ユーザーの保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（IDとcreated_atが埋まったものを返す）
	Create(ctx context.Context, user model.User) (model.User, error)

	FindByID(ctx context.Context, userID int64) (model.User, error)

	//ログインはusername
	FindByUsername(ctx context.Context, username string) (model.User, error)

	//登録時の重複チェックに使う
	FindByEmail(ctx context.Context, email string) (model.User, error)
}
