package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	//無ければ作成して返す。1ユーザー1カートを保証する
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)

	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
}
