package repository

import (
	"context"

	"app/internal/domain/model"
)

type BannerRepository interface {
	//公開APIで使う。active=trueのみ
	ListActive(ctx context.Context) ([]model.Banner, error)

	Create(ctx context.Context, banner model.Banner) (model.Banner, error)
}
