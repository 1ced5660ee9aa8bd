package usecase

import (
	"context"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type BannerUsecase struct {
	bannerRepo repo.BannerRepository
}

// DI
func NewBannerUsecase(bannerRepo repo.BannerRepository) *BannerUsecase {
	return &BannerUsecase{bannerRepo: bannerRepo}
}

// 公開側はactive=trueだけを返す
func (u *BannerUsecase) ListActiveBanners(ctx context.Context) ([]model.Banner, error) {
	banners, err := u.bannerRepo.ListActive(ctx)
	if err != nil {
		return []model.Banner{}, newInternalError()
	}
	return banners, nil
}

type AdminBannerInput struct {
	Image  string
	Link   string
	Active bool
}

func (u *BannerUsecase) AdminCreateBanner(ctx context.Context, in AdminBannerInput) (model.Banner, error) {
	if strings.TrimSpace(in.Image) == "" {
		return model.Banner{}, newValidationError("Image is required")
	}

	b, err := u.bannerRepo.Create(ctx, model.Banner{
		Image:  in.Image,
		Link:   in.Link,
		Active: in.Active,
	})
	if err != nil {
		return model.Banner{}, newInternalError()
	}
	return b, nil
}
