package memory

import (
	"context"
	"sort"

	"app/internal/domain/model"
)

type BannerMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *BannerMemoryRepository) ListActive(ctx context.Context) ([]model.Banner, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := []model.Banner{}
	for _, b := range r.s.st.banners {
		if b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BannerMemoryRepository) Create(ctx context.Context, banner model.Banner) (model.Banner, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	banner.ID = nextID(&st.nextBannerID)
	st.banners[banner.ID] = banner
	return banner, nil
}
