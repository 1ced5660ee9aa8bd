package memory

import (
	"context"
	"sort"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *ProductMemoryRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := make([]model.Product, 0, len(r.s.st.products))
	for _, p := range r.s.st.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *ProductMemoryRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return r.List(ctx, repo.ProductListQuery{Category: category})
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	p, ok := r.s.st.products[productID]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	p.ID = nextID(&st.nextProductID)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	st.products[p.ID] = p
	return p, nil
}

func (r *ProductMemoryRepository) Update(ctx context.Context, p model.Product) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	existing, ok := st.products[p.ID]
	if !ok {
		return repo.ErrNotFound
	}

	//導出フィールドは書き換えない
	p.Rating = existing.Rating
	p.ReviewCount = existing.ReviewCount
	p.CreatedAt = existing.CreatedAt
	st.products[p.ID] = p
	return nil
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, productID int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	if _, ok := st.products[productID]; !ok {
		return repo.ErrNotFound
	}
	delete(st.products, productID)
	return nil
}

func (r *ProductMemoryRepository) UpdateRating(ctx context.Context, productID int64, rating float64, reviewCount int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	p, ok := st.products[productID]
	if !ok {
		return repo.ErrNotFound
	}
	p.Rating = rating
	p.ReviewCount = reviewCount
	st.products[productID] = p
	return nil
}
