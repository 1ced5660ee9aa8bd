package memory

import (
	"context"
	"sort"
	"time"

	"app/internal/domain/model"
)

type ReviewMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *ReviewMemoryRepository) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := []model.Review{}
	for _, rv := range r.s.st.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ReviewMemoryRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	review.ID = nextID(&st.nextReviewID)
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	st.reviews[review.ID] = review
	return review, nil
}
