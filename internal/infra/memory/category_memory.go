package memory

import (
	"context"
	"sort"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CategoryMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *CategoryMemoryRepository) List(ctx context.Context) ([]model.Category, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := make([]model.Category, 0, len(r.s.st.categories))
	for _, c := range r.s.st.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryMemoryRepository) FindByID(ctx context.Context, categoryID int64) (model.Category, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	c, ok := r.s.st.categories[categoryID]
	if !ok {
		return model.Category{}, repo.ErrNotFound
	}
	return c, nil
}

func (r *CategoryMemoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	category.ID = nextID(&st.nextCategoryID)
	st.categories[category.ID] = category
	return category, nil
}
