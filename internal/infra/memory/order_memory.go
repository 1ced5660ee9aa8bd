package memory

import (
	"context"
	"sort"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *OrderMemoryRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	o, ok := r.s.st.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	return o, nil
}

func (r *OrderMemoryRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := []model.Order{}
	for _, o := range r.s.st.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	//新しい注文が先
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *OrderMemoryRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	order.ID = nextID(&st.nextOrderID)
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	st.orders[order.ID] = order
	return order, nil
}

func (r *OrderMemoryRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	o, ok := st.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	st.orders[orderID] = o
	return nil
}

func (r *OrderMemoryRepository) FindByIdempotencyKey(ctx context.Context, userID int64, key string) (model.Order, bool, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	for _, o := range r.s.st.orders {
		if o.UserID == userID && o.IdempotencyKey == key {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

func (r *OrderMemoryRepository) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}

	r.lk.Lock()
	defer r.lk.Unlock()

	matched := []model.Order{}
	for _, o := range r.s.st.orders {
		if f.Status != "" && string(o.Status) != f.Status {
			continue
		}
		if f.UserID != nil && o.UserID != *f.UserID {
			continue
		}
		if f.From != nil && o.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && o.CreatedAt.After(*f.To) {
			continue
		}
		matched = append(matched, o)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))

	offset := (f.Page - 1) * f.Limit
	if offset >= len(matched) {
		return []model.Order{}, total, nil
	}
	end := offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}
