package memory

import (
	"context"
	"sort"

	"app/internal/domain/model"
)

type OrderItemMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *OrderItemMemoryRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		it.ID = nextID(&st.nextOrderItemID)
		it.OrderID = orderID
		st.orderItems[it.ID] = it
		out = append(out, it)
	}
	return out, nil
}

func (r *OrderItemMemoryRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := []model.OrderItem{}
	for _, it := range r.s.st.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
