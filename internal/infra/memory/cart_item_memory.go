package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CartItemMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *CartItemMemoryRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := []model.CartItem{}
	for _, it := range r.s.st.cartItems {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CartItemMemoryRepository) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	it, ok := r.s.st.cartItems[cartItemID]
	if !ok {
		return model.CartItem{}, repo.ErrNotFound
	}
	return it, nil
}

// 同一商品は数量加算で1行にマージ
func (r *CartItemMemoryRepository) UpsertByCartAndProduct(ctx context.Context, cartID int64, productID int64, addQty int64) (model.CartItem, error) {
	if addQty <= 0 {
		return model.CartItem{}, errors.New("invalid quantity")
	}

	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	for id, it := range st.cartItems {
		if it.CartID == cartID && it.ProductID == productID {
			it.Quantity += addQty
			st.cartItems[id] = it
			return it, nil
		}
	}

	item := model.CartItem{
		ID:        nextID(&st.nextCartItemID),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  addQty,
		CreatedAt: time.Now(),
	}
	st.cartItems[item.ID] = item
	return item, nil
}

func (r *CartItemMemoryRepository) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	it, ok := st.cartItems[cartItemID]
	if !ok {
		return repo.ErrNotFound
	}
	it.Quantity = qty
	st.cartItems[cartItemID] = it
	return nil
}

func (r *CartItemMemoryRepository) DeleteByID(ctx context.Context, cartItemID int64) error {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	if _, ok := st.cartItems[cartItemID]; !ok {
		return repo.ErrNotFound
	}
	delete(st.cartItems, cartItemID)
	return nil
}

func (r *CartItemMemoryRepository) IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	it, ok := st.cartItems[cartItemID]
	if !ok {
		return false, nil
	}
	cart, ok := st.carts[it.CartID]
	if !ok {
		return false, nil
	}
	return cart.UserID == userID, nil
}
