package memory

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CartMemoryRepository struct {
	s  *Store
	lk locker
}

// cartByUserインデックスを先に引くので線形走査しない
func (r *CartMemoryRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	if cartID, ok := st.cartByUser[userID]; ok {
		return st.carts[cartID], nil
	}

	cart := model.Cart{
		ID:        nextID(&st.nextCartID),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	st.carts[cart.ID] = cart
	st.cartByUser[userID] = cart.ID
	return cart, nil
}

func (r *CartMemoryRepository) FindByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	cartID, ok := st.cartByUser[userID]
	if !ok {
		return model.Cart{}, repo.ErrNotFound
	}
	return st.carts[cartID], nil
}
