package memory

import (
	"context"

	repo "app/internal/repository"
)

type txReposMemory struct {
	carts      repo.CartRepository
	cartItems  repo.CartItemRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	reviews    repo.ReviewRepository
}

func (r *txReposMemory) Carts() repo.CartRepository           { return r.carts }
func (r *txReposMemory) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *txReposMemory) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposMemory) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *txReposMemory) Products() repo.ProductRepository     { return r.products }
func (r *txReposMemory) Reviews() repo.ReviewRepository       { return r.reviews }

// TxManagerMemory はストア全体のロックで排他し、
// 失敗時はスナップショットへ巻き戻す
type TxManagerMemory struct {
	s *Store
}

func NewTxManagerMemory(s *Store) *TxManagerMemory {
	return &TxManagerMemory{s: s}
}

func (tm *TxManagerMemory) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	tm.s.mu.Lock()
	defer tm.s.mu.Unlock()

	//巻き戻し用スナップショット
	snapshot := tm.s.st.clone()

	//muは既に握っているので、tx内のrepoはロックしない
	r := &txReposMemory{
		carts:      &CartMemoryRepository{s: tm.s, lk: noLock{}},
		cartItems:  &CartItemMemoryRepository{s: tm.s, lk: noLock{}},
		orders:     &OrderMemoryRepository{s: tm.s, lk: noLock{}},
		orderItems: &OrderItemMemoryRepository{s: tm.s, lk: noLock{}},
		products:   &ProductMemoryRepository{s: tm.s, lk: noLock{}},
		reviews:    &ReviewMemoryRepository{s: tm.s, lk: noLock{}},
	}

	if err := fn(r); err != nil {
		tm.s.st = snapshot
		return err
	}
	return nil
}
