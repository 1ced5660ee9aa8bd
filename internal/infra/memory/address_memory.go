package memory

import (
	"context"
	"sort"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type AddressMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *AddressMemoryRepository) Create(ctx context.Context, address model.Address) (model.Address, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	address.ID = nextID(&st.nextAddressID)
	st.addresses[address.ID] = address
	return address, nil
}

func (r *AddressMemoryRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	out := []model.Address{}
	for _, a := range r.s.st.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AddressMemoryRepository) FindByID(ctx context.Context, addressID int64) (model.Address, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	a, ok := r.s.st.addresses[addressID]
	if !ok {
		return model.Address{}, repo.ErrNotFound
	}
	return a, nil
}
