package memory

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type UserMemoryRepository struct {
	s  *Store
	lk locker
}

func (r *UserMemoryRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	st := r.s.st
	user.ID = nextID(&st.nextUserID)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	st.users[user.ID] = user
	return user, nil
}

func (r *UserMemoryRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	u, ok := r.s.st.users[userID]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return u, nil
}

func (r *UserMemoryRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	for _, u := range r.s.st.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (r *UserMemoryRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	r.lk.Lock()
	defer r.lk.Unlock()

	for _, u := range r.s.st.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}
