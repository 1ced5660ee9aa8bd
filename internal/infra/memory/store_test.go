package memory

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IDは型ごとに1始まりで単調増加、削除しても再利用しない
func TestStore_IDNumbering(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	p1, err := store.Products().Create(ctx, model.Product{Title: "A", Price: 100, Category: "tools"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p1.ID)

	p2, err := store.Products().Create(ctx, model.Product{Title: "B", Price: 200, Category: "tools"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), p2.ID)

	//別タイプのカウンタは独立
	u1, err := store.Users().Create(ctx, model.User{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u1.ID)

	//削除してもIDは戻らない
	require.NoError(t, store.Products().Delete(ctx, p1.ID))

	p3, err := store.Products().Create(ctx, model.Product{Title: "C", Price: 300, Category: "tools"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), p3.ID)
}

// 1ユーザーにつきカートは1つ
func TestStore_CartPerUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	c1, err := store.Carts().GetOrCreateByUserID(ctx, 7)
	require.NoError(t, err)

	c2, err := store.Carts().GetOrCreateByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID)

	found, err := store.Carts().FindByUserID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, found.ID)

	//別ユーザーには別カート
	other, err := store.Carts().GetOrCreateByUserID(ctx, 8)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, other.ID)

	_, err = store.Carts().FindByUserID(ctx, 99)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// tx内でエラーを返したら書き込みが全部巻き戻る
func TestTxManagerMemory_Rollback(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTxManagerMemory(store)

	p, err := store.Products().Create(ctx, model.Product{Title: "keep", Price: 100, Category: "tools"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().Create(ctx, model.Order{
			UserID: 1, AddressID: 1, TotalAmount: 100,
			Status: model.OrderStatusPending, PaymentMethod: "COD", IdempotencyKey: "k1",
		}); err != nil {
			return err
		}
		if err := r.Products().Delete(ctx, p.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	//注文は残っていない
	_, err = store.Orders().FindByID(ctx, 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	//削除した商品も戻っている
	got, err := store.Products().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Title)
}

// 成功したtxの書き込みはコミット後も見える
func TestTxManagerMemory_Commit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tx := NewTxManagerMemory(store)

	err := tx.WithinTx(ctx, func(r repo.TxRepos) error {
		_, err := r.Orders().Create(ctx, model.Order{
			UserID: 1, AddressID: 1, TotalAmount: 50,
			Status: model.OrderStatusPending, PaymentMethod: "COD", IdempotencyKey: "k2",
		})
		return err
	})
	require.NoError(t, err)

	got, err := store.Orders().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(50), got.TotalAmount)
}
