package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartFixture(t *testing.T) (*CartUsecase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := NewCartUsecase(store.Carts(), store.CartItems(), store.Products(), zap.NewNop())
	return uc, store
}

func mustCreateProduct(t *testing.T, store *memory.Store, title string, price float64) model.Product {
	t.Helper()
	p, err := store.Products().Create(context.Background(), model.Product{
		Title:    title,
		Price:    price,
		Stock:    10,
		Category: "tools",
	})
	require.NoError(t, err)
	return p
}

func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	he, ok := AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %v", err)
	assert.Equal(t, status, he.Status)
}

// GetCartはカートが無ければ作って空で返す
func TestCartUsecase_GetCart_AutoCreates(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCartFixture(t)

	out, err := uc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Cart.UserID)
	assert.Empty(t, out.Items)

	//2回目も同じカート
	out2, err := uc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, out.Cart.ID, out2.Cart.ID)
}

// 同一商品の追加は数量加算で1行にマージされる
func TestCartUsecase_AddItem_MergesQuantity(t *testing.T) {
	ctx := context.Background()
	uc, store := newCartFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	first, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), first.Quantity)

	second, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(5), second.Quantity)

	out, err := uc.GetCart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].Quantity)
	assert.Equal(t, "hammer", out.Items[0].Product.Title)
}

func TestCartUsecase_AddItem_Validation(t *testing.T) {
	ctx := context.Background()
	uc, store := newCartFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	//数量0は拒否
	_, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 0})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	//存在しない商品も拒否
	_, err = uc.AddItem(ctx, 1, AddCartItemInput{ProductID: 999, Quantity: 1})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCartUsecase_UpdateItem(t *testing.T) {
	ctx := context.Background()
	uc, store := newCartFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	item, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	//数量0は拒否
	_, err = uc.UpdateItem(ctx, 1, item.ID, UpdateCartItemInput{Quantity: 0})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	//数量3は通る
	updated, err := uc.UpdateItem(ctx, 1, item.ID, UpdateCartItemInput{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Quantity)

	//他人の明細は404扱い
	_, err = uc.UpdateItem(ctx, 2, item.ID, UpdateCartItemInput{Quantity: 2})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

// 削除は二重に来ても2回目が404を返すだけ
func TestCartUsecase_RemoveItem_Idempotent(t *testing.T) {
	ctx := context.Background()
	uc, store := newCartFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	item, err := uc.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, uc.RemoveItem(ctx, 1, item.ID))

	err = uc.RemoveItem(ctx, 1, item.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)

	out, err := uc.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}
