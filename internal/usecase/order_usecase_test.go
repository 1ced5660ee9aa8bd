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

type orderFixture struct {
	store   *memory.Store
	cartUC  *CartUsecase
	orderUC *OrderUsecase
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	store := memory.NewStore()
	log := zap.NewNop()
	return orderFixture{
		store:   store,
		cartUC:  NewCartUsecase(store.Carts(), store.CartItems(), store.Products(), log),
		orderUC: NewOrderUsecase(memory.NewTxManagerMemory(store), store.Addresses(), log),
	}
}

func (f orderFixture) mustCreateAddress(t *testing.T, userID int64) model.Address {
	t.Helper()
	a, err := f.store.Addresses().Create(context.Background(), model.Address{
		UserID:      userID,
		Name:        "Taro",
		Phone:       "090-0000-0000",
		AddressLine: "1-2-3",
		City:        "Shibuya",
		State:       "Tokyo",
		Pincode:     "150-0001",
		AddressType: "HOME",
	})
	require.NoError(t, err)
	return a
}

// カート（100円×2 + 50円×1）から注文すると合計250、
// 明細2行に単価スナップショットが残り、カートは空になる
func TestOrderUsecase_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	addr := f.mustCreateAddress(t, 1)

	pa := mustCreateProduct(t, f.store, "A", 100)
	pb := mustCreateProduct(t, f.store, "B", 50)

	_, err := f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: pa.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: pb.ID, Quantity: 1})
	require.NoError(t, err)

	out, err := f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID:      addr.ID,
		PaymentMethod:  "COD",
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(250), out.Order.TotalAmount)
	assert.Equal(t, model.OrderStatusPending, out.Order.Status)
	require.Len(t, out.Items, 2)
	assert.Equal(t, float64(100), out.Items[0].Price)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.Equal(t, float64(50), out.Items[1].Price)
	assert.Equal(t, int64(1), out.Items[1].Quantity)

	//カートは空になっている
	cart, err := f.cartUC.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

// セール中はdiscountPriceが合計とスナップショットに使われる
func TestOrderUsecase_PlaceOrder_UsesEffectivePrice(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	addr := f.mustCreateAddress(t, 1)

	sale := 80.0
	p, err := f.store.Products().Create(ctx, model.Product{
		Title:         "sale item",
		Price:         100,
		DiscountPrice: &sale,
		Category:      "tools",
	})
	require.NoError(t, err)

	_, err = f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)

	out, err := f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID:      addr.ID,
		PaymentMethod:  "CARD",
		IdempotencyKey: "key-sale",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(160), out.Order.TotalAmount)
	require.Len(t, out.Items, 1)
	assert.Equal(t, float64(80), out.Items[0].Price)
}

// 明細単価は注文時点のスナップショット。後から商品価格を
// 変えても過去の注文は変わらない
func TestOrderUsecase_PriceSnapshotImmutable(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	addr := f.mustCreateAddress(t, 1)
	p := mustCreateProduct(t, f.store, "A", 100)

	_, err := f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	placed, err := f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID:      addr.ID,
		PaymentMethod:  "COD",
		IdempotencyKey: "key-snap",
	})
	require.NoError(t, err)

	//値上げ
	p.Price = 999
	require.NoError(t, f.store.Products().Update(ctx, p))

	detail, err := f.orderUC.GetMyOrderDetail(ctx, 1, placed.Order.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, float64(100), detail.Items[0].Price)
	assert.Equal(t, float64(100), detail.Order.TotalAmount)

	//joinされた現在の商品情報は新価格
	assert.Equal(t, float64(999), detail.Items[0].Product.Price)
}

// 空カートでは注文できず、注文も作られない
func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	addr := f.mustCreateAddress(t, 1)

	//カート自体が無い
	_, err := f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID:      addr.ID,
		PaymentMethod:  "COD",
		IdempotencyKey: "key-empty",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	he, _ := AsHTTPError(err)
	assert.Equal(t, "Cart is empty", he.Message)

	//カートはあるが明細ゼロ
	_, err = f.cartUC.GetCart(ctx, 1)
	require.NoError(t, err)

	_, err = f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID:      addr.ID,
		PaymentMethod:  "COD",
		IdempotencyKey: "key-empty-2",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	orders, err := f.orderUC.ListMyOrders(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

// 同じIdempotency-Keyの再送は同じ注文を返し、二重注文しない
func TestOrderUsecase_PlaceOrder_IdempotentReplay(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	addr := f.mustCreateAddress(t, 1)
	p := mustCreateProduct(t, f.store, "A", 100)

	_, err := f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	in := PlaceOrderInput{AddressID: addr.ID, PaymentMethod: "COD", IdempotencyKey: "same-key"}

	first, err := f.orderUC.PlaceOrder(ctx, 1, in)
	require.NoError(t, err)

	second, err := f.orderUC.PlaceOrder(ctx, 1, in)
	require.NoError(t, err)
	assert.Equal(t, first.Order.ID, second.Order.ID)
	assert.Equal(t, first.Order.TotalAmount, second.Order.TotalAmount)

	orders, err := f.orderUC.ListMyOrders(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderUsecase_PlaceOrder_AddressChecks(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	p := mustCreateProduct(t, f.store, "A", 100)

	_, err := f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	//存在しない住所は404
	_, err = f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID: 999, PaymentMethod: "COD", IdempotencyKey: "k",
	})
	assertHTTPStatus(t, err, http.StatusNotFound)

	//他人の住所は403
	other := f.mustCreateAddress(t, 2)
	_, err = f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID: other.ID, PaymentMethod: "COD", IdempotencyKey: "k",
	})
	assertHTTPStatus(t, err, http.StatusForbidden)

	//支払い方法は必須
	mine := f.mustCreateAddress(t, 1)
	_, err = f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID: mine.ID, PaymentMethod: " ", IdempotencyKey: "k",
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

// 他人の注文詳細は404ではなく403
func TestOrderUsecase_GetMyOrderDetail_Foreign(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	addr := f.mustCreateAddress(t, 1)
	p := mustCreateProduct(t, f.store, "A", 100)

	_, err := f.cartUC.AddItem(ctx, 1, AddCartItemInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	placed, err := f.orderUC.PlaceOrder(ctx, 1, PlaceOrderInput{
		AddressID: addr.ID, PaymentMethod: "COD", IdempotencyKey: "k",
	})
	require.NoError(t, err)

	_, err = f.orderUC.GetMyOrderDetail(ctx, 2, placed.Order.ID)
	assertHTTPStatus(t, err, http.StatusForbidden)

	_, err = f.orderUC.GetMyOrderDetail(ctx, 1, 999)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
