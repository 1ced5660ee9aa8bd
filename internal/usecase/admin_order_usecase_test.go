package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/infra/memory"
	"app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminOrderFixture(t *testing.T) (*AdminOrderUsecase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewAdminOrderUsecase(memory.NewTxManagerMemory(store)), store
}

func mustCreateOrder(t *testing.T, store *memory.Store, status model.OrderStatus, key string) model.Order {
	t.Helper()
	o, err := store.Orders().Create(context.Background(), model.Order{
		UserID:         1,
		AddressID:      1,
		TotalAmount:    100,
		Status:         status,
		PaymentMethod:  "COD",
		IdempotencyKey: key,
	})
	require.NoError(t, err)
	return o
}

func TestAdminOrderUsecase_UpdateStatus_Transitions(t *testing.T) {
	ctx := context.Background()
	uc, store := newAdminOrderFixture(t)
	o := mustCreateOrder(t, store, model.OrderStatusPending, "k1")

	//PENDING → PROCESSING → SHIPPED → DELIVERED
	for _, next := range []string{"PROCESSING", "SHIPPED", "DELIVERED"} {
		got, err := uc.UpdateStatus(ctx, o.ID, AdminUpdateOrderStatusInput{Status: next})
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatus(next), got.Status)
	}

	//DELIVEREDは終端。そこからは動かせない
	_, err := uc.UpdateStatus(ctx, o.ID, AdminUpdateOrderStatusInput{Status: "CANCELLED"})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestAdminOrderUsecase_UpdateStatus_Guards(t *testing.T) {
	ctx := context.Background()
	uc, store := newAdminOrderFixture(t)
	o := mustCreateOrder(t, store, model.OrderStatusPending, "k1")

	//後戻りは不可
	processing, err := uc.UpdateStatus(ctx, o.ID, AdminUpdateOrderStatusInput{Status: "PROCESSING"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, processing.ID, AdminUpdateOrderStatusInput{Status: "PENDING"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	//未知のステータスは拒否
	_, err = uc.UpdateStatus(ctx, o.ID, AdminUpdateOrderStatusInput{Status: "UNKNOWN"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	//存在しない注文は404
	_, err = uc.UpdateStatus(ctx, 999, AdminUpdateOrderStatusInput{Status: "PROCESSING"})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

// 同じステータスへの更新は何もしないで200相当
func TestAdminOrderUsecase_UpdateStatus_NoOp(t *testing.T) {
	ctx := context.Background()
	uc, store := newAdminOrderFixture(t)
	o := mustCreateOrder(t, store, model.OrderStatusPending, "k1")

	got, err := uc.UpdateStatus(ctx, o.ID, AdminUpdateOrderStatusInput{Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestAdminOrderUsecase_List(t *testing.T) {
	ctx := context.Background()
	uc, store := newAdminOrderFixture(t)

	mustCreateOrder(t, store, model.OrderStatusPending, "k1")
	mustCreateOrder(t, store, model.OrderStatusShipped, "k2")
	mustCreateOrder(t, store, model.OrderStatusPending, "k3")

	out, err := uc.List(ctx, repository.AdminOrderListFilter{Page: 1, Limit: 10, Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Len(t, out.Orders, 2)

	//ページング
	paged, err := uc.List(ctx, repository.AdminOrderListFilter{Page: 2, Limit: 1, Status: "PENDING"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), paged.Total)
	assert.Len(t, paged.Orders, 1)
}
