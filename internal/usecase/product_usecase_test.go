package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*ProductUsecase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewProductUsecase(store.Products()), store
}

func TestProductUsecase_List(t *testing.T) {
	ctx := context.Background()
	uc, store := newProductFixture(t)

	mustCreateProduct(t, store, "hammer", 100)
	mustCreateProduct(t, store, "saw", 150)
	p3, err := store.Products().Create(ctx, model.Product{Title: "mug", Price: 20, Category: "kitchen"})
	require.NoError(t, err)

	//全件
	all, err := uc.ListProducts(ctx, ListProductsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// limit
	limited, err := uc.ListProducts(ctx, ListProductsInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	//カテゴリ絞り込み
	kitchen, err := uc.ListProducts(ctx, ListProductsInput{Category: "kitchen"})
	require.NoError(t, err)
	require.Len(t, kitchen, 1)
	assert.Equal(t, p3.ID, kitchen[0].ID)

	byPath, err := uc.ListProductsByCategory(ctx, "kitchen")
	require.NoError(t, err)
	assert.Equal(t, kitchen, byPath)
}

func TestProductUsecase_GetProduct(t *testing.T) {
	ctx := context.Background()
	uc, store := newProductFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	got, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "hammer", got.Title)

	_, err = uc.GetProduct(ctx, 999)
	assertHTTPStatus(t, err, http.StatusNotFound)
	he, _ := AsHTTPError(err)
	assert.Equal(t, "Product not found", he.Message)
}

func TestProductUsecase_AdminCreate_Validation(t *testing.T) {
	ctx := context.Background()
	uc, _ := newProductFixture(t)

	valid := AdminProductInput{Title: "hammer", Price: 100, Stock: 5, Category: "tools"}

	tests := []struct {
		name   string
		mutate func(*AdminProductInput)
	}{
		{"empty title", func(in *AdminProductInput) { in.Title = " " }},
		{"zero price", func(in *AdminProductInput) { in.Price = 0 }},
		{"negative stock", func(in *AdminProductInput) { in.Stock = -1 }},
		{"empty category", func(in *AdminProductInput) { in.Category = "" }},
		{"bad discount pct", func(in *AdminProductInput) { pct := int64(150); in.DiscountPercentage = &pct }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := uc.AdminCreateProduct(ctx, in)
			assertHTTPStatus(t, err, http.StatusBadRequest)
		})
	}

	created, err := uc.AdminCreateProduct(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

// 更新してもrating/reviewCountは変わらない
func TestProductUsecase_AdminUpdate_KeepsDerivedFields(t *testing.T) {
	ctx := context.Background()
	uc, store := newProductFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	require.NoError(t, store.Products().UpdateRating(ctx, p.ID, 4.2, 12))

	updated, err := uc.AdminUpdateProduct(ctx, p.ID, AdminProductInput{
		Title: "hammer v2", Price: 120, Stock: 3, Category: "tools",
	})
	require.NoError(t, err)
	assert.Equal(t, "hammer v2", updated.Title)
	assert.Equal(t, float64(120), updated.Price)
	assert.Equal(t, 4.2, updated.Rating)
	assert.Equal(t, int64(12), updated.ReviewCount)
}

func TestProductUsecase_AdminDelete(t *testing.T) {
	ctx := context.Background()
	uc, store := newProductFixture(t)
	p := mustCreateProduct(t, store, "hammer", 100)

	require.NoError(t, uc.AdminDeleteProduct(ctx, p.ID))

	err := uc.AdminDeleteProduct(ctx, p.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
