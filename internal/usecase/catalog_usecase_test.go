package usecase_test

import (
	"context"
	"testing"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/repository/state"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUC(t *testing.T) (*usecase.CatalogUseCase, *state.Store, *fakeImages) {
	t.Helper()
	store := newSeededStore()
	images := &fakeImages{}
	return usecase.NewCatalogUC(store, &fakeSnapshots{}, images, nopLogger{}), store, images
}

func strPtr(s string) *string { return &s }

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	uc, _, _ := newCatalogUC(t)

	products := uc.Filter(context.Background(), &usecase.FilterReq{Search: "LEATHER"})
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)

	// Поиск по описанию
	products = uc.Filter(context.Background(), &usecase.FilterReq{Search: "handcrafted"})
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestFilterByCategory(t *testing.T) {
	uc, _, _ := newCatalogUC(t)
	ctx := context.Background()

	products := uc.Filter(ctx, &usecase.FilterReq{Category: strPtr("Electronics")})
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)

	// Вайлдкард отключает фильтр
	products = uc.Filter(ctx, &usecase.FilterReq{Category: strPtr(usecase.WildcardCategory)})
	assert.Len(t, products, 2)
}

func TestFilterUsesSelectedCategoryByDefault(t *testing.T) {
	uc, _, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.SelectCategory(ctx, "Accessories"))

	products := uc.Filter(ctx, &usecase.FilterReq{})
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestAddProductValidation(t *testing.T) {
	uc, _, _ := newCatalogUC(t)
	ctx := context.Background()
	image := usecase.NewProductImage([]byte("img"), "image/png", 3, "a.png")

	_, err := uc.AddProduct(ctx, &usecase.AddProductReq{Price: decimal.NewFromInt(10), Image: image})
	assert.ErrorIs(t, err, e.ErrProductNameRequired)

	_, err = uc.AddProduct(ctx, &usecase.AddProductReq{Name: "X", Price: decimal.Zero, Image: image})
	assert.ErrorIs(t, err, e.ErrPriceMustBePositive)

	_, err = uc.AddProduct(ctx, &usecase.AddProductReq{Name: "X", Price: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestAddProductPrependsWithDefaults(t *testing.T) {
	uc, store, images := newCatalogUC(t)
	ctx := context.Background()

	product, err := uc.AddProduct(ctx, &usecase.AddProductReq{
		Name:     "Bluetooth Speaker",
		Category: "Electronics",
		Price:    decimal.NewFromInt(9500),
		Image:    usecase.NewProductImage([]byte("img"), "image/png", 3, "speaker.png"),
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, product.Rating)
	assert.Zero(t, product.ReviewsCount)
	assert.Equal(t, "https://img.test/speaker.png", product.Image)
	assert.Len(t, images.uploads, 1)

	// Новый товар в начале каталога
	assert.Equal(t, product.ID, store.Products()[0].ID)
}

func TestAddProductCleansUpOrphanOnMockupFailure(t *testing.T) {
	uc, store, images := newCatalogUC(t)
	images.failAfter = 1

	_, err := uc.AddProduct(context.Background(), &usecase.AddProductReq{
		Name:        "Gaming Keyboard",
		Category:    "Electronics",
		Price:       decimal.NewFromInt(12900),
		Image:       usecase.NewProductImage([]byte("img"), "image/png", 3, "kb.png"),
		MockupImage: usecase.NewProductImage([]byte("img"), "image/png", 3, "kb-mockup.png"),
	})
	require.Error(t, err)

	assert.Equal(t, []string{"https://img.test/kb.png"}, images.deletes)
	assert.Len(t, store.Products(), 2)
}

func TestRemoveProductIsIdempotent(t *testing.T) {
	uc, store, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.RemoveProduct(ctx, "p1"))
	assert.Len(t, store.Products(), 1)

	require.NoError(t, uc.RemoveProduct(ctx, "p1"))
	assert.Len(t, store.Products(), 1)
}

func TestAddCategoryDuplicateIsNoop(t *testing.T) {
	uc, _, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.AddCategory(ctx, "Fitness"))
	require.NoError(t, uc.AddCategory(ctx, "fitness"))
	assert.Equal(t, []string{"All", "Electronics", "Accessories", "Fitness"}, uc.Categories(ctx))

	assert.ErrorIs(t, uc.AddCategory(ctx, "  "), e.ErrCategoryNameEmpty)
}

func TestRemoveCategoryProtectsWildcard(t *testing.T) {
	uc, _, _ := newCatalogUC(t)

	err := uc.RemoveCategory(context.Background(), usecase.WildcardCategory)
	assert.ErrorIs(t, err, e.ErrCategoryProtected)
}

func TestRemoveSelectedCategoryResetsSelection(t *testing.T) {
	uc, store, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.SelectCategory(ctx, "Accessories"))
	require.NoError(t, uc.RemoveCategory(ctx, "Accessories"))

	assert.Equal(t, usecase.WildcardCategory, store.SelectedCategory())
	// Витрина снова показывает все товары
	assert.Len(t, uc.Filter(ctx, &usecase.FilterReq{}), 2)
}

func TestRemoveOtherCategoryKeepsSelection(t *testing.T) {
	uc, store, _ := newCatalogUC(t)
	ctx := context.Background()

	require.NoError(t, uc.SelectCategory(ctx, "Accessories"))
	require.NoError(t, uc.RemoveCategory(ctx, "Electronics"))

	assert.Equal(t, "Accessories", store.SelectedCategory())
}

func TestSubmitReview(t *testing.T) {
	uc, store, _ := newCatalogUC(t)
	ctx := context.Background()
	author := domain.NewUser("u1", "Alice Smith", "alice@example.com", "", false)

	_, err := uc.SubmitReview(ctx, usecase.NewSubmitReviewReq("p1", 5, "Great", nil))
	assert.ErrorIs(t, err, e.ErrAuthRequired)

	_, err = uc.SubmitReview(ctx, usecase.NewSubmitReviewReq("p1", 0, "Great", author))
	assert.ErrorIs(t, err, e.ErrInvalidRating)

	_, err = uc.SubmitReview(ctx, usecase.NewSubmitReviewReq("p1", 6, "Great", author))
	assert.ErrorIs(t, err, e.ErrInvalidRating)

	_, err = uc.SubmitReview(ctx, usecase.NewSubmitReviewReq("p1", 4, "  ", author))
	assert.ErrorIs(t, err, e.ErrEmptyComment)

	_, err = uc.SubmitReview(ctx, usecase.NewSubmitReviewReq("missing", 4, "Great", author))
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	review, err := uc.SubmitReview(ctx, usecase.NewSubmitReviewReq("p1", 4, "Great sound", author))
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", review.UserName)

	product, ok := store.ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, 1, product.ReviewsCount)
	require.NotEmpty(t, product.Reviews)
	assert.Equal(t, review.ID, product.Reviews[0].ID)
}
