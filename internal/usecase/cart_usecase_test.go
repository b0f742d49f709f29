package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartUC(t *testing.T) (*usecase.CartUseCase, *fakeSnapshots) {
	t.Helper()
	store := newSeededStore()
	snapshots := &fakeSnapshots{}
	return usecase.NewCartUC(store, store, snapshots, nopLogger{}), snapshots
}

func TestCartAddLineMergesSameIdentity(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	_, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", map[string]string{"Color": "Black", "Size": "M"}))
	require.NoError(t, err)

	// Тот же товар и те же опции в другом порядке ключей
	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", map[string]string{"Size": "M", "Color": "Black"}))
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.Count())
}

func TestCartAddLineDifferentOptionsAddsLine(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	_, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", map[string]string{"Color": "Black"}))
	require.NoError(t, err)

	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", map[string]string{"Color": "Silver"}))
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
	assert.NotEqual(t, cart.Lines[0].LineID, cart.Lines[1].LineID)
}

func TestCartAddLineCraftedOptionsStayDistinct(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	// Значение с разделителями не должно слиться с парой отдельных опций
	_, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", map[string]string{"a": "1;b=2"}))
	require.NoError(t, err)

	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCartAddLineUnknownProduct(t *testing.T) {
	uc, _ := newCartUC(t)

	_, err := uc.AddLine(context.Background(), usecase.NewAddLineReq("c1", "missing", nil))
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartSetQuantityClampsToOne(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", nil))
	require.NoError(t, err)
	lineID := cart.Lines[0].LineID

	cart = uc.SetQuantity(ctx, "c1", lineID, 0)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart = uc.SetQuantity(ctx, "c1", lineID, -5)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart = uc.SetQuantity(ctx, "c1", lineID, 7)
	assert.Equal(t, 7, cart.Lines[0].Quantity)
}

func TestCartSetQuantityUnknownLineIsNoop(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	_, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", nil))
	require.NoError(t, err)

	cart := uc.SetQuantity(ctx, "c1", "missing", 3)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartRemoveLine(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", nil))
	require.NoError(t, err)
	lineID := cart.Lines[0].LineID

	cart = uc.RemoveLine(ctx, "c1", lineID)
	assert.Empty(t, cart.Lines)

	// Повторное удаление — no-op
	cart = uc.RemoveLine(ctx, "c1", lineID)
	assert.Empty(t, cart.Lines)
}

func TestCartTotalUsesEffectivePrice(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	// p2 со скидкой 2800 вместо 3200
	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p2", nil))
	require.NoError(t, err)
	cart = uc.SetQuantity(ctx, "c1", cart.Lines[0].LineID, 3)

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(8400)), "total = %s", cart.Total())
}

func TestCartsAreIsolatedByToken(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	_, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", nil))
	require.NoError(t, err)

	other := uc.Get(ctx, "c2")
	assert.Empty(t, other.Lines)
}

func TestCartConcurrentAddsAreNotLost(t *testing.T) {
	uc, _ := newCartUC(t)
	ctx := context.Background()

	const adds = 16
	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", nil))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cart := uc.Get(ctx, "c1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, adds, cart.Lines[0].Quantity)
}

func TestCartSnapshotPersistedOnMutation(t *testing.T) {
	uc, snapshots := newCartUC(t)
	ctx := context.Background()

	cart, err := uc.AddLine(ctx, usecase.NewAddLineReq("c1", "p1", nil))
	require.NoError(t, err)
	uc.SetQuantity(ctx, "c1", cart.Lines[0].LineID, 2)
	uc.RemoveLine(ctx, "c1", cart.Lines[0].LineID)

	assert.Equal(t, 3, snapshots.cartSaves)
}
