package converter

import (
	"testing"
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRoundTrip(t *testing.T) {
	conv := NewSnapshotConverter()
	discount := decimal.NewFromInt(80)

	carts := []domain.Cart{{
		Token:     "c1",
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Lines: []domain.CartLine{{
			LineID: "l1",
			Product: domain.Product{
				ID:            "p1",
				Name:          "Pro Headphones 700",
				Price:         decimal.NewFromInt(100),
				DiscountPrice: &discount,
				Options:       []domain.ProductOption{{Name: "Color", Values: []string{"Black"}}},
			},
			Quantity:        2,
			SelectedOptions: map[string]string{"Color": "Black"},
		}},
	}}

	restored := conv.ToCarts(conv.ToCartModels(carts))
	require.Len(t, restored, 1)
	assert.Equal(t, carts[0].Token, restored[0].Token)
	require.Len(t, restored[0].Lines, 1)
	assert.Equal(t, carts[0].Lines[0].SelectedOptions, restored[0].Lines[0].SelectedOptions)
	assert.True(t, restored[0].Lines[0].Product.EffectivePrice().Equal(discount))
}

func TestUnknownOrderStatusFallsBackToPending(t *testing.T) {
	conv := NewSnapshotConverter()

	orders := conv.ToOrders([]OrderModel{{
		ID:     "ORD-1",
		Total:  decimal.NewFromInt(100),
		Status: "Lost In Transit",
	}})

	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusPending, orders[0].Status)
}

func TestSettingsConversionKeepsPasswordOverride(t *testing.T) {
	conv := NewSnapshotConverter()

	settings := domain.ShopSettings{Email: "support@akshop.com", AdminPassword: "s3cret"}
	restored := conv.ToSettings(conv.ToSettingsModel(settings))
	assert.Equal(t, settings, restored)
}
