package state

import (
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SeedCategories — стартовый список категорий. Первая метка — вайлдкард.
func SeedCategories() []string {
	return []string{"All", "Electronics", "Accessories", "Home & Kitchen", "Fitness", "Fashion", "Beauty", "Stationery"}
}

// SeedSettings — стартовые контактные каналы магазина.
func SeedSettings() domain.ShopSettings {
	return domain.ShopSettings{
		Whatsapp:  "88012345678",
		Telegram:  "akshop",
		Instagram: "akshop_elite",
		Facebook:  "akshop.official",
		Email:     "support@akshop.com",
		Location:  "Dhaka, Bangladesh",
	}
}

// SeedProducts — встроенный каталог, используемый при отсутствии снапшота.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "1",
			Name:          "Pro Headphones 700",
			Description:   "High-fidelity noise-canceling wireless headphones with up to 40 hours of battery life.",
			Price:         decimal.NewFromInt(38500),
			DiscountPrice: price(32000),
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=800&q=80",
			Rating:        4.8,
			ReviewsCount:  1250,
			IsFeatured:    true,
			Features:      []string{"Active Noise Cancellation", "40-hour Battery", "Bluetooth 5.2", "Built-in Mic"},
			Reviews: []domain.Review{
				{
					ID: "r1", UserID: "u1", UserName: "Alice Smith", Rating: 5,
					Comment: "Best headphones I have ever owned! The noise cancellation is magical.",
					Date:    date(2023, 10, 15),
				},
				{
					ID: "r2", UserID: "u2", UserName: "Bob Jones", Rating: 4,
					Comment: "Great sound quality, though the ear cups get a bit warm after 3 hours.",
					Date:    date(2023, 11, 2),
				},
			},
		},
		{
			ID:           "2",
			Name:         "Smart Watch Series X",
			Description:  "Track your health, receive notifications, and stay connected with the most advanced wearable.",
			Price:        decimal.NewFromInt(45000),
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=800&q=80",
			Rating:       4.6,
			ReviewsCount: 890,
			Features:     []string{"Heart Rate Monitor", "Sleep Tracking", "Water Resistant", "Always-on Display"},
			Reviews: []domain.Review{
				{
					ID: "r3", UserID: "u3", UserName: "Charlie Brown", Rating: 5,
					Comment: "The health tracking is spot on. Worth every penny.",
					Date:    date(2023, 12, 1),
				},
			},
		},
		{
			ID:            "3",
			Name:          "Minimalist Leather Wallet",
			Description:   "Handcrafted premium leather wallet designed for simplicity and durability.",
			Price:         decimal.NewFromInt(3200),
			DiscountPrice: price(2800),
			Category:      "Accessories",
			Image:         "https://images.unsplash.com/photo-1627123424574-724758594e93?auto=format&fit=crop&w=800&q=80",
			Rating:        4.9,
			ReviewsCount:  430,
			Features:      []string{"Genuine Leather", "RFID Blocking", "Holds 10 Cards", "Ultra-slim Design"},
		},
		{
			ID:           "4",
			Name:         "Artisan Coffee Maker",
			Description:  "Brew the perfect cup of coffee with our precision-engineered pour-over station.",
			Price:        decimal.NewFromInt(15500),
			Category:     "Home & Kitchen",
			Image:        "https://images.unsplash.com/photo-1544145945-f904253d0c7e?auto=format&fit=crop&w=800&q=80",
			Rating:       4.7,
			ReviewsCount: 620,
			Features:     []string{"Precision Drip", "Heat-resistant Glass", "Reusable Filter", "Compact Size"},
		},
		{
			ID:           "5",
			Name:         "Eco-Friendly Yoga Mat",
			Description:  "Non-slip, biodegradable material that provides excellent cushioning for your practice.",
			Price:        decimal.NewFromInt(4800),
			Category:     "Fitness",
			Image:        "https://images.unsplash.com/photo-1592432676554-21014022986f?auto=format&fit=crop&w=800&q=80",
			Rating:       4.5,
			ReviewsCount: 215,
			Features:     []string{"Biodegradable", "6mm Cushioning", "Anti-tear Technology", "Lightweight"},
		},
		{
			ID:            "6",
			Name:          "Gaming Keyboard",
			Description:   "RGB backlit mechanical keyboard with ultra-responsive switches for the ultimate gaming edge.",
			Price:         decimal.NewFromInt(12900),
			DiscountPrice: price(9900),
			Category:      "Electronics",
			Image:         "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?auto=format&fit=crop&w=800&q=80",
			Rating:        4.9,
			ReviewsCount:  1540,
			IsFeatured:    true,
			Features:      []string{"Blue Switches", "16.8M RGB Colors", "Aluminum Frame", "Full N-Key Rollover"},
		},
		{
			ID:           "7",
			Name:         "Premium Canvas Backpack",
			Description:  "Waterproof canvas backpack with multiple compartments for all your travel needs.",
			Price:        decimal.NewFromInt(6500),
			Category:     "Accessories",
			Image:        "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=800&q=80",
			Rating:       4.4,
			ReviewsCount: 310,
			Features:     []string{"Waterproof", "Laptop Compartment", "Breathable Straps", "25L Capacity"},
		},
		{
			ID:           "8",
			Name:         "Bluetooth Speaker",
			Description:  "Deep bass and crystal clear sound in a compact, waterproof design.",
			Price:        decimal.NewFromInt(9500),
			Category:     "Electronics",
			Image:        "https://images.unsplash.com/photo-1608156639585-b3a034ef915a?auto=format&fit=crop&w=800&q=80",
			Rating:       4.7,
			ReviewsCount: 780,
			Features:     []string{"20W Output", "IPX7 Waterproof", "15-hour Playtime", "Stereo Pairing"},
		},
	}
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
