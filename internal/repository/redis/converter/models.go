package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wire-модели снапшотов. Формат ключей повторяет снапшоты клиента:
// одна коллекция — один ключ, полная перезапись при каждом изменении.

type ProductModel struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	MockupImage   *string          `json:"mockupImage,omitempty"`
	Rating        float64          `json:"rating"`
	ReviewsCount  int              `json:"reviewsCount"`
	Reviews       []ReviewModel    `json:"reviews,omitempty"`
	Features      []string         `json:"features,omitempty"`
	Options       []OptionModel    `json:"options,omitempty"`
	IsFeatured    bool             `json:"isFeatured,omitempty"`
}

type ReviewModel struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
}

type OptionModel struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type CartModel struct {
	Token     string          `json:"token"`
	Lines     []CartLineModel `json:"lines"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type CartLineModel struct {
	LineID          string            `json:"lineId"`
	Product         ProductModel      `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

type OrderModel struct {
	ID        string          `json:"id"`
	UserName  string          `json:"userName"`
	UserEmail string          `json:"userEmail"`
	Items     []CartLineModel `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
}

type SettingsModel struct {
	Whatsapp      string `json:"whatsapp"`
	Telegram      string `json:"telegram"`
	Instagram     string `json:"instagram"`
	Facebook      string `json:"facebook"`
	Email         string `json:"email"`
	Location      string `json:"location"`
	AdminPassword string `json:"adminPassword,omitempty"`
}
