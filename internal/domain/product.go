package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal // Скидочная цена, может отсутствовать
	Category      string
	Image         string
	MockupImage   *string
	Rating        float64
	ReviewsCount  int // Кэшированный счетчик отзывов, см. SubmitReview
	Reviews       []Review
	Features      []string
	Options       []ProductOption
	IsFeatured    bool
}

// ProductOption — вариант товара: имя опции и допустимые значения
type ProductOption struct {
	Name   string
	Values []string
}

func NewProduct(id, name, description string, price decimal.Decimal, category string) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Rating:      5.0,
	}
}

// EffectivePrice возвращает цену за единицу: скидочную, если она задана
// и строго меньше базовой, иначе базовую.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil && p.DiscountPrice.LessThan(p.Price) {
		return *p.DiscountPrice
	}

	return p.Price
}
