// Package converter преобразует доменные сущности в wire-модели снапшотов
// и обратно. Конвертация написана вручную: wire-формат закреплен именами
// полей клиентских снапшотов и не должен дрейфовать вслед за доменом.
package converter

import "github.com/akshop/go-backend/internal/domain"

type SnapshotConverter struct{}

func NewSnapshotConverter() *SnapshotConverter {
	return &SnapshotConverter{}
}

// PRODUCTS

func (c *SnapshotConverter) ToProductModels(products []domain.Product) []ProductModel {
	out := make([]ProductModel, len(products))
	for i := range products {
		out[i] = c.toProductModel(&products[i])
	}
	return out
}

func (c *SnapshotConverter) ToProducts(models []ProductModel) []domain.Product {
	out := make([]domain.Product, len(models))
	for i := range models {
		out[i] = c.toProduct(&models[i])
	}
	return out
}

func (c *SnapshotConverter) toProductModel(p *domain.Product) ProductModel {
	return ProductModel{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Category:      p.Category,
		Image:         p.Image,
		MockupImage:   p.MockupImage,
		Rating:        p.Rating,
		ReviewsCount:  p.ReviewsCount,
		Reviews:       c.toReviewModels(p.Reviews),
		Features:      p.Features,
		Options:       c.toOptionModels(p.Options),
		IsFeatured:    p.IsFeatured,
	}
}

func (c *SnapshotConverter) toProduct(m *ProductModel) domain.Product {
	return domain.Product{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		Price:         m.Price,
		DiscountPrice: m.DiscountPrice,
		Category:      m.Category,
		Image:         m.Image,
		MockupImage:   m.MockupImage,
		Rating:        m.Rating,
		ReviewsCount:  m.ReviewsCount,
		Reviews:       c.toReviews(m.Reviews),
		Features:      m.Features,
		Options:       c.toOptions(m.Options),
		IsFeatured:    m.IsFeatured,
	}
}

func (c *SnapshotConverter) toReviewModels(reviews []domain.Review) []ReviewModel {
	if reviews == nil {
		return nil
	}
	out := make([]ReviewModel, len(reviews))
	for i, r := range reviews {
		out[i] = ReviewModel{
			ID:         r.ID,
			UserID:     r.UserID,
			UserName:   r.UserName,
			UserAvatar: r.UserAvatar,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Date:       r.Date,
		}
	}
	return out
}

func (c *SnapshotConverter) toReviews(models []ReviewModel) []domain.Review {
	if models == nil {
		return nil
	}
	out := make([]domain.Review, len(models))
	for i, m := range models {
		out[i] = domain.Review{
			ID:         m.ID,
			UserID:     m.UserID,
			UserName:   m.UserName,
			UserAvatar: m.UserAvatar,
			Rating:     m.Rating,
			Comment:    m.Comment,
			Date:       m.Date,
		}
	}
	return out
}

func (c *SnapshotConverter) toOptionModels(options []domain.ProductOption) []OptionModel {
	if options == nil {
		return nil
	}
	out := make([]OptionModel, len(options))
	for i, o := range options {
		out[i] = OptionModel{Name: o.Name, Values: o.Values}
	}
	return out
}

func (c *SnapshotConverter) toOptions(models []OptionModel) []domain.ProductOption {
	if models == nil {
		return nil
	}
	out := make([]domain.ProductOption, len(models))
	for i, m := range models {
		out[i] = domain.ProductOption{Name: m.Name, Values: m.Values}
	}
	return out
}

// CARTS

func (c *SnapshotConverter) ToCartModels(carts []domain.Cart) []CartModel {
	out := make([]CartModel, len(carts))
	for i := range carts {
		out[i] = CartModel{
			Token:     carts[i].Token,
			Lines:     c.toLineModels(carts[i].Lines),
			UpdatedAt: carts[i].UpdatedAt,
		}
	}
	return out
}

func (c *SnapshotConverter) ToCarts(models []CartModel) []domain.Cart {
	out := make([]domain.Cart, len(models))
	for i := range models {
		out[i] = domain.Cart{
			Token:     models[i].Token,
			Lines:     c.toLines(models[i].Lines),
			UpdatedAt: models[i].UpdatedAt,
		}
	}
	return out
}

func (c *SnapshotConverter) toLineModels(lines []domain.CartLine) []CartLineModel {
	out := make([]CartLineModel, len(lines))
	for i, l := range lines {
		out[i] = CartLineModel{
			LineID:          l.LineID,
			Product:         c.toProductModel(&l.Product),
			Quantity:        l.Quantity,
			SelectedOptions: l.SelectedOptions,
		}
	}
	return out
}

func (c *SnapshotConverter) toLines(models []CartLineModel) []domain.CartLine {
	out := make([]domain.CartLine, len(models))
	for i, m := range models {
		out[i] = domain.CartLine{
			LineID:          m.LineID,
			Product:         c.toProduct(&m.Product),
			Quantity:        m.Quantity,
			SelectedOptions: m.SelectedOptions,
		}
	}
	return out
}

// ORDERS

func (c *SnapshotConverter) ToOrderModels(orders []domain.Order) []OrderModel {
	out := make([]OrderModel, len(orders))
	for i := range orders {
		out[i] = OrderModel{
			ID:        orders[i].ID,
			UserName:  orders[i].UserName,
			UserEmail: orders[i].UserEmail,
			Items:     c.toLineModels(orders[i].Items),
			Total:     orders[i].Total,
			Date:      orders[i].Date,
			Status:    string(orders[i].Status),
		}
	}
	return out
}

func (c *SnapshotConverter) ToOrders(models []OrderModel) []domain.Order {
	out := make([]domain.Order, len(models))
	for i := range models {
		status, ok := domain.ParseOrderStatus(models[i].Status)
		if !ok {
			status = domain.OrderStatusPending
		}
		out[i] = domain.Order{
			ID:        models[i].ID,
			UserName:  models[i].UserName,
			UserEmail: models[i].UserEmail,
			Items:     c.toLines(models[i].Items),
			Total:     models[i].Total,
			Date:      models[i].Date,
			Status:    status,
		}
	}
	return out
}

// SETTINGS

func (c *SnapshotConverter) ToSettingsModel(s domain.ShopSettings) SettingsModel {
	return SettingsModel(s)
}

func (c *SnapshotConverter) ToSettings(m SettingsModel) domain.ShopSettings {
	return domain.ShopSettings(m)
}
