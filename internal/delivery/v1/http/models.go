package http

import (
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// Модели ответов API. Имена полей повторяют формат клиента витрины.

type productResponse struct {
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
	Reviews       []reviewResponse `json:"reviews"`
	Features      []string         `json:"features"`
	Options       []optionResponse `json:"options,omitempty"`
	IsFeatured    bool             `json:"isFeatured,omitempty"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Date       time.Time `json:"date"`
}

type optionResponse struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type cartLineResponse struct {
	LineID          string            `json:"lineId"`
	Product         productResponse   `json:"product"`
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
}

type cartResponse struct {
	Token string             `json:"token"`
	Items []cartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
	Count int                `json:"count"`
}

type orderResponse struct {
	ID        string             `json:"id"`
	UserName  string             `json:"userName"`
	UserEmail string             `json:"userEmail"`
	Items     []cartLineResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Date      time.Time          `json:"date"`
	Status    string             `json:"status"`
}

type userResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Avatar  string `json:"avatar,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

type settingsResponse struct {
	Whatsapp  string `json:"whatsapp"`
	Telegram  string `json:"telegram"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Email     string `json:"email"`
	Location  string `json:"location"`
}

type summaryResponse struct {
	ProductsCount int             `json:"productsCount"`
	OrdersCount   int             `json:"ordersCount"`
	PendingCount  int             `json:"pendingCount"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// МАППИНГ

func toProductResponse(p *domain.Product) productResponse {
	reviews := make([]reviewResponse, len(p.Reviews))
	for i, r := range p.Reviews {
		reviews[i] = reviewResponse{
			ID:         r.ID,
			UserID:     r.UserID,
			UserName:   r.UserName,
			UserAvatar: r.UserAvatar,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Date:       r.Date,
		}
	}

	options := make([]optionResponse, len(p.Options))
	for i, o := range p.Options {
		options[i] = optionResponse{Name: o.Name, Values: o.Values}
	}

	return productResponse{
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
		Reviews:       reviews,
		Features:      p.Features,
		Options:       options,
		IsFeatured:    p.IsFeatured,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	return out
}

func toCartLineResponses(lines []domain.CartLine) []cartLineResponse {
	out := make([]cartLineResponse, len(lines))
	for i := range lines {
		out[i] = cartLineResponse{
			LineID:          lines[i].LineID,
			Product:         toProductResponse(&lines[i].Product),
			Quantity:        lines[i].Quantity,
			SelectedOptions: lines[i].SelectedOptions,
			Subtotal:        lines[i].Subtotal(),
		}
	}
	return out
}

func toCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{
		Token: cart.Token,
		Items: toCartLineResponses(cart.Lines),
		Total: cart.Total(),
		Count: cart.Count(),
	}
}

func toOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:        order.ID,
		UserName:  order.UserName,
		UserEmail: order.UserEmail,
		Items:     toCartLineResponses(order.Items),
		Total:     order.Total,
		Date:      order.Date,
		Status:    string(order.Status),
	}
}

func toOrderResponses(orders []domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i := range orders {
		out[i] = toOrderResponse(&orders[i])
	}
	return out
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Avatar:  user.Avatar,
		IsAdmin: user.IsAdmin,
	}
}

// toSettingsResponse не включает переопределение пароля администратора.
func toSettingsResponse(s domain.ShopSettings) settingsResponse {
	return settingsResponse{
		Whatsapp:  s.Whatsapp,
		Telegram:  s.Telegram,
		Instagram: s.Instagram,
		Facebook:  s.Facebook,
		Email:     s.Email,
		Location:  s.Location,
	}
}

func toSummaryResponse(s *usecase.SummaryRes) summaryResponse {
	return summaryResponse{
		ProductsCount: s.ProductsCount,
		OrdersCount:   s.OrdersCount,
		PendingCount:  s.PendingCount,
		Revenue:       s.Revenue,
	}
}
