package usecase

import (
	"context"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type CatalogUC interface {
	Filter(ctx context.Context, req *FilterReq) []domain.Product
	ProductByID(ctx context.Context, id string) (*domain.Product, error)
	SelectCategory(ctx context.Context, name string) error
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id string) error
	AddCategory(ctx context.Context, name string) error
	RemoveCategory(ctx context.Context, name string) error
	Categories(ctx context.Context) []string
	SubmitReview(ctx context.Context, req *SubmitReviewReq) (*domain.Review, error)
}

type CartUC interface {
	Get(ctx context.Context, token string) *domain.Cart
	AddLine(ctx context.Context, req *AddLineReq) (*domain.Cart, error)
	RemoveLine(ctx context.Context, token, lineID string) *domain.Cart
	SetQuantity(ctx context.Context, token, lineID string, quantity int) *domain.Cart
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, cartToken string, buyer *domain.User) (*domain.Order, error)
	OrdersFor(ctx context.Context, email string) []domain.Order
	ListAll(ctx context.Context) []domain.Order
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
	Summary(ctx context.Context) *SummaryRes
}

type SessionUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	Logout(ctx context.Context, token string)
	Resolve(ctx context.Context, token string) (*domain.User, bool)
}

type SettingsUC interface {
	Settings(ctx context.Context) domain.ShopSettings
	Update(ctx context.Context, req *UpdateSettingsReq) error
}

type ChatUC interface {
	Reply(ctx context.Context, req *ChatReq) (string, error)
}

// SummaryRes — сводка для дашборда админ-панели.
type SummaryRes struct {
	ProductsCount int
	OrdersCount   int
	PendingCount  int
	Revenue       decimal.Decimal
}
