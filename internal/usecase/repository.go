package usecase

import (
	"context"

	"github.com/akshop/go-backend/internal/domain"
)

// CatalogRepository — операции над каталогом и списком категорий
// во владеющем состоянием контейнере.
type CatalogRepository interface {
	Products() []domain.Product
	ProductByID(id string) (*domain.Product, bool)
	PrependProduct(product *domain.Product)
	RemoveProduct(id string) bool
	PrependReview(productID string, review *domain.Review) bool

	Categories() []string
	AddCategory(name string) bool
	RemoveCategory(name string) bool
	SelectedCategory() string
	SetSelectedCategory(name string)
}

// CartRepository — корзины по токену клиента.
type CartRepository interface {
	Cart(token string) *domain.Cart
	SaveCart(cart *domain.Cart)
	ClearCart(token string)
	Carts() []domain.Cart
}

// OrderRepository — журнал заказов. Заказы хранятся новыми вперед,
// поэтому выборки не требуют дополнительной сортировки.
type OrderRepository interface {
	PrependOrder(order *domain.Order)
	Orders() []domain.Order
	OrdersByEmail(email string) []domain.Order
	SetOrderStatus(id string, status domain.OrderStatus) bool
}

// SettingsRepository — настройки магазина.
type SettingsRepository interface {
	Settings() domain.ShopSettings
	SetSettings(settings domain.ShopSettings)
}

// SessionRepository — активные сессии. Не переживают перезапуск процесса.
type SessionRepository interface {
	PutSession(token string, user *domain.User)
	SessionUser(token string) (*domain.User, bool)
	DeleteSession(token string)
}

// SnapshotRepository — адаптер персистентности: каждая коллекция верхнего
// уровня целиком перезаписывается одним ключом при каждом изменении.
type SnapshotRepository interface {
	SaveCatalog(ctx context.Context, products []domain.Product) error
	SaveCategories(ctx context.Context, categories []string) error
	SaveSettings(ctx context.Context, settings domain.ShopSettings) error
	SaveOrders(ctx context.Context, orders []domain.Order) error
	SaveCarts(ctx context.Context, carts []domain.Cart) error
}

// ImageRepository — хранилище изображений товаров.
type ImageRepository interface {
	Upload(ctx context.Context, req *UploadImageReq) (string, error)
	Delete(ctx context.Context, key string) error
}
