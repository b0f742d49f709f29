// Package state содержит владеющий состоянием контейнер приложения.
// Все коллекции принадлежат одному Store; мутации — атомарные замены
// под одним мьютексом, частичных правок на месте нет.
package state

import (
	"strings"
	"sync"
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
)

var (
	_ usecase.CatalogRepository  = (*Store)(nil)
	_ usecase.CartRepository     = (*Store)(nil)
	_ usecase.OrderRepository    = (*Store)(nil)
	_ usecase.SettingsRepository = (*Store)(nil)
	_ usecase.SessionRepository  = (*Store)(nil)
)

type Store struct {
	mu               sync.RWMutex
	products         []domain.Product
	categories       []string
	selectedCategory string
	settings         domain.ShopSettings
	orders           []domain.Order
	carts            map[string]*domain.Cart
	sessions         map[string]domain.User
}

func NewStore() *Store {
	return &Store{
		selectedCategory: usecase.WildcardCategory,
		carts:            make(map[string]*domain.Cart),
		sessions:         make(map[string]domain.User),
	}
}

// ЗАГРУЗКА СОСТОЯНИЯ (один раз при старте)

func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *Store) SetCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
}

func (s *Store) SetSettings(settings domain.ShopSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Store) SetOrders(orders []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

func (s *Store) SetCarts(carts []domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts = make(map[string]*domain.Cart, len(carts))
	for i := range carts {
		cart := carts[i]
		s.carts[cart.Token] = &cart
	}
}

// КАТАЛОГ

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Store) ProductByID(id string) (*domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}

	return nil, false
}

func (s *Store) PrependProduct(product *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product{*product}, s.products...)
}

func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}

	return false
}

// PrependReview добавляет отзыв в начало списка отзывов товара и
// увеличивает кэшированный счетчик. Возвращает false, если товара нет.
func (s *Store) PrependReview(productID string, review *domain.Review) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].Reviews = append([]domain.Review{*review}, s.products[i].Reviews...)
			s.products[i].ReviewsCount++
			return true
		}
	}

	return false
}

// КАТЕГОРИИ

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.categories...)
}

// AddCategory добавляет метку. Возвращает false для дубликата.
func (s *Store) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if strings.EqualFold(c, name) {
			return false
		}
	}
	s.categories = append(s.categories, name)

	return true
}

func (s *Store) RemoveCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}

	return false
}

func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCategory
}

func (s *Store) SetSelectedCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = name
}

// КОРЗИНЫ

// Cart возвращает копию корзины по токену. Для неизвестного токена
// возвращается пустая корзина: сохраняется она только после мутации.
func (s *Store) Cart(token string) *domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[token]
	if !ok {
		return &domain.Cart{Token: token}
	}

	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	return &cp
}

func (s *Store) SaveCart(cart *domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	s.carts[cart.Token] = &cp
}

func (s *Store) ClearCart(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

func (s *Store) Carts() []domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Cart, 0, len(s.carts))
	for _, cart := range s.carts {
		cp := *cart
		cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
		out = append(out, cp)
	}

	return out
}

// ЗАКАЗЫ

func (s *Store) PrependOrder(order *domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]domain.Order{*order}, s.orders...)
}

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

func (s *Store) OrdersByEmail(email string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Order
	for i := range s.orders {
		if strings.EqualFold(s.orders[i].UserEmail, email) {
			out = append(out, s.orders[i])
		}
	}

	return out
}

func (s *Store) SetOrderStatus(id string, status domain.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return true
		}
	}

	return false
}

// НАСТРОЙКИ

func (s *Store) Settings() domain.ShopSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// СЕССИИ

func (s *Store) PutSession(token string, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = *user
}

func (s *Store) SessionUser(token string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[token]
	if !ok {
		return nil, false
	}

	return &user, true
}

func (s *Store) DeleteSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// CleanupCarts удаляет корзины, не менявшиеся дольше maxAge.
// Вызывается при старте, чтобы снапшот не рос бесконечно.
func (s *Store) CleanupCarts(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxAge)
	for token, cart := range s.carts {
		if !cart.UpdatedAt.IsZero() && cart.UpdatedAt.Before(cutoff) {
			delete(s.carts, token)
			removed++
		}
	}

	return removed
}
