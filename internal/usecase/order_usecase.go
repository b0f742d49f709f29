package usecase

import (
	"context"
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// OrderUseCase реализует журнал заказов: оформление из снимка корзины,
// выборку по покупателю и административные операции.
type OrderUseCase struct {
	orderRepo   OrderRepository
	cartRepo    CartRepository
	catalogRepo CatalogRepository
	snapshots   SnapshotRepository
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	catalogRepo CatalogRepository,
	snapshots SnapshotRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		snapshots:   snapshots,
		logger:      logger,
	}
}

// PlaceOrder оформляет заказ из текущей корзины: глубокая копия позиций,
// рассчитанный итог, статус Pending, добавление в начало журнала и очистка
// корзины. Требует идентифицированную сессию; пустая корзина отклоняется.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, cartToken string, buyer *domain.User) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	if buyer == nil {
		return nil, e.Wrap(op, e.ErrAuthRequired)
	}

	cart := o.cartRepo.Cart(cartToken)
	if len(cart.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCartCheckout)
	}

	order := domain.NewOrder(newShortID("ORD"), buyer, deepCopyLines(cart.Lines), cart.Total(), time.Now())
	o.orderRepo.PrependOrder(order)
	o.cartRepo.ClearCart(cartToken)

	o.persistOrders(ctx, op)
	if err := o.snapshots.SaveCarts(ctx, o.cartRepo.Carts()); err != nil {
		o.logger.Warnf("failed to persist carts snapshot: %v", e.Wrap(op, err))
	}

	return order, nil
}

// OrdersFor возвращает заказы покупателя с указанным email, новые вперед.
func (o *OrderUseCase) OrdersFor(ctx context.Context, email string) []domain.Order {
	return o.orderRepo.OrdersByEmail(email)
}

// ListAll возвращает весь журнал заказов (админ-панель).
func (o *OrderUseCase) ListAll(ctx context.Context) []domain.Order {
	return o.orderRepo.Orders()
}

// UpdateStatus меняет статус заказа (только администратор, проверяется
// на уровне доставки). Отсутствующий заказ — успешный no-op.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	const op = "OrderUseCase.UpdateStatus"

	if _, ok := domain.ParseOrderStatus(string(status)); !ok {
		return e.Wrap(op, e.ErrInvalidStatus)
	}

	if o.orderRepo.SetOrderStatus(orderID, status) {
		o.persistOrders(ctx, op)
	}

	return nil
}

// Summary собирает показатели дашборда админ-панели.
func (o *OrderUseCase) Summary(ctx context.Context) *SummaryRes {
	orders := o.orderRepo.Orders()

	revenue := decimal.Zero
	pending := 0
	for i := range orders {
		revenue = revenue.Add(orders[i].Total)
		if orders[i].Status == domain.OrderStatusPending {
			pending++
		}
	}

	return &SummaryRes{
		ProductsCount: len(o.catalogRepo.Products()),
		OrdersCount:   len(orders),
		PendingCount:  pending,
		Revenue:       revenue,
	}
}

func (o *OrderUseCase) persistOrders(ctx context.Context, op string) {
	if err := o.snapshots.SaveOrders(ctx, o.orderRepo.Orders()); err != nil {
		o.logger.Warnf("failed to persist orders snapshot: %v", e.Wrap(op, err))
	}
}

// deepCopyLines копирует позиции корзины вместе с вложенными срезами и
// картами, чтобы заказ не разделял память с живой корзиной.
func deepCopyLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	for i, line := range lines {
		cp := line

		if line.SelectedOptions != nil {
			cp.SelectedOptions = make(map[string]string, len(line.SelectedOptions))
			for k, v := range line.SelectedOptions {
				cp.SelectedOptions[k] = v
			}
		}

		cp.Product.Features = append([]string(nil), line.Product.Features...)
		cp.Product.Reviews = append([]domain.Review(nil), line.Product.Reviews...)
		cp.Product.Options = make([]domain.ProductOption, len(line.Product.Options))
		for j, opt := range line.Product.Options {
			cp.Product.Options[j] = domain.ProductOption{
				Name:   opt.Name,
				Values: append([]string(nil), opt.Values...),
			}
		}

		out[i] = cp
	}

	return out
}
