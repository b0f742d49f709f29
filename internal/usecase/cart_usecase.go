package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/google/uuid"
)

// CartUseCase реализует корзину: слияние позиций по (товар, опции),
// изменение количества и подсчет итогов.
type CartUseCase struct {
	cartRepo    CartRepository
	catalogRepo CatalogRepository
	snapshots   SnapshotRepository
	logger      logger.Logger

	// mu сериализует цикл чтение-изменение-запись: Cart возвращает копию,
	// и параллельные мутации одного токена без блокировки теряют обновления.
	mu sync.Mutex
}

func NewCartUC(
	cartRepo CartRepository,
	catalogRepo CatalogRepository,
	snapshots SnapshotRepository,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		snapshots:   snapshots,
		logger:      logger,
	}
}

func (c *CartUseCase) Get(ctx context.Context, token string) *domain.Cart {
	return c.cartRepo.Cart(token)
}

// AddLine добавляет товар в корзину. Если позиция с той же идентичностью
// (товар + выбор опций) уже есть, ее количество увеличивается на единицу,
// иначе добавляется новая позиция с количеством 1.
// Равенство опций сравнивается по содержимому, порядок ключей не важен.
func (c *CartUseCase) AddLine(ctx context.Context, req *AddLineReq) (*domain.Cart, error) {
	const op = "CartUseCase.AddLine"

	product, ok := c.catalogRepo.ProductByID(req.ProductID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cartRepo.Cart(req.CartToken)
	key := domain.MergeKey(req.ProductID, req.SelectedOptions)

	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].MergeKey() == key {
			cart.Lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		line := domain.NewCartLine(uuid.NewString(), *product, req.SelectedOptions)
		cart.Lines = append(cart.Lines, *line)
	}
	cart.UpdatedAt = time.Now()

	c.cartRepo.SaveCart(cart)
	c.persistCarts(ctx, op)

	return cart, nil
}

// RemoveLine удаляет позицию по идентификатору.
// Отсутствующая позиция — успешный no-op.
func (c *CartUseCase) RemoveLine(ctx context.Context, token, lineID string) *domain.Cart {
	const op = "CartUseCase.RemoveLine"

	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cartRepo.Cart(token)
	for i := range cart.Lines {
		if cart.Lines[i].LineID == lineID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			cart.UpdatedAt = time.Now()
			c.cartRepo.SaveCart(cart)
			c.persistCarts(ctx, op)
			break
		}
	}

	return cart
}

// SetQuantity устанавливает количество позиции. Значения меньше 1
// приводятся к 1, а не отклоняются. Отсутствующая позиция — no-op.
func (c *CartUseCase) SetQuantity(ctx context.Context, token, lineID string, quantity int) *domain.Cart {
	const op = "CartUseCase.SetQuantity"

	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cart := c.cartRepo.Cart(token)
	for i := range cart.Lines {
		if cart.Lines[i].LineID == lineID {
			if cart.Lines[i].Quantity == quantity {
				return cart
			}
			cart.Lines[i].Quantity = quantity
			cart.UpdatedAt = time.Now()
			c.cartRepo.SaveCart(cart)
			c.persistCarts(ctx, op)
			break
		}
	}

	return cart
}

func (c *CartUseCase) persistCarts(ctx context.Context, op string) {
	if err := c.snapshots.SaveCarts(ctx, c.cartRepo.Carts()); err != nil {
		c.logger.Warnf("failed to persist carts snapshot: %v", e.Wrap(op, err))
	}
}
