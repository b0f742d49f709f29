package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/repository/redis/converter"
	"github.com/akshop/go-backend/pkg/clients"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// Суффиксы ключей снапшотов: одна коллекция верхнего уровня — один ключ.
const (
	keyCatalog    = "catalog"
	keyCategories = "categories"
	keySettings   = "settings"
	keyOrders     = "orders"
	keyCarts      = "carts"
)

// SnapshotRepo — адаптер персистентности поверх Redis. Каждая коллекция
// читается один раз при старте и целиком перезаписывается при каждом
// изменении, без инкрементальных диффов.
type SnapshotRepo struct {
	client *clients.RedisClient
	conv   *converter.SnapshotConverter
	shop   *cfg.ShopCfg
	logger logger.Logger
}

func NewSnapshotRepo(client *clients.RedisClient, conv *converter.SnapshotConverter,
	shop *cfg.ShopCfg, logger logger.Logger) *SnapshotRepo {
	return &SnapshotRepo{
		client: client,
		conv:   conv,
		shop:   shop,
		logger: logger,
	}
}

// СОХРАНЕНИЕ

func (s *SnapshotRepo) SaveCatalog(ctx context.Context, products []domain.Product) error {
	return s.save(ctx, keyCatalog, s.conv.ToProductModels(products))
}

func (s *SnapshotRepo) SaveCategories(ctx context.Context, categories []string) error {
	return s.save(ctx, keyCategories, categories)
}

func (s *SnapshotRepo) SaveSettings(ctx context.Context, settings domain.ShopSettings) error {
	return s.save(ctx, keySettings, s.conv.ToSettingsModel(settings))
}

func (s *SnapshotRepo) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return s.save(ctx, keyOrders, s.conv.ToOrderModels(orders))
}

func (s *SnapshotRepo) SaveCarts(ctx context.Context, carts []domain.Cart) error {
	return s.save(ctx, keyCarts, s.conv.ToCartModels(carts))
}

// ЗАГРУЗКА (второй результат false — ключ отсутствует, берутся сид-данные)

func (s *SnapshotRepo) LoadCatalog(ctx context.Context) ([]domain.Product, bool, error) {
	var models []converter.ProductModel
	ok, err := s.load(ctx, keyCatalog, &models)
	if err != nil || !ok {
		return nil, ok, err
	}

	return s.conv.ToProducts(models), true, nil
}

func (s *SnapshotRepo) LoadCategories(ctx context.Context) ([]string, bool, error) {
	var categories []string
	ok, err := s.load(ctx, keyCategories, &categories)
	if err != nil || !ok {
		return nil, ok, err
	}

	return categories, true, nil
}

func (s *SnapshotRepo) LoadSettings(ctx context.Context) (domain.ShopSettings, bool, error) {
	var model converter.SettingsModel
	ok, err := s.load(ctx, keySettings, &model)
	if err != nil || !ok {
		return domain.ShopSettings{}, ok, err
	}

	return s.conv.ToSettings(model), true, nil
}

func (s *SnapshotRepo) LoadOrders(ctx context.Context) ([]domain.Order, bool, error) {
	var models []converter.OrderModel
	ok, err := s.load(ctx, keyOrders, &models)
	if err != nil || !ok {
		return nil, ok, err
	}

	return s.conv.ToOrders(models), true, nil
}

func (s *SnapshotRepo) LoadCarts(ctx context.Context) ([]domain.Cart, bool, error) {
	var models []converter.CartModel
	ok, err := s.load(ctx, keyCarts, &models)
	if err != nil || !ok {
		return nil, ok, err
	}

	return s.conv.ToCarts(models), true, nil
}

// save сериализует коллекцию в JSON и перезаписывает ключ целиком.
func (s *SnapshotRepo) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// load читает ключ и десериализует его содержимое в dst.
// Отсутствие ключа не является ошибкой.
func (s *SnapshotRepo) load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := s.client.Client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, r.Nil) {
		return false, nil
	}
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

// key собирает полный ключ снапшота: "<prefix>:<collection>".
func (s *SnapshotRepo) key(suffix string) string {
	return s.shop.SnapshotPrefix + ":" + suffix
}
