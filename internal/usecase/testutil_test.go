package usecase_test

import (
	"context"
	"sync"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/repository/state"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}
func (nopLogger) Debugf(format string, args ...any)            {}

// fakeSnapshots считает вызовы сохранения и может имитировать сбой записи.
type fakeSnapshots struct {
	mu            sync.Mutex
	catalogSaves  int
	categorySaves int
	settingsSaves int
	orderSaves    int
	cartSaves     int
	err           error
}

func (f *fakeSnapshots) SaveCatalog(ctx context.Context, products []domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogSaves++
	return f.err
}

func (f *fakeSnapshots) SaveCategories(ctx context.Context, categories []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categorySaves++
	return f.err
}

func (f *fakeSnapshots) SaveSettings(ctx context.Context, settings domain.ShopSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settingsSaves++
	return f.err
}

func (f *fakeSnapshots) SaveOrders(ctx context.Context, orders []domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderSaves++
	return f.err
}

func (f *fakeSnapshots) SaveCarts(ctx context.Context, carts []domain.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cartSaves++
	return f.err
}

// fakeImages возвращает детерминированные URL и запоминает удаления.
type fakeImages struct {
	uploads   []string
	deletes   []string
	failAfter int // количество успешных загрузок до сбоя; 0 — без сбоев
}

func (f *fakeImages) Upload(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	if f.failAfter > 0 && len(f.uploads) >= f.failAfter {
		return "", context.DeadlineExceeded
	}
	url := "https://img.test/" + req.Image.Name
	f.uploads = append(f.uploads, url)
	return url, nil
}

func (f *fakeImages) Delete(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

// fakeAssistant возвращает заготовленный ответ и запоминает запрос.
type fakeAssistant struct {
	reply   string
	err     error
	lastReq *usecase.AssistantReq
	calls   int
}

func (f *fakeAssistant) GenerateReply(ctx context.Context, req *usecase.AssistantReq) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testShopCfg() *cfg.ShopCfg {
	return &cfg.ShopCfg{
		AdminEmail:       "admin@akshop.com",
		AdminPassword:    "admin123",
		SnapshotPrefix:   "akshop",
		CurrencySymbol:   "৳",
		SessionTokenName: "X-Session-Token",
		CartTokenName:    "X-Cart-Token",
	}
}

// newSeededStore возвращает Store с двумя товарами и стартовыми категориями.
func newSeededStore() *state.Store {
	store := state.NewStore()

	headphones := domain.Product{
		ID:       "p1",
		Name:     "Pro Headphones 700",
		Category: "Electronics",
		Price:    decimal.NewFromInt(38500),
		Options: []domain.ProductOption{
			{Name: "Color", Values: []string{"Black", "Silver"}},
		},
	}
	discount := decimal.NewFromInt(2800)
	wallet := domain.Product{
		ID:            "p2",
		Name:          "Minimalist Leather Wallet",
		Description:   "Handcrafted premium leather wallet",
		Category:      "Accessories",
		Price:         decimal.NewFromInt(3200),
		DiscountPrice: &discount,
	}

	store.SetProducts([]domain.Product{headphones, wallet})
	store.SetCategories([]string{"All", "Electronics", "Accessories"})
	store.SetSettings(domain.ShopSettings{Email: "support@akshop.com"})

	return store
}
