package http

import (
	_ "github.com/akshop/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	shop   *cfg.ShopCfg
	logger logger.Logger
}

func NewRouter(router *chi.Mux, shop *cfg.ShopCfg, logger logger.Logger) *Router {
	return &Router{router: router, shop: shop, logger: logger}
}

// UseCases — юзкейсы, подключаемые к роутам.
type UseCases struct {
	Catalog  usecase.CatalogUC
	Cart     usecase.CartUC
	Order    usecase.OrderUC
	Session  usecase.SessionUC
	Settings usecase.SettingsUC
	Chat     usecase.ChatUC
}

func (r *Router) Init(uc UseCases) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(sessionMiddleware(uc.Session, r.shop))
		v1.Use(cartTokenMiddleware(r.shop))

		catalogHandler := NewCatalogHandler(uc.Catalog, r.logger)
		cartHandler := NewCartHandler(uc.Cart, r.logger)
		orderHandler := NewOrderHandler(uc.Order, r.logger)
		sessionHandler := NewSessionHandler(uc.Session, r.shop, r.logger)
		settingsHandler := NewSettingsHandler(uc.Settings, r.logger)
		chatHandler := NewChatHandler(uc.Chat, r.logger)

		registerCatalogRoutes(v1, catalogHandler)
		registerCartRoutes(v1, cartHandler)
		registerOrderRoutes(v1, orderHandler)
		registerSessionRoutes(v1, sessionHandler)
		registerSettingsRoutes(v1, settingsHandler)
		registerChatRoutes(v1, chatHandler)
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
		pr.Post("/{id}/reviews", h.submitReview)
		pr.With(requireAdmin).Post("/", h.addProduct)
		pr.With(requireAdmin).Delete("/{id}", h.removeProduct)
	})

	router.Route("/categories", func(ct chi.Router) {
		ct.Get("/", h.listCategories)
		ct.Put("/selected", h.selectCategory)
		ct.With(requireAdmin).Post("/", h.addCategory)
		ct.With(requireAdmin).Delete("/{name}", h.removeCategory)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Post("/items", h.addItem)
		cr.Patch("/items/{lineId}", h.setQuantity)
		cr.Delete("/items/{lineId}", h.removeItem)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Post("/checkout", h.checkout)
	router.Get("/orders", h.listOwnOrders)

	router.Route("/admin", func(ad chi.Router) {
		ad.Use(requireAdmin)
		ad.Get("/orders", h.listAllOrders)
		ad.Patch("/orders/{id}/status", h.updateStatus)
		ad.Get("/summary", h.summary)
	})
}

func registerSessionRoutes(router chi.Router, h *SessionHandler) {
	router.Route("/auth", func(au chi.Router) {
		au.Post("/login", h.login)
		au.Post("/logout", h.logout)
		au.Get("/me", h.me)
	})
}

func registerSettingsRoutes(router chi.Router, h *SettingsHandler) {
	router.Get("/settings", h.getSettings)
	router.With(requireAdmin).Put("/settings", h.updateSettings)
}

func registerChatRoutes(router chi.Router, h *ChatHandler) {
	router.Route("/chat", func(ch chi.Router) {
		ch.Get("/greeting", h.greeting)
		ch.Post("/", h.reply)
	})
}
