package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/google/uuid"
)

// WildcardCategory — специальная категория "без фильтра". Не удаляется.
const WildcardCategory = "All"

// CatalogUseCase реализует каталог: фильтрацию витрины, управление
// товарами и категориями, публикацию отзывов.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	snapshots   SnapshotRepository
	imageRepo   ImageRepository
	logger      logger.Logger
}

func NewCatalogUC(
	catalogRepo CatalogRepository,
	snapshots SnapshotRepository,
	imageRepo ImageRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		snapshots:   snapshots,
		imageRepo:   imageRepo,
		logger:      logger,
	}
}

// Filter возвращает товары, чье имя или описание содержит подстроку поиска
// (без учета регистра) и чья категория совпадает с выбранной.
// Категория WildcardCategory отключает фильтр по категории.
// Порядок результата повторяет порядок каталога.
func (c *CatalogUseCase) Filter(ctx context.Context, req *FilterReq) []domain.Product {
	category := c.catalogRepo.SelectedCategory()
	if req.Category != nil {
		category = *req.Category
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))

	products := c.catalogRepo.Products()
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search)
		matchesCategory := category == WildcardCategory || p.Category == category

		if matchesSearch && matchesCategory {
			result = append(result, p)
		}
	}

	return result
}

func (c *CatalogUseCase) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.ProductByID"

	product, ok := c.catalogRepo.ProductByID(id)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	return product, nil
}

// SelectCategory запоминает активный фильтр витрины.
func (c *CatalogUseCase) SelectCategory(ctx context.Context, name string) error {
	const op = "CatalogUseCase.SelectCategory"

	if strings.TrimSpace(name) == "" {
		return e.Wrap(op, e.ErrCategoryNameEmpty)
	}

	c.catalogRepo.SetSelectedCategory(name)
	return nil
}

// AddProduct добавляет полностью сформированный товар в начало каталога:
// сгенерированный идентификатор, рейтинг 5.0, ноль отзывов.
// Изображения загружаются в хранилище до изменения состояния.
func (c *CatalogUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.AddProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(newShortID("P"), req.Name, req.Description, req.Price, req.Category)
	product.DiscountPrice = req.DiscountPrice
	product.Features = req.Features
	product.Options = req.Options
	product.IsFeatured = req.IsFeatured

	imageURL, err := c.imageRepo.Upload(ctx, NewUploadImageReq(req.Name, *req.Image))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	product.Image = imageURL

	if req.MockupImage != nil {
		mockupURL, err := c.imageRepo.Upload(ctx, NewUploadImageReq(req.Name, *req.MockupImage))
		if err != nil {
			// Загруженное основное изображение не оставляем сиротой
			if delErr := c.imageRepo.Delete(ctx, imageURL); delErr != nil {
				c.logger.Warnf("failed to cleanup orphaned image %s: %v", imageURL, delErr)
			}
			return nil, e.Wrap(op, err)
		}
		product.MockupImage = &mockupURL
	}

	c.catalogRepo.PrependProduct(product)
	c.persistCatalog(ctx, op)

	return product, nil
}

// RemoveProduct удаляет товар по идентификатору.
// Отсутствующий идентификатор — успешный no-op.
func (c *CatalogUseCase) RemoveProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.RemoveProduct"

	if c.catalogRepo.RemoveProduct(id) {
		c.persistCatalog(ctx, op)
	}

	return nil
}

func (c *CatalogUseCase) Categories(ctx context.Context) []string {
	return c.catalogRepo.Categories()
}

// AddCategory добавляет метку категории. Дубликат — успешный no-op.
func (c *CatalogUseCase) AddCategory(ctx context.Context, name string) error {
	const op = "CatalogUseCase.AddCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return e.Wrap(op, e.ErrCategoryNameEmpty)
	}

	if c.catalogRepo.AddCategory(name) {
		c.persistCategories(ctx, op)
	}

	return nil
}

// RemoveCategory удаляет метку категории. WildcardCategory защищена.
// Если удаляется выбранная категория, фильтр сбрасывается на WildcardCategory.
func (c *CatalogUseCase) RemoveCategory(ctx context.Context, name string) error {
	const op = "CatalogUseCase.RemoveCategory"

	if name == WildcardCategory {
		return e.Wrap(op, e.ErrCategoryProtected)
	}

	if c.catalogRepo.RemoveCategory(name) {
		if c.catalogRepo.SelectedCategory() == name {
			c.catalogRepo.SetSelectedCategory(WildcardCategory)
		}
		c.persistCategories(ctx, op)
	}

	return nil
}

// SubmitReview публикует отзыв: добавляет его в начало списка отзывов товара
// и увеличивает кэшированный счетчик на единицу. Требует идентифицированную сессию.
func (c *CatalogUseCase) SubmitReview(ctx context.Context, req *SubmitReviewReq) (*domain.Review, error) {
	const op = "CatalogUseCase.SubmitReview"

	if req.Author == nil {
		return nil, e.Wrap(op, e.ErrAuthRequired)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, e.Wrap(op, e.ErrInvalidRating)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, e.Wrap(op, e.ErrEmptyComment)
	}

	review := domain.NewReview(uuid.NewString(), req.Author, req.Rating, req.Comment, time.Now())
	if !c.catalogRepo.PrependReview(req.ProductID, review) {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	c.persistCatalog(ctx, op)
	return review, nil
}

// validateProduct проверяет корректность запроса на добавление товара.
func (c *CatalogUseCase) validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}
	if !req.Price.IsPositive() {
		return e.ErrPriceMustBePositive
	}
	if req.DiscountPrice != nil && !req.DiscountPrice.IsPositive() {
		return e.ErrInvalidPrice
	}
	if req.Image == nil {
		return e.ErrMissingFields
	}

	return nil
}

// persistCatalog перезаписывает снапшот каталога. Ошибка записи не
// откатывает мутацию состояния, только логируется.
func (c *CatalogUseCase) persistCatalog(ctx context.Context, op string) {
	if err := c.snapshots.SaveCatalog(ctx, c.catalogRepo.Products()); err != nil {
		c.logger.Warnf("failed to persist catalog snapshot: %v", e.Wrap(op, err))
	}
}

func (c *CatalogUseCase) persistCategories(ctx context.Context, op string) {
	if err := c.snapshots.SaveCategories(ctx, c.catalogRepo.Categories()); err != nil {
		c.logger.Warnf("failed to persist categories snapshot: %v", e.Wrap(op, err))
	}
}

// newShortID возвращает короткий идентификатор вида "P-3F2A9".
func newShortID(prefix string) string {
	id := uuid.NewString()
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:5])
}
