package usecase

import (
	"github.com/akshop/go-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG

// FilterReq — запрос фильтрации каталога. Nil Category означает
// использовать выбранную в состоянии категорию.
type FilterReq struct {
	Search   string
	Category *string
}

// AddProductReq — запрос администратора на добавление товара.
type AddProductReq struct {
	Name          string
	Description   string
	Category      string
	Price         decimal.Decimal
	DiscountPrice *decimal.Decimal
	Features      []string
	Options       []domain.ProductOption
	IsFeatured    bool
	Image         *ProductImage
	MockupImage   *ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte
	MimeType string
	Size     int64
	Name     string
}

// UploadImageReq — запрос на сохранение изображения в хранилище.
type UploadImageReq struct {
	ProductName string
	Image       ProductImage
}

// SubmitReviewReq — запрос на публикацию отзыва.
type SubmitReviewReq struct {
	ProductID string
	Rating    int
	Comment   string
	Author    *domain.User
}

// CART

// AddLineReq — запрос на добавление товара в корзину.
type AddLineReq struct {
	CartToken       string
	ProductID       string
	SelectedOptions map[string]string
}

// SESSION

type LoginReq struct {
	Name     string
	Email    string
	Password string
}

type LoginRes struct {
	Token string
	User  domain.User
}

// SETTINGS

// UpdateSettingsReq — запрос на обновление настроек магазина.
// NewPassword заменяет переопределение пароля администратора, если не пуст.
type UpdateSettingsReq struct {
	Settings    domain.ShopSettings
	NewPassword string
}

// CHAT

// ChatReq — запрос ответа ассистента. ConversationID ограничивает
// переписку одним запросом в полете.
type ChatReq struct {
	ConversationID string
	History        []domain.ChatMessage
}

// AssistantReq — обращение к внешнему сервису генерации текста.
type AssistantReq struct {
	SystemInstruction string
	Message           string
}

// MAPPERS

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(productName string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewAddLineReq(cartToken, productID string, selectedOptions map[string]string) *AddLineReq {
	return &AddLineReq{
		CartToken:       cartToken,
		ProductID:       productID,
		SelectedOptions: selectedOptions,
	}
}

func NewSubmitReviewReq(productID string, rating int, comment string, author *domain.User) *SubmitReviewReq {
	return &SubmitReviewReq{
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		Author:    author,
	}
}

func NewLoginReq(name, email, password string) *LoginReq {
	return &LoginReq{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

func NewAssistantReq(systemInstruction, message string) *AssistantReq {
	return &AssistantReq{
		SystemInstruction: systemInstruction,
		Message:           message,
	}
}
