package e

import "fmt"

var (
	// Ошибки валидации (400 Bad Request)
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrInvalidPrice        = fmt.Errorf("invalid price format")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrCategoryNameEmpty   = fmt.Errorf("category name is empty")
	ErrCategoryProtected   = fmt.Errorf("wildcard category cannot be deleted")
	ErrInvalidRating       = fmt.Errorf("rating must be between 1 and 5")
	ErrEmptyComment        = fmt.Errorf("review comment is empty")
	ErrEmptyMessage        = fmt.Errorf("chat message is empty")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidStatus       = fmt.Errorf("unknown order status")
	ErrUnsupportedMedia    = fmt.Errorf("unsupported media type")
	ErrFileTooLarge        = fmt.Errorf("file is too large")
	ErrExpectedMultipart   = fmt.Errorf("expected multipart/form-data")

	// Ошибки авторизации (401/403)
	ErrAuthRequired    = fmt.Errorf("authenticated session required")
	ErrAdminOnly       = fmt.Errorf("admin session required")
	ErrWrongAdminPass  = fmt.Errorf("admin password incorrect")
	ErrSessionNotFound = fmt.Errorf("session not found")

	// Ошибки оформления заказа
	ErrEmptyCartCheckout = fmt.Errorf("cart is empty")

	// Не найдено (404)
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// Внутренние ошибки
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrStatusBadRequest    = fmt.Errorf("bad request")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
