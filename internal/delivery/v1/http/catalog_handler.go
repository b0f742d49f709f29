package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewCatalogHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров витрины
//	@Description	Возвращает товары, отфильтрованные по поиску и категории
//	@Tags			products
//	@Produce		json
//	@Param			search		query		string	false	"Подстрока поиска по имени и описанию"
//	@Param			category	query		string	false	"Категория; по умолчанию — выбранная на витрине"
//	@Success		200			{array}		productResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req := &usecase.FilterReq{Search: r.URL.Query().Get("search")}
	if v := r.URL.Query().Get("category"); v != "" {
		req.Category = &v
	}

	products := h.catalogUC.Filter(r.Context(), req)
	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Идентификатор товара"
//	@Success	200	{object}	productResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogUC.ProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// addProduct
//
//	@Summary		Добавление товара (администратор)
//	@Description	Создает товар с изображениями из multipart-формы
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name			formData	string	true	"Название"
//	@Param			description		formData	string	false	"Описание"
//	@Param			category		formData	string	true	"Категория"
//	@Param			price			formData	string	true	"Цена"
//	@Param			discountPrice	formData	string	false	"Скидочная цена"
//	@Param			features		formData	string	false	"Особенности, JSON-массив строк"
//	@Param			options			formData	string	false	"Опции, JSON-массив"
//	@Param			isFeatured		formData	boolean	false	"Флаг витрины"
//	@Param			image			formData	file	true	"Основное изображение"
//	@Param			mockupImage		formData	file	false	"Дополнительное изображение"
//	@Success		201				{object}	productResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/products [post]
func (h *CatalogHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 40 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := parseProductForm(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUC.AddProduct(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// removeProduct
//
//	@Summary	Удаление товара (администратор)
//	@Tags		products
//	@Param		id	path	string	true	"Идентификатор товара"
//	@Success	204
//	@Router		/products/{id} [delete]
func (h *CatalogHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.RemoveProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// submitReview
//
//	@Summary	Публикация отзыва
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Идентификатор товара"
//	@Param		review	body		reviewRequest	true	"Отзыв"
//	@Success	201		{object}	reviewResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/products/{id}/reviews [post]
func (h *CatalogHandler) submitReview(w http.ResponseWriter, r *http.Request) {
	var body reviewRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	req := usecase.NewSubmitReviewReq(chi.URLParam(r, "id"), body.Rating, body.Comment, sessionUser(r))
	review, err := h.catalogUC.SubmitReview(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, reviewResponse{
		ID:         review.ID,
		UserID:     review.UserID,
		UserName:   review.UserName,
		UserAvatar: review.UserAvatar,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Date:       review.Date,
	})
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, h.catalogUC.Categories(r.Context()))
}

// addCategory
//
//	@Summary	Добавление категории (администратор)
//	@Tags		categories
//	@Accept		json
//	@Param		category	body	categoryRequest	true	"Категория"
//	@Success	201
//	@Failure	400	{object}	ErrorResponse
//	@Router		/categories [post]
func (h *CatalogHandler) addCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUC.AddCategory(r.Context(), body.Name); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, h.catalogUC.Categories(r.Context()))
}

// removeCategory
//
//	@Summary	Удаление категории (администратор)
//	@Tags		categories
//	@Param		name	path	string	true	"Имя категории"
//	@Success	200
//	@Failure	400	{object}	ErrorResponse
//	@Router		/categories/{name} [delete]
func (h *CatalogHandler) removeCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.RemoveCategory(r.Context(), chi.URLParam(r, "name")); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, h.catalogUC.Categories(r.Context()))
}

// selectCategory
//
//	@Summary	Выбор активной категории витрины
//	@Tags		categories
//	@Accept		json
//	@Param		category	body	categoryRequest	true	"Категория"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/categories/selected [put]
func (h *CatalogHandler) selectCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUC.SelectCategory(r.Context(), body.Name); err != nil {
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

// parseProductForm собирает запрос на добавление товара из multipart-формы.
func parseProductForm(r *http.Request) (*usecase.AddProductReq, error) {
	name := r.FormValue("name")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")

	if name == "" || category == "" || priceStr == "" {
		return nil, e.ErrMissingFields
	}

	price, err := parsePrice(priceStr)
	if err != nil {
		return nil, err
	}

	req := &usecase.AddProductReq{
		Name:        name,
		Description: r.FormValue("description"),
		Category:    category,
		Price:       price,
		IsFeatured:  strings.EqualFold(r.FormValue("isFeatured"), "true"),
	}

	if v := r.FormValue("discountPrice"); v != "" {
		discount, err := parsePrice(v)
		if err != nil {
			return nil, err
		}
		req.DiscountPrice = &discount
	}

	if v := r.FormValue("features"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Features); err != nil {
			return nil, e.ErrStatusBadRequest
		}
	}

	if v := r.FormValue("options"); v != "" {
		var options []struct {
			Name   string   `json:"name"`
			Values []string `json:"values"`
		}
		if err := json.Unmarshal([]byte(v), &options); err != nil {
			return nil, e.ErrStatusBadRequest
		}
		for _, o := range options {
			req.Options = append(req.Options, domain.ProductOption{Name: o.Name, Values: o.Values})
		}
	}

	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		image, err := readImage(files[0])
		if err != nil {
			return nil, err
		}
		req.Image = image
	}

	if files := r.MultipartForm.File["mockupImage"]; len(files) > 0 {
		mockup, err := readImage(files[0])
		if err != nil {
			return nil, err
		}
		req.MockupImage = mockup
	}

	return req, nil
}
