package http

import (
	"net/http"

	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, logger: logger}
}

// getCart
//
//	@Summary	Текущая корзина
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	cartResponse
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartUC.Get(r.Context(), cartToken(r))
	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Позиция с той же парой товар+опции увеличивает количество
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		addItemRequest	true	"Товар и выбранные опции"
//	@Success		200		{object}	cartResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUC.AddLine(r.Context(), usecase.NewAddLineReq(cartToken(r), body.ProductID, body.SelectedOptions))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// setQuantity
//
//	@Summary		Изменение количества позиции
//	@Description	Количество меньше 1 приводится к 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			lineId		path		string				true	"Идентификатор позиции"
//	@Param			quantity	body		setQuantityRequest	true	"Новое количество"
//	@Success		200			{object}	cartResponse
//	@Router			/cart/items/{lineId} [patch]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var body setQuantityRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	cart := h.cartUC.SetQuantity(r.Context(), cartToken(r), chi.URLParam(r, "lineId"), body.Quantity)
	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		lineId	path		string	true	"Идентификатор позиции"
//	@Success	200		{object}	cartResponse
//	@Router		/cart/items/{lineId} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart := h.cartUC.RemoveLine(r.Context(), cartToken(r), chi.URLParam(r, "lineId"))
	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

type addItemRequest struct {
	ProductID       string            `json:"productId"`
	SelectedOptions map[string]string `json:"selectedOptions"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}
