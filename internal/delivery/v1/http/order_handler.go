package http

import (
	"net/http"

	"github.com/akshop/go-backend/internal/domain"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

// checkout
//
//	@Summary		Оформление заказа из текущей корзины
//	@Description	Требует идентифицированную сессию; корзина очищается
//	@Tags			orders
//	@Produce		json
//	@Success		201	{object}	orderResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/checkout [post]
func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderUC.PlaceOrder(r.Context(), cartToken(r), sessionUser(r))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listOwnOrders
//
//	@Summary	Заказы текущего покупателя, новые вперед
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		orderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) listOwnOrders(w http.ResponseWriter, r *http.Request) {
	user := sessionUser(r)
	if user == nil {
		WriteError(w, e.ErrAuthRequired)
		return
	}

	orders := h.orderUC.OrdersFor(r.Context(), user.Email)
	WriteSuccess(w, http.StatusOK, toOrderResponses(orders))
}

// listAllOrders
//
//	@Summary	Весь журнал заказов (администратор)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}	orderResponse
//	@Router		/admin/orders [get]
func (h *OrderHandler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toOrderResponses(h.orderUC.ListAll(r.Context())))
}

// updateStatus
//
//	@Summary	Смена статуса заказа (администратор)
//	@Tags		admin
//	@Accept		json
//	@Param		id		path	string				true	"Идентификатор заказа"
//	@Param		status	body	setStatusRequest	true	"Новый статус"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/admin/orders/{id}/status [patch]
func (h *OrderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var body setStatusRequest
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.orderUC.UpdateStatus(r.Context(), chi.URLParam(r, "id"), domain.OrderStatus(body.Status)); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// summary
//
//	@Summary	Сводка дашборда (администратор)
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	summaryResponse
//	@Router		/admin/summary [get]
func (h *OrderHandler) summary(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toSummaryResponse(h.orderUC.Summary(r.Context())))
}

type setStatusRequest struct {
	Status string `json:"status"`
}
