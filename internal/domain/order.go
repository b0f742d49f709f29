package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// ParseOrderStatus проверяет и возвращает статус заказа.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// Order — неизменяемая запись о заказе: снимок позиций корзины
// на момент оформления. Меняется только статус, и только администратором.
type Order struct {
	ID        string
	UserName  string
	UserEmail string
	Items     []CartLine
	Total     decimal.Decimal
	Date      time.Time
	Status    OrderStatus
}

func NewOrder(id string, user *User, items []CartLine, total decimal.Decimal, date time.Time) *Order {
	return &Order{
		ID:        id,
		UserName:  user.Name,
		UserEmail: user.Email,
		Items:     items,
		Total:     total,
		Date:      date,
		Status:    OrderStatusPending,
	}
}
