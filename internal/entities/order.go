package entities

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "NEW"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusDone       OrderStatus = "DONE"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDone:
		return true
	}
	return false
}

type Order struct {
	ID     int64
	UserID int64
	Status OrderStatus
	// невалидна, пока сумма ни разу не считалась
	TotalAmount decimal.NullDecimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Positions []Position
}

// Position is a line item of an order. It has no lifecycle of its own.
type Position struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
}

type PositionInput struct {
	ProductID int64
	Quantity  int
}

// ValidatePositions checks that no product appears twice and every quantity
// fits a positive int4.
func ValidatePositions(positions []PositionInput) error {
	seen := make(map[int64]struct{}, len(positions))
	for _, p := range positions {
		if _, ok := seen[p.ProductID]; ok {
			return ErrDuplicateProduct
		}
		seen[p.ProductID] = struct{}{}
	}
	for _, p := range positions {
		if p.Quantity < 1 || p.Quantity > math.MaxInt32 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// maxTotal is the largest value total_amount numeric(10,2) can store.
var maxTotal = decimal.RequireFromString("99999999.99")

// CalculateTotal sums price × quantity over positions using prices keyed by
// product id. An empty list totals zero.
func CalculateTotal(positions []PositionInput, prices map[int64]decimal.Decimal) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range positions {
		price, ok := prices[p.ProductID]
		if !ok {
			return decimal.Decimal{}, UnknownProductError(p.ProductID)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	if total.GreaterThan(maxTotal) {
		return decimal.Decimal{}, ErrTotalOutOfRange
	}
	return total, nil
}

// OrderUpdate carries the optional parts of an order update. A nil field is
// absent from the request; a non-nil empty Positions clears the order.
type OrderUpdate struct {
	Positions *[]PositionInput
	Status    *OrderStatus
}

type OrderFilter struct {
	UserID          *int64
	Status          *OrderStatus
	TotalAmountFrom *decimal.Decimal
	TotalAmountTo   *decimal.Decimal
	ProductIDs      []int64
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	UpdatedAfter    *time.Time
	UpdatedBefore   *time.Time
}

type OrderEventType string

const (
	OrderCreated OrderEventType = "order.created"
	OrderUpdated OrderEventType = "order.updated"
	OrderDeleted OrderEventType = "order.deleted"
)

type OrderEvent struct {
	ID          string
	Type        OrderEventType
	OrderID     int64
	UserID      int64
	Status      OrderStatus
	TotalAmount decimal.NullDecimal
	OccurredAt  time.Time
}

func NewOrderEvent(t OrderEventType, o Order) OrderEvent {
	return OrderEvent{
		ID:          uuid.NewString(),
		Type:        t,
		OrderID:     o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OccurredAt:  time.Now().UTC(),
	}
}
