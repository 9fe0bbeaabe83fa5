package orderbookv1

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNilOrder is returned when a nil order is handed to a level.
	ErrNilOrder = errors.New("order cannot be nil")
	// ErrOrderNotFound is returned when an order id is not resting at a level.
	ErrOrderNotFound = errors.New("order not found in level")
)

// Level represents a price level in the order book: the resting orders that
// share one price on one side, in arrival order, with a cached sum of their
// quantities. Arrival order is the tie-break for price-time priority.
type Level struct {
	Price         decimal.Decimal
	Orders        []*Order
	TotalQuantity uint64
}

// NewLevel creates an empty Level with the specified price.
func NewLevel(price decimal.Decimal) *Level {
	return &Level{
		Price:  price,
		Orders: make([]*Order, 0),
	}
}

// Enqueue appends an order to the tail of the level and updates the cached total.
func (l *Level) Enqueue(order *Order) error {
	if order == nil {
		return ErrNilOrder
	}

	l.Orders = append(l.Orders, order)
	l.TotalQuantity += order.Quantity
	return nil
}

// Head returns the order with time priority at this level, or nil if empty.
func (l *Level) Head() *Order {
	if len(l.Orders) == 0 {
		return nil
	}
	return l.Orders[0]
}

// Pop removes the head order. The cached total is reduced by the head's
// remaining quantity.
func (l *Level) Pop() {
	if len(l.Orders) == 0 {
		return
	}
	l.TotalQuantity -= l.Orders[0].Quantity
	l.Orders = l.Orders[1:]
}

// Reduce lowers the cached total after a partial execution against this level.
func (l *Level) Reduce(qty uint64) {
	l.TotalQuantity -= qty
}

// Remove deletes the order with the given id from the level, rebuilding the
// cached total. Cancels are rare, so the linear scan is fine.
func (l *Level) Remove(orderID uint64) error {
	kept := l.Orders[:0]
	total := uint64(0)
	found := false

	for _, o := range l.Orders {
		if o.OrderID == orderID {
			found = true
			continue
		}
		kept = append(kept, o)
		total += o.Quantity
	}

	if !found {
		return ErrOrderNotFound
	}

	l.Orders = kept
	l.TotalQuantity = total
	return nil
}

// IsEmpty checks if the level has no resting orders.
func (l *Level) IsEmpty() bool {
	return len(l.Orders) == 0
}

// OrderCount returns the number of resting orders at this level.
func (l *Level) OrderCount() int {
	return len(l.Orders)
}
