package orderbookv1

import (
	"github.com/shopspring/decimal"
)

// Side represents which side of the book an order belongs to.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "BUY"
	// SideSell represents a sell (ask) order.
	SideSell Side = "SELL"
)

// OrderType represents the type of order.
type OrderType string

const (
	// OrderTypeLimit represents a limit order.
	OrderTypeLimit OrderType = "LIMIT"
	// OrderTypeMarket represents a market order.
	OrderTypeMarket OrderType = "MARKET"
)

// Action represents the instruction carried by an order record.
type Action string

const (
	// ActionNew creates a new order.
	ActionNew Action = "NEW"
	// ActionModify replaces the price and total quantity of a resting order.
	ActionModify Action = "MODIFY"
	// ActionCancel removes a resting order.
	ActionCancel Action = "CANCEL"
)

// Status represents the outcome reported by a result event.
type Status string

const (
	// StatusPending marks an order resting without an immediate match.
	StatusPending Status = "PENDING"
	// StatusPartiallyExecuted marks a trade that leaves quantity outstanding.
	StatusPartiallyExecuted Status = "PARTIALLY_EXECUTED"
	// StatusExecuted marks a trade that leaves no quantity outstanding.
	StatusExecuted Status = "EXECUTED"
	// StatusCanceled marks a successful cancellation.
	StatusCanceled Status = "CANCELED"
	// StatusRejected marks an instruction the engine refused.
	StatusRejected Status = "REJECTED"
)

// Order is the single record carried through the engine. It serves both as
// the input instruction and, copied per event, as the output record.
// Quantity on output is the remaining size after the event;
// ExecutedQuantity is the size traded in that single event.
type Order struct {
	Timestamp        uint64          `json:"timestamp"`
	OrderID          uint64          `json:"orderID"`
	Instrument       string          `json:"instrument"`
	Side             Side            `json:"side"`
	Type             OrderType       `json:"type"`
	Quantity         uint64          `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	Action           Action          `json:"action"`
	Status           Status          `json:"status,omitempty"`
	ExecutedQuantity uint64          `json:"executedQuantity"`
	ExecutionPrice   decimal.Decimal `json:"executionPrice"`
	CounterpartyID   uint64          `json:"counterpartyID"`
}

// IsBuy checks if the order is on the buy side.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell checks if the order is on the sell side.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// IsFilled checks if the order has no remaining quantity.
func (o *Order) IsFilled() bool {
	return o.Quantity == 0
}

// ClearExecutionFields zeroes the per-event execution data.
func (o *Order) ClearExecutionFields() {
	o.ExecutedQuantity = 0
	o.ExecutionPrice = decimal.Zero
	o.CounterpartyID = 0
}
