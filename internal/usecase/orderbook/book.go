package orderbook

import (
	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
)

// Book is the order book for a single instrument. It owns the two price
// ladders, the lookup of resting orders, the set of order ids ever accepted,
// the cumulative executed quantities and the append-only result log.
//
// The lookup holds exactly the orders with at least one unit resting in a
// ladder. Resting copies and lookup entries are the same object, so the
// quantity seen by matching and the quantity reported on MODIFY/CANCEL never
// diverge.
type Book struct {
	instrument string
	bids       *orderbookv1.Ladder
	asks       *orderbookv1.Ladder
	lookup     map[uint64]*orderbookv1.Order
	accepted   map[uint64]struct{}
	executed   map[uint64]uint64
	clock      *orderbookv1.Clock
	results    []orderbookv1.Order
}

// NewBook creates an empty book for one instrument. The clock is shared
// across every book of an engine.
func NewBook(instrument string, clock *orderbookv1.Clock) *Book {
	return &Book{
		instrument: instrument,
		bids:       orderbookv1.NewBidLadder(),
		asks:       orderbookv1.NewAskLadder(),
		lookup:     make(map[uint64]*orderbookv1.Order),
		accepted:   make(map[uint64]struct{}),
		executed:   make(map[uint64]uint64),
		clock:      clock,
	}
}

// Instrument returns the symbol this book matches.
func (b *Book) Instrument() string {
	return b.instrument
}

// Results returns the result log in emission order.
func (b *Book) Results() []orderbookv1.Order {
	return b.results
}

// Append adds a record to the result log without touching book state. The
// engine uses it to echo pre-validated rejections from the ingest layer.
func (b *Book) Append(record orderbookv1.Order) {
	b.results = append(b.results, record)
}

// Add processes a NEW order: duplicate ids are rejected, everything else is
// handed to the market or limit algorithm.
func (b *Book) Add(order orderbookv1.Order) {
	if _, seen := b.accepted[order.OrderID]; seen {
		rejected := order
		rejected.Status = orderbookv1.StatusRejected
		rejected.ClearExecutionFields()
		b.results = append(b.results, rejected)
		return
	}

	b.accepted[order.OrderID] = struct{}{}
	b.executed[order.OrderID] = 0

	pending := order
	pending.Status = orderbookv1.StatusPending
	pending.ClearExecutionFields()
	b.lookup[order.OrderID] = &pending

	if order.Type == orderbookv1.OrderTypeMarket {
		b.executeMarket(order)
		return
	}
	b.executeLimit(order)
}

// Modify replaces the price and total quantity of a resting order. The
// request quantity is the absolute new total, not a delta: the remaining
// size is the new total minus what has already been executed, and a new
// total at or below the executed quantity closes the order.
func (b *Book) Modify(request orderbookv1.Order) {
	resting, ok := b.lookup[request.OrderID]
	if !ok {
		rejected := request
		rejected.Status = orderbookv1.StatusRejected
		rejected.ClearExecutionFields()
		b.results = append(b.results, rejected)
		return
	}

	b.removeFromSide(resting)

	cum := b.executed[request.OrderID]
	var remaining uint64
	if request.Quantity > cum {
		remaining = request.Quantity - cum
	}

	// The side never changes on MODIFY; only price and quantity do.
	resting.Quantity = request.Quantity
	resting.Price = request.Price

	if remaining == 0 {
		closed := *resting
		closed.Timestamp = b.clock.Next(request.Timestamp)
		closed.Action = orderbookv1.ActionModify
		closed.Status = orderbookv1.StatusExecuted
		closed.Quantity = 0
		closed.ClearExecutionFields()
		b.results = append(b.results, closed)
		delete(b.lookup, request.OrderID)
		return
	}

	processing := *resting
	processing.Quantity = remaining
	processing.Timestamp = request.Timestamp
	processing.Action = orderbookv1.ActionModify

	if processing.Type == orderbookv1.OrderTypeMarket {
		b.executeMarket(processing)
		return
	}
	b.executeLimit(processing)
}

// Cancel removes a resting order and reports it CANCELED. The request's
// stated price is echoed back on the event; the resting order's own price is
// what locates it in the ladder.
func (b *Book) Cancel(request orderbookv1.Order) {
	resting, ok := b.lookup[request.OrderID]
	if !ok {
		rejected := request
		rejected.Status = orderbookv1.StatusRejected
		rejected.ClearExecutionFields()
		b.results = append(b.results, rejected)
		return
	}

	b.removeFromSide(resting)

	canceled := *resting
	canceled.Timestamp = b.clock.Next(request.Timestamp)
	canceled.Action = orderbookv1.ActionCancel
	canceled.Status = orderbookv1.StatusCanceled
	canceled.Quantity = 0
	canceled.Price = request.Price
	canceled.ClearExecutionFields()
	b.results = append(b.results, canceled)

	delete(b.lookup, request.OrderID)
}

// removeFromSide takes a resting order out of its price level, dropping the
// level if it empties.
func (b *Book) removeFromSide(order *orderbookv1.Order) {
	ladder := b.asks
	if order.IsBuy() {
		ladder = b.bids
	}

	level := ladder.Find(order.Price)
	if level == nil {
		return
	}

	_ = level.Remove(order.OrderID)
	if level.IsEmpty() {
		ladder.Remove(order.Price)
	}
}

// Bids returns the buy ladder, best price first.
func (b *Book) Bids() *orderbookv1.Ladder {
	return b.bids
}

// Asks returns the sell ladder, best price first.
func (b *Book) Asks() *orderbookv1.Ladder {
	return b.asks
}

// RestingOrder returns the lookup entry for an order id, or nil when the id
// has no quantity resting in the book.
func (b *Book) RestingOrder(orderID uint64) *orderbookv1.Order {
	return b.lookup[orderID]
}

// ExecutedQuantity returns the cumulative executed quantity for an order id.
func (b *Book) ExecutedQuantity(orderID uint64) uint64 {
	return b.executed[orderID]
}
