package orderbook

import (
	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/shopspring/decimal"
)

// executeMarket walks the opposing side from the best price outward until the
// taker is filled or liquidity runs out. A market order that trades nothing
// is rejected; a partially filled remainder is dropped. Market orders never
// rest, so the taker leaves the lookup when the walk ends.
func (b *Book) executeMarket(taker orderbookv1.Order) {
	opposite := b.opposite(taker.Side)
	remaining := taker.Quantity

	for remaining > 0 {
		level := opposite.Best()
		if level == nil {
			break
		}
		remaining = b.trade(taker, level, remaining, opposite)
	}

	if remaining == taker.Quantity {
		rejected := *b.lookup[taker.OrderID]
		rejected.Timestamp = b.clock.Next(taker.Timestamp)
		rejected.Action = taker.Action
		rejected.Status = orderbookv1.StatusRejected
		rejected.ClearExecutionFields()
		b.results = append(b.results, rejected)
	}

	delete(b.lookup, taker.OrderID)
}

// executeLimit first reports PENDING when the order would not cross, then
// sweeps the opposing side while the best price is still within the limit,
// and finally rests any remainder at the incoming price.
func (b *Book) executeLimit(taker orderbookv1.Order) {
	opposite := b.opposite(taker.Side)
	remaining := taker.Quantity

	if best := opposite.Best(); best == nil || !crosses(taker, best.Price) {
		pending := *b.lookup[taker.OrderID]
		pending.Timestamp = b.clock.Next(taker.Timestamp)
		pending.Action = taker.Action
		pending.Status = orderbookv1.StatusPending
		pending.Quantity = remaining
		pending.ClearExecutionFields()
		b.results = append(b.results, pending)
	}

	for remaining > 0 {
		level := opposite.Best()
		if level == nil || !crosses(taker, level.Price) {
			break
		}
		remaining = b.trade(taker, level, remaining, opposite)
	}

	if remaining == 0 {
		delete(b.lookup, taker.OrderID)
		return
	}

	resting := *b.lookup[taker.OrderID]
	resting.Quantity = remaining
	resting.Price = taker.Price
	resting.Status = orderbookv1.StatusPending
	resting.ClearExecutionFields()

	side := b.asks
	if taker.IsBuy() {
		side = b.bids
	}
	_ = side.Upsert(taker.Price).Enqueue(&resting)
	b.lookup[taker.OrderID] = &resting
}

// trade matches the taker against the head of one opposing level and emits
// the event pair: taker first, then maker, sharing a single execution
// timestamp. The execution price is always the resting (maker) price.
// Returns the taker's remaining quantity after the trade.
func (b *Book) trade(taker orderbookv1.Order, level *orderbookv1.Level, remaining uint64, opposite *orderbookv1.Ladder) uint64 {
	maker := level.Head()
	makerBefore := *maker

	tradeQty := min(remaining, maker.Quantity)
	ts := b.clock.Next(taker.Timestamp)

	remaining -= tradeQty
	maker.Quantity -= tradeQty
	level.Reduce(tradeQty)

	takerEvent := *b.lookup[taker.OrderID]
	takerEvent.Timestamp = ts
	takerEvent.Action = taker.Action
	takerEvent.ExecutedQuantity = tradeQty
	takerEvent.ExecutionPrice = level.Price
	takerEvent.CounterpartyID = makerBefore.OrderID
	takerEvent.Quantity = remaining
	takerEvent.Status = fillStatus(remaining)
	b.results = append(b.results, takerEvent)
	b.executed[taker.OrderID] += tradeQty

	makerEvent := makerBefore
	makerEvent.Timestamp = ts
	makerEvent.ExecutedQuantity = tradeQty
	makerEvent.ExecutionPrice = level.Price
	makerEvent.CounterpartyID = taker.OrderID
	makerEvent.Quantity = maker.Quantity
	makerEvent.Status = fillStatus(maker.Quantity)
	b.results = append(b.results, makerEvent)
	b.executed[makerBefore.OrderID] += tradeQty

	if maker.Quantity == 0 {
		delete(b.lookup, makerBefore.OrderID)
		level.Pop()
	}
	if level.IsEmpty() {
		opposite.Remove(level.Price)
	}

	return remaining
}

// opposite returns the ladder an incoming order matches against.
func (b *Book) opposite(side orderbookv1.Side) *orderbookv1.Ladder {
	if side == orderbookv1.SideBuy {
		return b.asks
	}
	return b.bids
}

// crosses reports whether a limit taker can trade at the given opposing price.
func crosses(taker orderbookv1.Order, oppositePrice decimal.Decimal) bool {
	if taker.IsBuy() {
		return oppositePrice.LessThanOrEqual(taker.Price)
	}
	return oppositePrice.GreaterThanOrEqual(taker.Price)
}

func fillStatus(remaining uint64) orderbookv1.Status {
	if remaining == 0 {
		return orderbookv1.StatusExecuted
	}
	return orderbookv1.StatusPartiallyExecuted
}
