package engine

import (
	"sort"

	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	orderbook "github.com/NassimBoussaid/Matching-Engine/internal/usecase/orderbook"
	"github.com/NassimBoussaid/Matching-Engine/pkg/logger"
)

// Engine routes order instructions to per-instrument books and merges their
// result logs into one deterministic output stream.
//
// The engine is strictly single-threaded: Process returns only after every
// event for the input has been appended to the instrument's result log, and
// no method is safe for concurrent use.
type Engine struct {
	books       map[string]*orderbook.Book
	instruments []string // first-seen order, keeps Drain deterministic
	clock       *orderbookv1.Clock
	logger      *logger.Logger
}

// NewEngine creates an engine with a freshly reset execution clock. The
// clock is shared by every book the engine creates.
func NewEngine(log *logger.Logger) *Engine {
	return &Engine{
		books:  make(map[string]*orderbook.Book),
		clock:  orderbookv1.NewClock(),
		logger: log,
	}
}

// book returns the instrument's book, creating it on first touch.
func (e *Engine) book(instrument string) *orderbook.Book {
	if b, ok := e.books[instrument]; ok {
		return b
	}

	b := orderbook.NewBook(instrument, e.clock)
	e.books[instrument] = b
	e.instruments = append(e.instruments, instrument)

	e.logger.Debug("Order book created", logger.Field{
		Key:   "instrument",
		Value: instrument,
	})

	return b
}

// Process routes one instruction to its instrument book. Records already
// rejected by the ingest layer are echoed to the result log untouched.
func (e *Engine) Process(order orderbookv1.Order) {
	book := e.book(order.Instrument)

	if order.Status == orderbookv1.StatusRejected {
		book.Append(order)
		return
	}

	switch order.Action {
	case orderbookv1.ActionNew:
		book.Add(order)
	case orderbookv1.ActionModify:
		book.Modify(order)
	case orderbookv1.ActionCancel:
		book.Cancel(order)
	}
}

// Drain concatenates every instrument's result log, in instrument first-seen
// order, and stable sorts by timestamp. Ties keep insertion order, which for
// a single instrument is the book's natural emission order.
func (e *Engine) Drain() []orderbookv1.Order {
	var all []orderbookv1.Order
	for _, instrument := range e.instruments {
		all = append(all, e.books[instrument].Results()...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})

	return all
}

// Stats tallies emitted events by status across all instruments.
func (e *Engine) Stats() Stats {
	var s Stats
	for _, instrument := range e.instruments {
		for _, event := range e.books[instrument].Results() {
			s.count(event.Status)
		}
	}
	return s
}
