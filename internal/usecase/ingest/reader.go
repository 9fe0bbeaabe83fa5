package ingest

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/NassimBoussaid/Matching-Engine/pkg/errors"
	"github.com/NassimBoussaid/Matching-Engine/pkg/logger"
	"github.com/shopspring/decimal"
)

// fieldCount is the expected number of CSV columns on an input line.
const fieldCount = 8

// Reader parses order instruction CSV files into Order records. Lines that
// fail structural validation come back with Status REJECTED and the fields
// parsed before the first invalid one; the engine echoes them to the output
// untouched.
type Reader struct {
	logger logger.Interface
}

// NewReader creates a CSV reader.
func NewReader(log logger.Interface) *Reader {
	return &Reader{logger: log}
}

// ParseFile reads an input file: the header line is skipped, blank lines are
// ignored, and every remaining line yields exactly one Order. NEW lines
// reusing an order id already seen in the stream are flagged REJECTED.
func (r *Reader) ParseFile(path string) ([]orderbookv1.Order, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewTracer("could not open input file: " + path).Wrap(err)
	}
	defer file.Close()

	var orders []orderbookv1.Order
	seenOrderIDs := make(map[uint64]struct{})

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	header := true
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if header {
			header = false
			continue
		}
		if IsEmptyOrWhitespace(line) {
			continue
		}

		order := r.parseLine(line, lineNumber)

		// In-stream duplicate detection for NEW actions only.
		if order.Status != orderbookv1.StatusRejected && order.Action == orderbookv1.ActionNew {
			if _, dup := seenOrderIDs[order.OrderID]; dup {
				order.Status = orderbookv1.StatusRejected
				r.logger.Debug("Duplicate order id in input stream",
					logger.Field{Key: "line", Value: lineNumber},
					logger.Field{Key: "orderID", Value: order.OrderID},
				)
			} else {
				seenOrderIDs[order.OrderID] = struct{}{}
			}
		}

		orders = append(orders, order)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.NewTracer("could not read input file: " + path).Wrap(err)
	}

	return orders, nil
}

// parseLine converts one CSV line to an Order. Parsing stops at the first
// invalid field; fields parsed up to that point are preserved on the
// rejected record. An invalid quantity also keeps the action field.
func (r *Reader) parseLine(line string, lineNumber int) orderbookv1.Order {
	order := orderbookv1.Order{
		Price:          decimal.Zero,
		ExecutionPrice: decimal.Zero,
	}

	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		r.logger.Warn("Unexpected field count, rejecting order",
			logger.Field{Key: "line", Value: lineNumber},
			logger.Field{Key: "fields", Value: len(fields)},
		)
		r.salvageFields(&order, fields)
		order.Status = orderbookv1.StatusRejected
		return order
	}

	ts, ok := parseUnsigned(strings.TrimSpace(fields[0]))
	if !ok {
		order.Status = orderbookv1.StatusRejected
		return order
	}
	order.Timestamp = ts

	id, ok := parseUnsigned(strings.TrimSpace(fields[1]))
	if !ok {
		order.Status = orderbookv1.StatusRejected
		return order
	}
	order.OrderID = id

	order.Instrument = strings.TrimSpace(fields[2])
	order.Side = orderbookv1.Side(strings.ToUpper(strings.TrimSpace(fields[3])))
	order.Type = orderbookv1.OrderType(strings.ToUpper(strings.TrimSpace(fields[4])))

	qtyField := strings.TrimSpace(fields[5])
	qty, ok := parseUnsigned(qtyField)
	if !ok {
		order.Quantity = 0
		order.Action = orderbookv1.Action(strings.ToUpper(strings.TrimSpace(fields[7])))
		order.Status = orderbookv1.StatusRejected
		return order
	}
	order.Quantity = qty

	priceField := strings.TrimSpace(fields[6])
	if !IsValidNumber(priceField) {
		order.Status = orderbookv1.StatusRejected
		return order
	}
	price, err := decimal.NewFromString(strings.TrimPrefix(priceField, "+"))
	if err != nil {
		order.Status = orderbookv1.StatusRejected
		return order
	}
	order.Price = price

	order.Action = orderbookv1.Action(strings.ToUpper(strings.TrimSpace(fields[7])))

	if details := ValidateOrder(&order); details != nil {
		r.logger.Debug("Order failed validation",
			logger.Field{Key: "line", Value: lineNumber},
			logger.Field{Key: "code", Value: details.Code},
			logger.Field{Key: "field", Value: details.Field},
		)
		order.Status = orderbookv1.StatusRejected
		return order
	}

	return order
}

// salvageFields recovers what it can from a line with the wrong column count
// so the rejected record still identifies the instruction.
func (r *Reader) salvageFields(order *orderbookv1.Order, fields []string) {
	if len(fields) >= 2 {
		if ts, ok := parseUnsigned(strings.TrimSpace(fields[0])); ok {
			order.Timestamp = ts
		}
		if id, ok := parseUnsigned(strings.TrimSpace(fields[1])); ok {
			order.OrderID = id
		}
	}
	if len(fields) >= 3 {
		order.Instrument = strings.TrimSpace(fields[2])
	}
	if len(fields) >= 4 {
		order.Side = orderbookv1.Side(strings.TrimSpace(fields[3]))
	}
	if len(fields) >= 5 {
		order.Type = orderbookv1.OrderType(strings.TrimSpace(fields[4]))
	}
	if len(fields) >= 6 {
		if qty, ok := parseUnsigned(strings.TrimSpace(fields[5])); ok {
			order.Quantity = qty
		}
	}
	if len(fields) >= 7 {
		if IsValidNumber(strings.TrimSpace(fields[6])) {
			if price, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(fields[6]), "+")); err == nil {
				order.Price = price
			}
		}
	}
	if len(fields) >= 8 {
		order.Action = orderbookv1.Action(strings.TrimSpace(fields[7]))
	}
}

// parseUnsigned parses a non-negative integer, tolerating a leading plus.
func parseUnsigned(s string) (uint64, bool) {
	if !IsValidInteger(s) || strings.HasPrefix(s, "-") {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
