package ingest

import (
	"bufio"
	"fmt"
	"os"

	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/NassimBoussaid/Matching-Engine/pkg/errors"
)

// Header is the column layout of the output file.
const Header = "timestamp,order_id,instrument,side,type,quantity,price,action,status,executed_quantity,execution_price,counterparty_id"

// Writer renders drained result events to an output CSV file. Price fields
// carry exactly two fractional digits.
type Writer struct{}

// NewWriter creates a CSV writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes the header followed by one line per event.
func (w *Writer) WriteFile(path string, events []orderbookv1.Order) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewTracer("could not open output file: " + path).Wrap(err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if _, err := fmt.Fprintln(buf, Header); err != nil {
		return errors.NewTracer("could not write output file: " + path).Wrap(err)
	}

	for i := range events {
		if _, err := fmt.Fprintln(buf, FormatEvent(&events[i])); err != nil {
			return errors.NewTracer("could not write output file: " + path).Wrap(err)
		}
	}

	if err := buf.Flush(); err != nil {
		return errors.NewTracer("could not flush output file: " + path).Wrap(err)
	}
	return nil
}

// FormatEvent renders a single result event as an output CSV line.
func FormatEvent(event *orderbookv1.Order) string {
	return fmt.Sprintf("%d,%d,%s,%s,%s,%d,%s,%s,%s,%d,%s,%d",
		event.Timestamp,
		event.OrderID,
		event.Instrument,
		event.Side,
		event.Type,
		event.Quantity,
		event.Price.StringFixed(2),
		event.Action,
		event.Status,
		event.ExecutedQuantity,
		event.ExecutionPrice.StringFixed(2),
		event.CounterpartyID,
	)
}
