package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/NassimBoussaid/Matching-Engine/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReader(t *testing.T) *Reader {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return NewReader(log)
}

func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "timestamp,order_id,instrument,side,type,quantity,price,action\n" + strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Test 1: a well-formed line parses with trimming and uppercasing
func TestReader_ParseValidLine(t *testing.T) {
	r := newTestReader(t)

	orders, err := r.ParseFile(writeInput(t, " 1000 , 1 , AAPL , buy , limit , 100 , 150.25 , new "))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, uint64(1000), o.Timestamp)
	assert.Equal(t, uint64(1), o.OrderID)
	assert.Equal(t, "AAPL", o.Instrument)
	assert.Equal(t, orderbookv1.SideBuy, o.Side)
	assert.Equal(t, orderbookv1.OrderTypeLimit, o.Type)
	assert.Equal(t, uint64(100), o.Quantity)
	assert.Equal(t, "150.25", o.Price.StringFixed(2))
	assert.Equal(t, orderbookv1.ActionNew, o.Action)
	assert.NotEqual(t, orderbookv1.StatusRejected, o.Status)
}

// Test 2: blank lines are skipped, the header is not an order
func TestReader_SkipsHeaderAndBlankLines(t *testing.T) {
	r := newTestReader(t)

	orders, err := r.ParseFile(writeInput(t,
		"1000,1,AAPL,BUY,LIMIT,100,150.25,NEW",
		"   ",
		"",
		"2000,2,AAPL,SELL,LIMIT,50,150.25,NEW",
	))
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

// Test 3: a line with the wrong column count is rejected but keeps the
// fields that still parse
func TestReader_WrongFieldCount(t *testing.T) {
	r := newTestReader(t)

	orders, err := r.ParseFile(writeInput(t, "1000,7,AAPL,BUY,LIMIT,100,150.25"))
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, orderbookv1.StatusRejected, o.Status)
	assert.Equal(t, uint64(1000), o.Timestamp)
	assert.Equal(t, uint64(7), o.OrderID)
	assert.Equal(t, "AAPL", o.Instrument)
	assert.Equal(t, uint64(100), o.Quantity)
}

// Test 4: numeric field failures reject the line
func TestReader_InvalidNumerics(t *testing.T) {
	r := newTestReader(t)

	tests := []struct {
		name string
		line string
	}{
		{"bad timestamp", "abc,1,AAPL,BUY,LIMIT,100,150.25,NEW"},
		{"bad order id", "1000,xyz,AAPL,BUY,LIMIT,100,150.25,NEW"},
		{"negative quantity", "1000,1,AAPL,BUY,LIMIT,-5,150.25,NEW"},
		{"zero quantity", "1000,1,AAPL,BUY,LIMIT,0,150.25,NEW"},
		{"quantity above cap", "1000,1,AAPL,BUY,LIMIT,1000000000001,150.25,NEW"},
		{"malformed price", "1000,1,AAPL,BUY,LIMIT,100,12.3.4,NEW"},
		{"negative limit price", "1000,1,AAPL,BUY,LIMIT,100,-1.00,NEW"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := r.ParseFile(writeInput(t, tc.line))
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, orderbookv1.StatusRejected, orders[0].Status)
		})
	}
}

// Test 5: enum and empty-field failures reject the line
func TestReader_InvalidEnums(t *testing.T) {
	r := newTestReader(t)

	tests := []struct {
		name string
		line string
	}{
		{"bad side", "1000,1,AAPL,HOLD,LIMIT,100,150.25,NEW"},
		{"bad type", "1000,1,AAPL,BUY,STOP,100,150.25,NEW"},
		{"bad action", "1000,1,AAPL,BUY,LIMIT,100,150.25,AMEND"},
		{"empty instrument", "1000,1, ,BUY,LIMIT,100,150.25,NEW"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			orders, err := r.ParseFile(writeInput(t, tc.line))
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, orderbookv1.StatusRejected, orders[0].Status)
		})
	}
}

// Test 6: a MARKET order ignores its price on input
func TestReader_MarketPriceIgnored(t *testing.T) {
	r := newTestReader(t)

	orders, err := r.ParseFile(writeInput(t, "1000,1,AAPL,BUY,MARKET,100,-1,NEW"))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.NotEqual(t, orderbookv1.StatusRejected, orders[0].Status)
}

// Test 7: in-stream duplicate NEW ids reject the later line only
func TestReader_DuplicateNewIDs(t *testing.T) {
	r := newTestReader(t)

	orders, err := r.ParseFile(writeInput(t,
		"1000,1,AAPL,BUY,LIMIT,100,150.25,NEW",
		"2000,1,AAPL,SELL,LIMIT,50,150.25,NEW",
		"3000,1,AAPL,BUY,LIMIT,80,150.20,MODIFY",
	))
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.NotEqual(t, orderbookv1.StatusRejected, orders[0].Status)
	assert.Equal(t, orderbookv1.StatusRejected, orders[1].Status)
	// MODIFY reuses the id legitimately
	assert.NotEqual(t, orderbookv1.StatusRejected, orders[2].Status)
}

// Test 8: a missing input file surfaces an error
func TestReader_MissingFile(t *testing.T) {
	r := newTestReader(t)

	_, err := r.ParseFile(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	assert.Error(t, err)
}
