package ingest

import (
	"strings"
	"unicode"

	orderbookv1 "github.com/NassimBoussaid/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/NassimBoussaid/Matching-Engine/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxQuantity is the largest order size the engine accepts.
const maxQuantity uint64 = 1_000_000_000_000

// IsValidInteger reports whether s is digits with an optional leading sign.
func IsValidInteger(s string) bool {
	if s == "" {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		start = 1
		if len(s) == 1 {
			return false
		}
	}

	for _, r := range s[start:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidNumber reports whether s is a decimal number: digits with an
// optional leading sign and at most one dot.
func IsValidNumber(s string) bool {
	if s == "" {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		start = 1
		if len(s) == 1 {
			return false
		}
	}

	hasDot := false
	hasDigit := false
	for _, r := range s[start:] {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' && !hasDot:
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}

// IsEmptyOrWhitespace reports whether s contains no visible characters.
func IsEmptyOrWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateOrder applies the structural rules to an already-parsed order:
// non-empty fields, known enum values, a non-zero quantity within bounds and
// a non-negative price for LIMIT orders. Returns nil when the order is valid.
func ValidateOrder(order *orderbookv1.Order) *errors.ErrorDetails {
	if IsEmptyOrWhitespace(order.Instrument) {
		return errors.NewErrorDetails("instrument is empty", string(errors.OrderEmptyField), "instrument")
	}
	if IsEmptyOrWhitespace(string(order.Side)) ||
		IsEmptyOrWhitespace(string(order.Type)) ||
		IsEmptyOrWhitespace(string(order.Action)) {
		return errors.NewErrorDetails("required field is empty", string(errors.OrderEmptyField), "")
	}

	if order.Side != orderbookv1.SideBuy && order.Side != orderbookv1.SideSell {
		return errors.NewErrorDetails("side must be BUY or SELL", string(errors.OrderInvalidSide), "side")
	}

	if order.Type != orderbookv1.OrderTypeLimit && order.Type != orderbookv1.OrderTypeMarket {
		return errors.NewErrorDetails("type must be LIMIT or MARKET", string(errors.OrderInvalidType), "type")
	}

	if order.Action != orderbookv1.ActionNew &&
		order.Action != orderbookv1.ActionModify &&
		order.Action != orderbookv1.ActionCancel {
		return errors.NewErrorDetails("action must be NEW, MODIFY or CANCEL", string(errors.OrderInvalidAction), "action")
	}

	if order.Quantity == 0 || order.Quantity > maxQuantity {
		return errors.NewErrorDetails("quantity out of range", string(errors.OrderInvalidQuantity), "quantity")
	}

	if order.Type == orderbookv1.OrderTypeLimit && order.Price.LessThan(decimal.Zero) {
		return errors.NewErrorDetails("limit price cannot be negative", string(errors.OrderInvalidPrice), "price")
	}

	return nil
}
