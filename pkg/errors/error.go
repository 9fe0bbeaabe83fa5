package errors

import (
	"bytes"
	"reflect"
	"strings"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// OrderInvalidFormat represents an input line that does not have the expected field layout.
	OrderInvalidFormat ErrorCode = "order_invalid_format"
	// OrderEmptyField represents a required order field that is empty or whitespace.
	OrderEmptyField ErrorCode = "order_empty_field"
	// OrderInvalidSide represents a side value outside BUY/SELL.
	OrderInvalidSide ErrorCode = "order_invalid_side"
	// OrderInvalidType represents a type value outside LIMIT/MARKET.
	OrderInvalidType ErrorCode = "order_invalid_type"
	// OrderInvalidAction represents an action value outside NEW/MODIFY/CANCEL.
	OrderInvalidAction ErrorCode = "order_invalid_action"
	// OrderInvalidQuantity represents a quantity that is zero, negative or above the allowed maximum.
	OrderInvalidQuantity ErrorCode = "order_invalid_quantity"
	// OrderInvalidPrice represents a price that is not a valid number or is negative for a LIMIT order.
	OrderInvalidPrice ErrorCode = "order_invalid_price"
	// OrderInvalidTimestamp represents a timestamp that is not a parseable unsigned integer.
	OrderInvalidTimestamp ErrorCode = "order_invalid_timestamp"
	// OrderInvalidID represents an order id that is not a parseable unsigned integer.
	OrderInvalidID ErrorCode = "order_invalid_id"
	// OrderDuplicateID represents a NEW order reusing an order id already seen in the stream.
	OrderDuplicateID ErrorCode = "order_duplicate_id"

	// FileOpenError represents a failure opening an input or output file.
	FileOpenError ErrorCode = "file_open_error"
	// FileReadError represents a failure reading an input file.
	FileReadError ErrorCode = "file_read_error"
	// FileWriteError represents a failure writing an output file.
	FileWriteError ErrorCode = "file_write_error"

	// PublishEventError represents a failure publishing a result event to the stream.
	PublishEventError ErrorCode = "publish_event_error"
)

// Severity represents the severity level of an error.
type Severity string

const (
	// SeverityCritical indicates a critical error that requires immediate attention.
	SeverityCritical Severity = "critical"
	// SeverityHigh indicates a high severity error that should be addressed promptly.
	SeverityHigh Severity = "high"
	// SeverityMedium indicates a medium severity error that should be addressed in due course.
	SeverityMedium Severity = "medium"
	// SeverityLow indicates a low severity error that can be addressed at a later time.
	SeverityLow Severity = "low"
)

// Category represents the category of an error.
type Category string

const (
	// CategoryValidation indicates an error related to validation of input data.
	CategoryValidation Category = "validation"
	// CategoryIO indicates an error related to file or stream input/output.
	CategoryIO Category = "io"
	// CategoryBusinessLogic indicates an error related to business logic processing.
	CategoryBusinessLogic Category = "business_logic"
	// CategoryUnknown indicates an unknown error category.
	CategoryUnknown Category = "unknown"
)

// BaseError is an `error` type containing an array of ErrorDetails.
// This error provides basic functions for performing transformations
// on a list of ErrorDetails.
type BaseError struct {
	details []*ErrorDetails
}

// NewBaseError create BaseError with ErrorDetails
func NewBaseError(details ...*ErrorDetails) *BaseError {
	return &BaseError{details: details}
}

// AddErrorDetails add more ErrorDetails to BaseError
func (b *BaseError) AddErrorDetails(errors ...*ErrorDetails) {
	b.details = append(b.details, errors...)
}

// GetDetails get array ErrorDetails on BaseError
func (b *BaseError) GetDetails() []*ErrorDetails {
	return b.details
}

// Error implement error interface
func (b *BaseError) Error() string {
	buff := bytes.NewBufferString("")

	buff.WriteString("Error on\n")
	for _, err := range b.details {
		buff.WriteString("code: ")
		buff.WriteString(err.Code)
		buff.WriteString("; error: ")
		buff.WriteString(err.Error())
		buff.WriteString("; field: ")
		buff.WriteString(err.Field)
		buff.WriteString("; object: ")
		if err.Object != nil {
			buff.WriteString(reflect.TypeOf(err.Object).String())
		}
		buff.WriteString("\n")
	}

	return strings.TrimSpace(buff.String())
}
