package database

import (
	"errors"
	"strings"

	"github.com/snowflakedb/gosnowflake"
)

// Kind classifies the failures surfaced across the tool boundary.
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindConnection      Kind = "connection_error"
	KindTranslation     Kind = "translation_error"
	KindQueryExecution  Kind = "query_execution_error"
	KindNotFound        Kind = "not_found"
)

// Error is the structured failure value shared by the database service, the
// translator and the tool handlers. Driver messages are carried verbatim.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, message string, cause error) *Error {
	switch {
	case cause == nil:
	case message == "":
		message = cause.Error()
	default:
		message = message + ": " + cause.Error()
	}
	return &Error{Kind: kind, Message: message, cause: cause}
}

// NewInvalidArgumentError reports a malformed request parameter.
func NewInvalidArgumentError(message string) *Error {
	return newError(KindInvalidArgument, message, nil)
}

// NewConnectionError reports a session establishment failure.
func NewConnectionError(message string, cause error) *Error {
	return newError(KindConnection, message, cause)
}

// NewTranslationError reports that no SQL could be derived from a natural
// language question.
func NewTranslationError(message string) *Error {
	return newError(KindTranslation, message, nil)
}

// NewQueryExecutionError reports a statement the warehouse rejected or
// failed. The driver message is preserved unmodified.
func NewQueryExecutionError(cause error) *Error {
	return newError(KindQueryExecution, "", cause)
}

// NewNotFoundError reports a referenced table or schema that does not exist.
func NewNotFoundError(cause error) *Error {
	return newError(KindNotFound, "", cause)
}

// KindOf extracts the kind of err when it is, or wraps, an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// AsError coerces err into an *Error, classifying unrecognized errors as
// query execution failures.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newError(KindQueryExecution, "", err)
}

// Snowflake reports missing or unauthorized objects with these SQL
// compilation error codes.
const (
	errCodeObjectNotExist     = 2003
	errCodeObjectNotAvailable = 2043

	sqlStateTableNotFound = "42S02"
)

// classifyQueryError maps a driver error onto the tool failure taxonomy:
// missing objects become NotFound, everything else a query execution
// failure.
func classifyQueryError(err error) *Error {
	if isMissingObject(err) {
		return NewNotFoundError(err)
	}
	return NewQueryExecutionError(err)
}

func isMissingObject(err error) bool {
	var sfErr *gosnowflake.SnowflakeError
	if errors.As(err, &sfErr) {
		if sfErr.Number == errCodeObjectNotExist || sfErr.Number == errCodeObjectNotAvailable {
			return true
		}
		if sfErr.SQLState == sqlStateTableNotFound {
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "does not exist")
}
