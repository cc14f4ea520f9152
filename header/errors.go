package header

import (
	"fmt"
	"log/slog"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Error is a sentinel error type of the package.
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a setter or constructor gets a value
	// it cannot store. Nothing is changed in that case.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrUnsupportedOperation is returned on any mutation of a read-only store.
	ErrUnsupportedOperation = errorutil.ErrUnsupportedOperation
	// ErrMalformedValue is matched by every [*ParseError].
	ErrMalformedValue Error = "malformed value"
)

func newInvalidArgErr(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

func newUnsupportedOpErr(args ...any) error {
	return errorutil.NewUnsupportedOperationError(args...) //errtrace:skip
}

func newMalformedValueErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedValue, args...) //errtrace:skip
}

// ParseError describes a header value that a typed getter could not interpret.
type ParseError struct {
	// Name is the header name as passed to the getter.
	Name string
	// Value is the offending raw value.
	Value string
	// Err is the underlying cause, it may be nil.
	Err error
}

func newParseErr(name, value string, err error) *ParseError {
	return &ParseError{Name: name, Value: value, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("parse header %q value %q", e.Name, e.Value)
	}
	return fmt.Sprintf("parse header %q value %q: %v", e.Name, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is [ErrMalformedValue].
func (*ParseError) Is(target error) bool { return target == ErrMalformedValue }

func (*ParseError) Grammar() bool { return true }

func (e *ParseError) LogValue() slog.Value {
	if e == nil {
		return slog.Value{}
	}
	attrs := []slog.Attr{
		slog.String("name", e.Name),
		slog.String("value", util.Ellipsis(e.Value, 256)),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}
	return slog.GroupValue(attrs...)
}
