package apperror

import (
	"fmt"
	"log/slog"
)

// AppError is a classified failure. It is immutable once constructed;
// values are created by a Classifier, never mutated afterwards.
type AppError struct {
	kind    Kind
	msg     string
	details map[string]any
	err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.kind, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Kind returns the classified kind.
func (e *AppError) Kind() Kind {
	return e.kind
}

// Message returns the human-readable message.
func (e *AppError) Message() string {
	return e.msg
}

// Detail returns the detail value stored under key, if any.
func (e *AppError) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the detail map.
func (e *AppError) Details() map[string]any {
	out := make(map[string]any, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Unwrap returns the original cause.
func (e *AppError) Unwrap() error {
	return e.err
}

// LogValue implements slog.LogValuer so classified errors serialize
// with stable keys.
func (e *AppError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3+len(e.details))
	attrs = append(attrs, slog.String("kind", string(e.kind)))
	attrs = append(attrs, slog.String("message", e.msg))
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	for k, v := range e.details {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}
