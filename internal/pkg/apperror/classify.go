package apperror

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"strings"
)

// Observer is invoked when a classified error of a matching kind occurs.
type Observer func(*AppError)

// Option adjusts a single Classify call.
type Option func(*classifyOptions)

type classifyOptions struct {
	kind    Kind
	details map[string]any
}

// WithKind skips detection and classifies the failure as kind.
func WithKind(kind Kind) Option {
	return func(o *classifyOptions) { o.kind = kind }
}

// WithDetail attaches a context value to the resulting AppError.
func WithDetail(key string, value any) Option {
	return func(o *classifyOptions) {
		if o.details == nil {
			o.details = map[string]any{}
		}
		o.details[key] = value
	}
}

// Classifier turns raw failures into AppError values and notifies
// observers. Not safe for concurrent use.
type Classifier struct {
	logger    *slog.Logger
	observers map[Kind][]Observer
	catchAll  []Observer
}

// NewClassifier creates a classifier that logs through logger.
func NewClassifier(logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		logger:    logger,
		observers: map[Kind][]Observer{},
	}
}

// Observe registers fn for errors classified as kind.
func (c *Classifier) Observe(kind Kind, fn Observer) {
	c.observers[kind] = append(c.observers[kind], fn)
}

// ObserveAll registers fn as a catch-all, invoked after the
// kind-specific observers for every classified error.
func (c *Classifier) ObserveAll(fn Observer) {
	c.catchAll = append(c.catchAll, fn)
}

// Classify wraps err in an AppError, logs it, and dispatches it to
// observers. It never fails: an unrecognized err classifies as
// KindUnknown, and observer failures are contained.
func (c *Classifier) Classify(err error, opts ...Option) *AppError {
	if err == nil {
		err = errors.New("unknown failure")
	}

	var o classifyOptions
	for _, opt := range opts {
		opt(&o)
	}

	kind := o.kind
	if kind == "" {
		kind = DetectKind(err)
	}

	ae := &AppError{
		kind:    kind,
		msg:     err.Error(),
		details: o.details,
		err:     err,
	}

	c.logger.Error("classified error", slog.Any("error", ae))

	for _, fn := range c.observers[kind] {
		c.notify(fn, ae)
	}
	for _, fn := range c.catchAll {
		c.notify(fn, ae)
	}
	return ae
}

// notify runs a single observer in isolation so one failing observer
// cannot stop the rest or escape Classify.
func (c *Classifier) notify(fn Observer, ae *AppError) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("error observer panicked",
				slog.String("kind", string(ae.kind)),
				slog.Any("panic", r))
		}
	}()
	fn(ae)
}

// matchRules is the keyword heuristic, in fixed priority order. First
// match wins; the ordering disambiguates overlapping keywords such as
// "invalid" inside a permission message.
var matchRules = []struct {
	kind  Kind
	words []string
}{
	{KindFileNotFound, []string{"not found", "no such file", "cannot find", "does not exist"}},
	{KindPermissionDenied, []string{"permission", "access is denied", "operation not permitted"}},
	{KindFileExists, []string{"already exists", "file exists"}},
	{KindRaceCondition, []string{"race", "concurrent", "changed during"}},
	{KindValidation, []string{"invalid", "validation", "malformed"}},
}

// DetectKind maps err to a Kind. Exact sentinel and type checks run
// first; the keyword pass over the lowercased type name and message is
// a heuristic kept as-is from the original tool.
func DetectKind(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var ae *AppError
	if errors.As(err, &ae) {
		return ae.kind
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return KindFileExists
	case errors.Is(err, fs.ErrInvalid):
		return KindValidation
	}

	// Deadlines surface from stalled network shares, so they classify
	// with the other transport failures.
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	text := strings.ToLower(fmt.Sprintf("%T: %v", err, err))
	for _, rule := range matchRules {
		for _, w := range rule.words {
			if strings.Contains(text, w) {
				return rule.kind
			}
		}
	}
	return KindUnknown
}
