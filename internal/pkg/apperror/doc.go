// Package apperror classifies failures into a fixed set of error kinds
// and routes them to registered observers.
//
// It keeps error handling consistent by:
//   - Wrapping any failure in an AppError carrying a Kind, a message,
//     a free-form detail map, and the original cause.
//   - Classifying unrecognized failures by sentinel checks first, then
//     a keyword heuristic over the error text.
//   - Never failing itself: Classify always returns a value, and a
//     misbehaving observer is logged and skipped, not propagated.
//
// The package is not safe for concurrent use; the application is
// driven by a single GUI event loop.
package apperror
