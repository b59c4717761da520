// Package errors provides structured error types for the text library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: field path, detail message, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindInvalidUTF8).
//		Path("connection", "input").
//		Detail("lead byte with no continuation").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TooBig(errors.PhaseBuild, limit)
//	err := errors.InvalidUTF8(errors.PhaseConvert, data)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
