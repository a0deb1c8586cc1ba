// Package errors provides structured error types for the typemap library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: descriptor path, wire class, offending name,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBuild, errors.KindFieldMissing).
//		Path("fields", "temperature").
//		Class("H5T_STRING").
//		Detail("required key %q not provided", "strsize").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeName(errors.PhaseResolve, "H5T_STD_I24LE")
//	err := errors.UnsupportedCombination(errors.PhaseBuild, path, "H5T_VLEN")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for an error category:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseBuild, Kind: errors.KindInvalidSize}) {
//		...
//	}
package errors
