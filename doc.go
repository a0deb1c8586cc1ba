// Package typemap provides a bidirectional type-mapping engine between a
// JSON wire type grammar for hierarchical array storage and a native array
// runtime's type model.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	typemap/             Root package with the convenience API
//	├── descriptor/      Wire type grammar and its JSON codec
//	├── dtype/           Immutable native type handles
//	├── registry/        Predefined canonical name tables
//	├── mapper/          Encoder, canonicalizer, and decoder
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Decode a wire descriptor into a native type:
//
//	dt, err := typemap.BuildJSON([]byte(`{"class": "H5T_COMPOUND", "fields": [
//	    {"name": "id", "type": "H5T_STD_I64LE"},
//	    {"name": "score", "type": "H5T_IEEE_F64LE"}
//	]}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dt) // "{id: <i8, score: <f8}"
//
// Encode it back and canonicalize:
//
//	desc, err := typemap.Reflect(dt)
//	canon, err := typemap.Canonicalize(desc)
//
// # Type Grammar Support
//
// The engine covers nine wire type classes:
//
//   - Numeric: H5T_INTEGER (signed/unsigned 8-64 bit), H5T_FLOAT (32/64 bit)
//   - Text: H5T_STRING, fixed or variable length, ASCII or UTF-8
//   - Structural: H5T_COMPOUND, H5T_ARRAY, H5T_VLEN
//   - Leaf: H5T_OPAQUE, H5T_ENUM, H5T_REFERENCE
//
// Committed (shared) types are carried as opaque identities and never
// rebuilt locally.
//
// # Error Handling
//
// Every failure is a *errors.Error carrying the processing phase, an error
// kind, and the field path to the offending node. Errors match with
// errors.Is on phase and kind.
//
// All operations are deterministic pure functions; the package-level tables
// are immutable and safe for unlimited concurrent callers.
package typemap
