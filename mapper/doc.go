// Package mapper translates between wire descriptor trees and native array
// types in both directions.
//
// # Encoder
//
// ReflectTop, ReflectElement, and ReflectBase walk a native type and emit the
// descriptor tree that describes it. Structured types become compounds,
// object extensions are classified through the dtype introspection methods,
// and shaped primitives wrap their element descriptor in an array node.
//
// # Canonicalizer
//
// Canonicalize rewrites a descriptor tree into its compact external form:
// committed types collapse to the bare identity, predefined-equivalent
// integer, float, and reference nodes collapse to the canonical name, and
// compounds are rewritten per field. Sibling attributes are validated
// against the base name before being dropped.
//
// # Decoder
//
// BuildTop and BuildBase turn a descriptor tree into a native type,
// enforcing the grammar's semantic rules: required keys, positive sizes, the
// ASCII field-name restriction, and the exclusion of shapes on
// variable-length types.
//
// All functions are pure; the same input always yields the same output or
// the same typed error.
package mapper
