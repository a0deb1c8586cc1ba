// Package descriptor defines the wire type grammar: the JSON-like tree
// representation of array storage types exchanged at the system boundary.
//
// A descriptor is one of:
//
//   - a bare canonical name ("H5T_STD_I32LE")
//   - a committed-type identity (an object carrying "uuid")
//   - a class-tagged object (H5T_INTEGER, H5T_FLOAT, H5T_STRING,
//     H5T_COMPOUND, H5T_ARRAY, H5T_VLEN, H5T_OPAQUE, H5T_ENUM,
//     H5T_REFERENCE)
//
// Unmarshal performs the structural decode only: it dispatches on the class
// tag, resolves the alias keys the grammar allows (strsize/size,
// cset/charset, strpad/padding), and rejects non-integer sizes. Semantic
// validation (required keys, positive sizes, shape restrictions) belongs to
// the mapper package, so programmatically constructed trees get the same
// checks as parsed ones.
//
// Descriptor trees are finite and acyclic; every value is plain data and
// safe to share.
package descriptor
