// Package dtype models the native array runtime's in-memory type handles.
//
// A DType describes the binary layout of one array element: storage kind,
// element size, byte order, an optional fixed shape, ordered compound fields,
// and the object-kind extensions (variable-length text, variable-length
// containers, references) plus the enumeration annotation.
//
// # Key Types
//
//   - DType: immutable type handle with constructor functions
//   - Kind: storage class discriminator (int, uint, float, bytes, opaque, object, record)
//   - ByteOrder, Charset, RefKind: layout attributes
//
// DType values are immutable; deriving operations (WithShape, WithEnum, Base)
// return new handles. All values are safe for concurrent use.
package dtype
