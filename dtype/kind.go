package dtype

// Kind discriminates the primitive storage classes of the native type model.
type Kind uint8

const (
	KindInt    Kind = iota // signed integer
	KindUint               // unsigned integer
	KindFloat              // IEEE floating point
	KindBytes              // fixed-length byte string
	KindOpaque             // uninterpreted byte block
	KindObject             // extension carrier (vlen text, vlen, reference)
	KindRecord             // ordered named-field compound
)

var kindNames = [...]string{
	KindInt:    "int",
	KindUint:   "uint",
	KindFloat:  "float",
	KindBytes:  "bytes",
	KindOpaque: "opaque",
	KindObject: "object",
	KindRecord: "record",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsNumeric reports whether the kind carries a byte order.
func (k Kind) IsNumeric() bool {
	return k <= KindFloat
}

// ByteOrder is the endianness of a native type, or OrderNone for
// order-insensitive types (strings, opaque blocks, object extensions).
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
	OrderNone
)

var orderNames = [...]string{
	LittleEndian: "LE",
	BigEndian:    "BE",
	OrderNone:    "NONE",
}

func (o ByteOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "unknown"
}

// Charset identifies the character set of variable-length text.
type Charset uint8

const (
	CharsetASCII Charset = iota
	CharsetUTF8
)

var charsetNames = [...]string{
	CharsetASCII: "ascii",
	CharsetUTF8:  "utf8",
}

func (c Charset) String() string {
	if int(c) < len(charsetNames) {
		return charsetNames[c]
	}
	return "unknown"
}

// RefKind identifies the target of a reference type.
type RefKind uint8

const (
	RefObject RefKind = iota // whole-object reference
	RefRegion                // dataset region reference
)

var refKindNames = [...]string{
	RefObject: "object",
	RefRegion: "region",
}

func (r RefKind) String() string {
	if int(r) < len(refKindNames) {
		return refKindNames[r]
	}
	return "unknown"
}
