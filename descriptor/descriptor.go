package descriptor

// Class is the wire type-class tag.
type Class string

const (
	ClassInteger   Class = "H5T_INTEGER"
	ClassFloat     Class = "H5T_FLOAT"
	ClassString    Class = "H5T_STRING"
	ClassCompound  Class = "H5T_COMPOUND"
	ClassArray     Class = "H5T_ARRAY"
	ClassVarLen    Class = "H5T_VLEN"
	ClassOpaque    Class = "H5T_OPAQUE"
	ClassEnum      Class = "H5T_ENUM"
	ClassReference Class = "H5T_REFERENCE"
)

// Order is the wire byte-order tag.
type Order string

const (
	OrderLE   Order = "H5T_ORDER_LE"
	OrderBE   Order = "H5T_ORDER_BE"
	OrderNone Order = "H5T_ORDER_NONE"
)

// Charset is the wire character-set tag.
type Charset string

const (
	CharsetASCII Charset = "H5T_CSET_ASCII"
	CharsetUTF8  Charset = "H5T_CSET_UTF8"
)

// StrPad is the wire string-padding tag.
type StrPad string

const (
	PadNullTerm StrPad = "H5T_STR_NULLTERM"
	PadNullPad  StrPad = "H5T_STR_NULLPAD"
)

// Variable is the wire marker for a variable-length string size.
const Variable = "H5T_VARIABLE"

// Type is one node of a descriptor tree. The concrete variants below are the
// only implementations; descriptor trees are finite and acyclic.
type Type interface {
	isType()
}

// Predefined is a bare canonical type name, e.g. "H5T_STD_I32LE".
type Predefined string

// Committed identifies a shared type by its opaque identity. It carries no
// structural information; resolving the identity is the storage engine's job.
type Committed struct {
	ID string
}

// Integer describes a signed or unsigned integer layout.
type Integer struct {
	Base     string // canonical base name, empty when not predefined
	Order    Order
	Shape    []int
	Size     int
	BaseSize int
}

// Float describes an IEEE floating-point layout.
type Float struct {
	Base     string
	Order    Order
	Shape    []int
	Size     int
	BaseSize int
}

// Enum describes an integer layout annotated with a symbol mapping.
type Enum struct {
	Base     string
	Order    Order
	Mapping  map[string]int64
	Shape    []int
	Size     int
	BaseSize int
}

// StrSize is a string size: either a fixed byte length or the variable marker.
type StrSize struct {
	Length   int
	Variable bool
}

// Fixed returns a fixed string size.
func Fixed(n int) *StrSize {
	return &StrSize{Length: n}
}

// VariableSize returns the variable string size marker.
func VariableSize() *StrSize {
	return &StrSize{Variable: true}
}

// String describes fixed or variable-length text.
type String struct {
	StrSize  *StrSize // nil when the descriptor did not carry a size
	Charset  Charset
	Pad      StrPad
	Order    Order
	Shape    []int
	Size     int // total item size, informational
	BaseSize int
}

// Field is one named member of a compound type.
type Field struct {
	Type Type
	Name string
}

// Compound is an ordered sequence of named, typed fields.
type Compound struct {
	Fields []Field
}

// Array wraps an element type with a fixed shape.
type Array struct {
	Base  Type
	Shape []int
}

// VarLen describes a variable-length container of a base type.
type VarLen struct {
	Base     Type
	Shape    []int // rejected at build; kept so a malformed wire form is visible
	BaseSize int
}

// Opaque describes an uninterpreted fixed-size byte block.
type Opaque struct {
	Size  *int // nil when the descriptor did not carry a size
	Order Order
	Shape []int
}

// Reference describes an object or region reference.
type Reference struct {
	Base  string
	Order Order
}

func (Predefined) isType() {}
func (*Committed) isType() {}
func (*Integer) isType()   {}
func (*Float) isType()     {}
func (*Enum) isType()      {}
func (*String) isType()    {}
func (*Compound) isType()  {}
func (*Array) isType()     {}
func (*VarLen) isType()    {}
func (*Opaque) isType()    {}
func (*Reference) isType() {}
