package dtype

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// pointerSize is the in-memory size of object-extension types. Variable-length
// data is stored out of line behind a machine pointer.
const pointerSize = 8

// Field is one named member of a structured type. Order is significant.
type Field struct {
	Name string
	Type *DType
}

// extension carries the object-kind classification: exactly one of vlenText,
// vlenElem, or ref is set. enum may annotate integer kinds.
type extension struct {
	vlenElem *DType
	enum     map[string]int64
	charset  Charset
	refKind  RefKind
	vlenText bool
	ref      bool
}

// DType is an immutable native type handle. Values are created by the
// constructors below and derived with WithShape/WithEnum; they are never
// mutated in place and are safe to share between goroutines.
type DType struct {
	ext    *extension
	shape  []int
	fields []Field
	size   int
	kind   Kind
	order  ByteOrder
}

// Signed returns a signed integer type of the given byte size.
func Signed(size int, order ByteOrder) *DType {
	return &DType{kind: KindInt, size: size, order: order}
}

// Unsigned returns an unsigned integer type of the given byte size.
func Unsigned(size int, order ByteOrder) *DType {
	return &DType{kind: KindUint, size: size, order: order}
}

// Float returns an IEEE floating-point type of the given byte size.
func Float(size int, order ByteOrder) *DType {
	return &DType{kind: KindFloat, size: size, order: order}
}

// Bytes returns a fixed-length byte string type of n bytes.
func Bytes(n int) *DType {
	return &DType{kind: KindBytes, size: n, order: OrderNone}
}

// Opaque returns an uninterpreted byte block type of n bytes.
func Opaque(n int) *DType {
	return &DType{kind: KindOpaque, size: n, order: OrderNone}
}

// Structured returns an ordered named-field record type. The field slice is
// copied; callers keep ownership of theirs.
func Structured(fields []Field) *DType {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	size := 0
	for _, f := range fs {
		if f.Type != nil {
			size += f.Type.ItemSize()
		}
	}
	return &DType{kind: KindRecord, size: size, order: OrderNone, fields: fs}
}

// VarLenText returns a variable-length text type in the given character set.
func VarLenText(cs Charset) *DType {
	return &DType{
		kind:  KindObject,
		size:  pointerSize,
		order: OrderNone,
		ext:   &extension{vlenText: true, charset: cs},
	}
}

// VarLenOf returns a variable-length container of the given element type.
func VarLenOf(elem *DType) *DType {
	return &DType{
		kind:  KindObject,
		size:  pointerSize,
		order: OrderNone,
		ext:   &extension{vlenElem: elem},
	}
}

// Ref returns a reference type of the given kind.
func Ref(kind RefKind) *DType {
	return &DType{
		kind:  KindObject,
		size:  pointerSize,
		order: OrderNone,
		ext:   &extension{ref: true, refKind: kind},
	}
}

// WithShape derives a fixed-shape array type over d. Dims are copied.
func (d *DType) WithShape(dims ...int) *DType {
	nd := *d
	nd.shape = make([]int, len(dims))
	copy(nd.shape, dims)
	return &nd
}

// WithEnum derives an enumeration type over d with the given symbol mapping.
// The mapping is copied.
func (d *DType) WithEnum(mapping map[string]int64) *DType {
	m := make(map[string]int64, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}
	nd := *d
	nd.ext = &extension{enum: m}
	return &nd
}

// Kind returns the storage class.
func (d *DType) Kind() Kind { return d.kind }

// Size returns the element size in bytes, excluding any shape.
func (d *DType) Size() int { return d.size }

// ItemSize returns the total size in bytes, including the shape product.
func (d *DType) ItemSize() int {
	n := d.size
	for _, dim := range d.shape {
		n *= dim
	}
	return n
}

// Order returns the byte order.
func (d *DType) Order() ByteOrder { return d.order }

// Shape returns a copy of the fixed shape, or nil for scalar types.
func (d *DType) Shape() []int {
	if len(d.shape) == 0 {
		return nil
	}
	s := make([]int, len(d.shape))
	copy(s, d.shape)
	return s
}

// Base returns the shape-stripped view of d. For unshaped types it returns d.
func (d *DType) Base() *DType {
	if len(d.shape) == 0 {
		return d
	}
	nd := *d
	nd.shape = nil
	return &nd
}

// NumFields returns the number of structured fields, zero for non-records.
func (d *DType) NumFields() int { return len(d.fields) }

// Fields returns a copy of the ordered field list.
func (d *DType) Fields() []Field {
	if len(d.fields) == 0 {
		return nil
	}
	fs := make([]Field, len(d.fields))
	copy(fs, d.fields)
	return fs
}

// VlenText reports whether d is a variable-length text extension and, if so,
// its character set.
func (d *DType) VlenText() (Charset, bool) {
	if d.ext != nil && d.ext.vlenText {
		return d.ext.charset, true
	}
	return 0, false
}

// VlenType reports whether d is a variable-length container extension and, if
// so, its element type.
func (d *DType) VlenType() (*DType, bool) {
	if d.ext != nil && d.ext.vlenElem != nil {
		return d.ext.vlenElem, true
	}
	return nil, false
}

// RefType reports whether d is a reference extension and, if so, its kind.
func (d *DType) RefType() (RefKind, bool) {
	if d.ext != nil && d.ext.ref {
		return d.ext.refKind, true
	}
	return 0, false
}

// EnumMapping reports whether d carries an enumeration annotation and, if so,
// a copy of its symbol mapping.
func (d *DType) EnumMapping() (map[string]int64, bool) {
	if d.ext == nil || d.ext.enum == nil {
		return nil, false
	}
	m := make(map[string]int64, len(d.ext.enum))
	for k, v := range d.ext.enum {
		m[k] = v
	}
	return m, true
}

// Equal reports deep structural equality, including field order.
func (d *DType) Equal(o *DType) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.kind != o.kind || d.size != o.size || d.order != o.order {
		return false
	}
	if len(d.shape) != len(o.shape) {
		return false
	}
	for i := range d.shape {
		if d.shape[i] != o.shape[i] {
			return false
		}
	}
	if len(d.fields) != len(o.fields) {
		return false
	}
	for i := range d.fields {
		if d.fields[i].Name != o.fields[i].Name || !d.fields[i].Type.Equal(o.fields[i].Type) {
			return false
		}
	}
	return extEqual(d.ext, o.ext)
}

func extEqual(a, b *extension) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.vlenText != b.vlenText || a.charset != b.charset ||
		a.ref != b.ref || a.refKind != b.refKind {
		return false
	}
	if !a.vlenElem.Equal(b.vlenElem) {
		return false
	}
	if len(a.enum) != len(b.enum) {
		return false
	}
	for k, v := range a.enum {
		if bv, ok := b.enum[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// String renders a compact typestring for logs and tests, in the array
// runtime's notation: "<i4", ">f8", "S10", "V7", "(2,3)<i4",
// "vlen:utf8", "vlen:<i4", "ref:region", "enum<u1>{...}",
// "{a: <i4, b: <f8}".
func (d *DType) String() string {
	var b strings.Builder
	if len(d.shape) > 0 {
		b.WriteByte('(')
		for i, dim := range d.shape {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(dim))
		}
		b.WriteByte(')')
	}
	b.WriteString(d.Base().baseString())
	return b.String()
}

func (d *DType) baseString() string {
	if len(d.fields) > 0 {
		var b strings.Builder
		b.WriteByte('{')
		for i, f := range d.fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			b.WriteString(f.Type.String())
		}
		b.WriteByte('}')
		return b.String()
	}

	if d.ext != nil {
		switch {
		case d.ext.vlenText:
			return "vlen:" + d.ext.charset.String()
		case d.ext.vlenElem != nil:
			return "vlen:" + d.ext.vlenElem.String()
		case d.ext.ref:
			return "ref:" + d.ext.refKind.String()
		case d.ext.enum != nil:
			return "enum<" + d.numericString() + ">" + enumString(d.ext.enum)
		}
	}

	switch d.kind {
	case KindInt, KindUint, KindFloat:
		return d.numericString()
	case KindBytes:
		return "S" + strconv.Itoa(d.size)
	case KindOpaque:
		return "V" + strconv.Itoa(d.size)
	default:
		return "object"
	}
}

func (d *DType) numericString() string {
	prefix := "<"
	if d.order == BigEndian {
		prefix = ">"
	}
	var code byte
	switch d.kind {
	case KindInt:
		code = 'i'
	case KindUint:
		code = 'u'
	default:
		code = 'f'
	}
	return prefix + string(code) + strconv.Itoa(d.size)
}

func enumString(m map[string]int64) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %d", n, m[n])
	}
	b.WriteByte('}')
	return b.String()
}
