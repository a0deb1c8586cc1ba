package registry

import (
	"sort"
	"strings"

	"github.com/arraykit/typemap/dtype"
	"github.com/arraykit/typemap/errors"
)

// Class constrains a name lookup to one of the predefined tables.
type Class uint8

const (
	ClassAny Class = iota
	ClassInteger
	ClassFloat
)

// primitive is the native code a canonical base name resolves to.
type primitive struct {
	kind dtype.Kind
	size int
}

// minNameLen is the shortest string that can encode a base name plus an
// optional byte-order suffix.
const minNameLen = 3

// The predefined tables are built once and never mutated; they are safe for
// unlimited concurrent readers.
var integerTable = map[string]primitive{
	"H5T_STD_I8":   {dtype.KindInt, 1},
	"H5T_STD_UI8":  {dtype.KindUint, 1},
	"H5T_STD_I16":  {dtype.KindInt, 2},
	"H5T_STD_UI16": {dtype.KindUint, 2},
	"H5T_STD_I32":  {dtype.KindInt, 4},
	"H5T_STD_UI32": {dtype.KindUint, 4},
	"H5T_STD_I64":  {dtype.KindInt, 8},
	"H5T_STD_UI64": {dtype.KindUint, 8},
}

var floatTable = map[string]primitive{
	"H5T_IEEE_F32": {dtype.KindFloat, 4},
	"H5T_IEEE_F64": {dtype.KindFloat, 8},
}

var referenceTable = map[string]dtype.RefKind{
	"H5T_STD_REF_OBJ":     dtype.RefObject,
	"H5T_STD_REF_DSETREG": dtype.RefRegion,
}

var (
	integerNames   map[primitive]string
	floatNames     map[primitive]string
	referenceNames map[dtype.RefKind]string
)

func init() {
	integerNames = make(map[primitive]string, len(integerTable))
	for name, p := range integerTable {
		integerNames[p] = name
	}
	floatNames = make(map[primitive]string, len(floatTable))
	for name, p := range floatTable {
		floatNames[p] = name
	}
	referenceNames = make(map[dtype.RefKind]string, len(referenceTable))
	for name, k := range referenceTable {
		referenceNames[k] = name
	}
}

// Resolve maps a canonical type name to a native primitive type. The trailing
// LE/BE suffix selects the byte order and defaults to little-endian when
// absent. The lookup is constrained to the table matching class, or tries
// both tables for ClassAny. Unknown or malformed names fail with a
// KindTypeName error.
func Resolve(name string, class Class) (*dtype.DType, error) {
	if len(name) < minNameLen {
		return nil, errors.TypeName(errors.PhaseResolve, name)
	}

	order := dtype.LittleEndian
	key := name
	if strings.HasSuffix(name, "LE") {
		key = name[:len(name)-2]
	} else if strings.HasSuffix(name, "BE") {
		key = name[:len(name)-2]
		order = dtype.BigEndian
	}

	if class == ClassAny || class == ClassInteger {
		if p, ok := integerTable[key]; ok {
			return newPrimitive(p, order), nil
		}
	}
	if class == ClassAny || class == ClassFloat {
		if p, ok := floatTable[key]; ok {
			return newPrimitive(p, order), nil
		}
	}
	return nil, errors.TypeName(errors.PhaseResolve, name)
}

func newPrimitive(p primitive, order dtype.ByteOrder) *dtype.DType {
	switch p.kind {
	case dtype.KindInt:
		return dtype.Signed(p.size, order)
	case dtype.KindUint:
		return dtype.Unsigned(p.size, order)
	default:
		return dtype.Float(p.size, order)
	}
}

// BaseName is the exact-match inverse of Resolve: it reports the canonical
// name for a native primitive, byte-order suffix included. Types that do not
// correspond to a predefined entry report ok == false.
func BaseName(dt *dtype.DType) (string, bool) {
	if dt == nil || !dt.Kind().IsNumeric() {
		return "", false
	}

	var suffix string
	switch dt.Order() {
	case dtype.LittleEndian:
		suffix = "LE"
	case dtype.BigEndian:
		suffix = "BE"
	default:
		return "", false
	}

	p := primitive{kind: dt.Kind(), size: dt.Size()}
	if name, ok := integerNames[p]; ok {
		return name + suffix, true
	}
	if name, ok := floatNames[p]; ok {
		return name + suffix, true
	}
	return "", false
}

// RefName reports the canonical base name for a reference kind.
func RefName(kind dtype.RefKind) string {
	return referenceNames[kind]
}

// RefKindOf maps a reference base name back to its kind.
func RefKindOf(name string) (dtype.RefKind, bool) {
	k, ok := referenceTable[name]
	return k, ok
}

// Names returns the sorted canonical base names of every predefined numeric
// type, without byte-order suffixes.
func Names() []string {
	names := make([]string, 0, len(integerTable)+len(floatTable))
	for name := range integerTable {
		names = append(names, name)
	}
	for name := range floatTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
