package descriptor

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/arraykit/typemap/errors"
)

// Unmarshal parses a wire descriptor: either a bare canonical name or a
// class-tagged object. Objects carrying a "uuid" key are committed types;
// their structural keys are discarded, never interpreted.
func Unmarshal(data []byte) (Type, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.InvalidDescriptor(nil, "empty descriptor")
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, errors.InvalidDescriptor(err, "decode type name")
		}
		return Predefined(s), nil
	}

	if trimmed[0] != '{' {
		return nil, errors.InvalidDescriptor(nil, "descriptor must be a type name or an object")
	}

	var probe struct {
		UUID  string `json:"uuid"`
		Class Class  `json:"class"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode descriptor object")
	}

	if probe.UUID != "" {
		return &Committed{ID: probe.UUID}, nil
	}

	switch probe.Class {
	case ClassInteger, ClassFloat, ClassEnum:
		return unmarshalNumeric(trimmed, probe.Class)
	case ClassString:
		return unmarshalString(trimmed)
	case ClassCompound:
		return unmarshalCompound(trimmed)
	case ClassArray:
		return unmarshalArray(trimmed)
	case ClassVarLen:
		return unmarshalVarLen(trimmed)
	case ClassOpaque:
		return unmarshalOpaque(trimmed)
	case ClassReference:
		return unmarshalReference(trimmed)
	case "":
		return nil, errors.TypeClass(errors.PhaseParse, nil, "")
	default:
		return nil, errors.TypeClass(errors.PhaseParse, nil, string(probe.Class))
	}
}

// Marshal renders a descriptor tree to its wire JSON form.
func Marshal(t Type) ([]byte, error) {
	return json.Marshal(t)
}

// sizeOf decodes a numeric byte size. Sizes must be whole numbers; anything
// else is an invalid_size failure, per the wire grammar.
func sizeOf(raw json.RawMessage, key string) (int, bool, error) {
	if len(raw) == 0 {
		return 0, false, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false, errors.InvalidSize(errors.PhaseParse, []string{key}, string(raw))
	}
	if f != math.Trunc(f) {
		return 0, false, errors.InvalidSize(errors.PhaseParse, []string{key}, f)
	}
	return int(f), true, nil
}

// strSizeOf decodes a string size: a whole number or the variable marker.
func strSizeOf(raw json.RawMessage, key string) (*StrSize, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, errors.InvalidSize(errors.PhaseParse, []string{key}, string(raw))
		}
		if s != Variable {
			return nil, errors.InvalidSize(errors.PhaseParse, []string{key}, s)
		}
		return VariableSize(), nil
	}
	n, _, err := sizeOf(raw, key)
	if err != nil {
		return nil, err
	}
	return Fixed(n), nil
}

func shapeOf(raw json.RawMessage) ([]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var dims []float64
	if err := json.Unmarshal(raw, &dims); err != nil {
		return nil, errors.InvalidSize(errors.PhaseParse, []string{"shape"}, string(raw))
	}
	shape := make([]int, len(dims))
	for i, d := range dims {
		if d != math.Trunc(d) {
			return nil, errors.InvalidSize(errors.PhaseParse, []string{"shape"}, d)
		}
		shape[i] = int(d)
	}
	return shape, nil
}

type numericWire struct {
	Size     json.RawMessage  `json:"size"`
	BaseSize json.RawMessage  `json:"base_size"`
	Shape    json.RawMessage  `json:"shape"`
	Mapping  map[string]int64 `json:"mapping"`
	Order    Order            `json:"order"`
	Base     string           `json:"base"`
}

func unmarshalNumeric(data []byte, class Class) (Type, error) {
	var w numericWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode "+string(class)+" descriptor")
	}
	size, _, err := sizeOf(w.Size, "size")
	if err != nil {
		return nil, err
	}
	baseSize, _, err := sizeOf(w.BaseSize, "base_size")
	if err != nil {
		return nil, err
	}
	shape, err := shapeOf(w.Shape)
	if err != nil {
		return nil, err
	}

	switch class {
	case ClassInteger:
		return &Integer{Size: size, BaseSize: baseSize, Order: w.Order, Base: w.Base, Shape: shape}, nil
	case ClassFloat:
		return &Float{Size: size, BaseSize: baseSize, Order: w.Order, Base: w.Base, Shape: shape}, nil
	default:
		return &Enum{Size: size, BaseSize: baseSize, Order: w.Order, Base: w.Base, Mapping: w.Mapping, Shape: shape}, nil
	}
}

type stringWire struct {
	StrSize      json.RawMessage `json:"strsize"`
	SizeAlias    json.RawMessage `json:"size"`
	BaseSize     json.RawMessage `json:"base_size"`
	Shape        json.RawMessage `json:"shape"`
	Cset         Charset         `json:"cset"`
	CharsetAlias Charset         `json:"charset"`
	StrPad       StrPad          `json:"strpad"`
	PaddingAlias StrPad          `json:"padding"`
	Order        Order           `json:"order"`
}

func unmarshalString(data []byte) (Type, error) {
	var w stringWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode H5T_STRING descriptor")
	}

	strSize, err := strSizeOf(w.StrSize, "strsize")
	if err != nil {
		return nil, err
	}

	// "size" doubles as the itemsize on encoded output and as an alias for
	// "strsize" on input; "strsize" wins when both are present.
	var size int
	if len(w.SizeAlias) > 0 {
		alias, err := strSizeOf(w.SizeAlias, "size")
		if err != nil {
			return nil, err
		}
		if alias != nil && !alias.Variable {
			size = alias.Length
		}
		if strSize == nil {
			strSize = alias
		}
	}

	baseSize, _, err := sizeOf(w.BaseSize, "base_size")
	if err != nil {
		return nil, err
	}
	shape, err := shapeOf(w.Shape)
	if err != nil {
		return nil, err
	}

	cset := w.Cset
	if cset == "" {
		cset = w.CharsetAlias
	}
	pad := w.StrPad
	if pad == "" {
		pad = w.PaddingAlias
	}

	return &String{
		StrSize:  strSize,
		Charset:  cset,
		Pad:      pad,
		Order:    w.Order,
		Shape:    shape,
		Size:     size,
		BaseSize: baseSize,
	}, nil
}

type fieldWire struct {
	Type json.RawMessage `json:"type"`
	Name string          `json:"name"`
}

func unmarshalCompound(data []byte) (Type, error) {
	var w struct {
		Fields []fieldWire `json:"fields"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode H5T_COMPOUND descriptor")
	}

	fields := make([]Field, len(w.Fields))
	for i, fw := range w.Fields {
		fields[i].Name = fw.Name
		if len(fw.Type) > 0 {
			ft, err := Unmarshal(fw.Type)
			if err != nil {
				return nil, err
			}
			fields[i].Type = ft
		}
	}
	return &Compound{Fields: fields}, nil
}

func unmarshalArray(data []byte) (Type, error) {
	var w struct {
		Shape json.RawMessage `json:"shape"`
		Base  json.RawMessage `json:"base"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode H5T_ARRAY descriptor")
	}
	shape, err := shapeOf(w.Shape)
	if err != nil {
		return nil, err
	}
	a := &Array{Shape: shape}
	if len(w.Base) > 0 {
		base, err := Unmarshal(w.Base)
		if err != nil {
			return nil, err
		}
		a.Base = base
	}
	return a, nil
}

func unmarshalVarLen(data []byte) (Type, error) {
	var w struct {
		Base     json.RawMessage `json:"base"`
		BaseSize json.RawMessage `json:"base_size"`
		Shape    json.RawMessage `json:"shape"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode H5T_VLEN descriptor")
	}
	baseSize, _, err := sizeOf(w.BaseSize, "base_size")
	if err != nil {
		return nil, err
	}
	shape, err := shapeOf(w.Shape)
	if err != nil {
		return nil, err
	}
	v := &VarLen{BaseSize: baseSize, Shape: shape}
	if len(w.Base) > 0 {
		base, err := Unmarshal(w.Base)
		if err != nil {
			return nil, err
		}
		v.Base = base
	}
	return v, nil
}

func unmarshalOpaque(data []byte) (Type, error) {
	var w struct {
		Size  json.RawMessage `json:"size"`
		Shape json.RawMessage `json:"shape"`
		Order Order           `json:"order"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode H5T_OPAQUE descriptor")
	}
	o := &Opaque{Order: w.Order}
	if n, present, err := sizeOf(w.Size, "size"); err != nil {
		return nil, err
	} else if present {
		o.Size = &n
	}
	shape, err := shapeOf(w.Shape)
	if err != nil {
		return nil, err
	}
	o.Shape = shape
	return o, nil
}

func unmarshalReference(data []byte) (Type, error) {
	var w struct {
		Base  string `json:"base"`
		Order Order  `json:"order"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.InvalidDescriptor(err, "decode H5T_REFERENCE descriptor")
	}
	return &Reference{Base: w.Base, Order: w.Order}, nil
}

// MarshalJSON implementations render the original wire keys (strsize, cset,
// strpad). Alias keys are accepted on input only.

func (p Predefined) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// MarshalJSON renders only the opaque identity; structural detail of shared
// types is never re-exposed.
func (c *Committed) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ID)
}

func (s *StrSize) MarshalJSON() ([]byte, error) {
	if s.Variable {
		return json.Marshal(Variable)
	}
	return json.Marshal(s.Length)
}

func (t *Integer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class    Class  `json:"class"`
		Size     int    `json:"size,omitempty"`
		BaseSize int    `json:"base_size,omitempty"`
		Order    Order  `json:"order,omitempty"`
		Base     string `json:"base,omitempty"`
		Shape    []int  `json:"shape,omitempty"`
	}{ClassInteger, t.Size, t.BaseSize, t.Order, t.Base, t.Shape})
}

func (t *Float) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class    Class  `json:"class"`
		Size     int    `json:"size,omitempty"`
		BaseSize int    `json:"base_size,omitempty"`
		Order    Order  `json:"order,omitempty"`
		Base     string `json:"base,omitempty"`
		Shape    []int  `json:"shape,omitempty"`
	}{ClassFloat, t.Size, t.BaseSize, t.Order, t.Base, t.Shape})
}

func (t *Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class    Class            `json:"class"`
		Size     int              `json:"size,omitempty"`
		BaseSize int              `json:"base_size,omitempty"`
		Order    Order            `json:"order,omitempty"`
		Base     string           `json:"base,omitempty"`
		Mapping  map[string]int64 `json:"mapping,omitempty"`
		Shape    []int            `json:"shape,omitempty"`
	}{ClassEnum, t.Size, t.BaseSize, t.Order, t.Base, t.Mapping, t.Shape})
}

func (t *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class    Class    `json:"class"`
		Size     int      `json:"size,omitempty"`
		BaseSize int      `json:"base_size,omitempty"`
		StrSize  *StrSize `json:"strsize,omitempty"`
		Cset     Charset  `json:"cset,omitempty"`
		StrPad   StrPad   `json:"strpad,omitempty"`
		Order    Order    `json:"order,omitempty"`
		Shape    []int    `json:"shape,omitempty"`
	}{ClassString, t.Size, t.BaseSize, t.StrSize, t.Charset, t.Pad, t.Order, t.Shape})
}

func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"name"`
		Type Type   `json:"type"`
	}{f.Name, f.Type})
}

func (t *Compound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class  Class   `json:"class"`
		Fields []Field `json:"fields"`
	}{ClassCompound, t.Fields})
}

func (t *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class Class `json:"class"`
		Shape []int `json:"shape"`
		Base  Type  `json:"base"`
	}{ClassArray, t.Shape, t.Base})
}

func (t *VarLen) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class    Class  `json:"class"`
		Size     string `json:"size"`
		BaseSize int    `json:"base_size,omitempty"`
		Base     Type   `json:"base"`
	}{ClassVarLen, Variable, t.BaseSize, t.Base})
}

func (t *Opaque) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class Class `json:"class"`
		Size  *int  `json:"size,omitempty"`
		Order Order `json:"order,omitempty"`
		Shape []int `json:"shape,omitempty"`
	}{ClassOpaque, t.Size, t.Order, t.Shape})
}

func (t *Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Class Class  `json:"class"`
		Order Order  `json:"order,omitempty"`
		Base  string `json:"base,omitempty"`
	}{ClassReference, t.Order, t.Base})
}
