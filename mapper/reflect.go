package mapper

import (
	"go.uber.org/zap"

	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/dtype"
	"github.com/arraykit/typemap/errors"
	"github.com/arraykit/typemap/registry"
)

// ReflectTop encodes a native type as a wire descriptor tree. Structured
// types become compounds with field order preserved; everything else goes
// through ReflectElement.
func ReflectTop(dt *dtype.DType) (descriptor.Type, error) {
	return reflectTop(dt, nil)
}

// ReflectElement encodes a non-record native type, classifying object
// extensions through the dtype introspection methods.
func ReflectElement(dt *dtype.DType) (descriptor.Type, error) {
	return reflectElement(dt, nil)
}

// ReflectBase encodes a primitive native type. Shaped types wrap the element
// descriptor in an array node.
func ReflectBase(dt *dtype.DType) (descriptor.Type, error) {
	return reflectBase(dt, nil)
}

func reflectTop(dt *dtype.DType, path []string) (descriptor.Type, error) {
	if dt == nil {
		return nil, errors.New(errors.PhaseReflect, errors.KindUnknownExtension).
			Path(path...).
			Detail("nil native type").
			Build()
	}
	if dt.NumFields() == 0 {
		return reflectElement(dt, path)
	}

	fields := dt.Fields()
	out := make([]descriptor.Field, len(fields))
	for i, f := range fields {
		ft, err := reflectTop(f.Type, append(path, f.Name))
		if err != nil {
			return nil, err
		}
		out[i] = descriptor.Field{Name: f.Name, Type: ft}
	}
	Logger().Debug("reflected record type",
		zap.Int("fields", len(out)),
		zap.Strings("path", path))
	return &descriptor.Compound{Fields: out}, nil
}

func reflectElement(dt *dtype.DType, path []string) (descriptor.Type, error) {
	if dt.NumFields() > 0 {
		return reflectTop(dt, path)
	}
	if dt.Kind() != dtype.KindObject {
		return reflectBase(dt, path)
	}

	base := dt.Base()
	if cs, ok := base.VlenText(); ok {
		return &descriptor.String{
			StrSize:  descriptor.VariableSize(),
			Charset:  wireCharset(cs),
			Pad:      descriptor.PadNullTerm,
			Order:    descriptor.OrderNone,
			BaseSize: base.Size(),
		}, nil
	}
	if elem, ok := base.VlenType(); ok {
		et, err := reflectBase(elem, append(path, "base"))
		if err != nil {
			return nil, err
		}
		return &descriptor.VarLen{Base: et, BaseSize: base.Size()}, nil
	}
	if rk, ok := base.RefType(); ok {
		return &descriptor.Reference{
			Base:  registry.RefName(rk),
			Order: descriptor.OrderNone,
		}, nil
	}
	return nil, errors.UnknownExtension(errors.PhaseReflect, path,
		"object type carries no recognized extension")
}

func reflectBase(dt *dtype.DType, path []string) (descriptor.Type, error) {
	base := dt.Base()
	var out descriptor.Type

	switch base.Kind() {
	case dtype.KindBytes:
		n := base.Size()
		out = &descriptor.String{
			StrSize:  descriptor.Fixed(n),
			Charset:  descriptor.CharsetASCII,
			Pad:      descriptor.PadNullPad,
			Order:    descriptor.OrderNone,
			Size:     n,
			BaseSize: n,
		}
	case dtype.KindOpaque:
		n := base.Size()
		out = &descriptor.Opaque{Size: &n, Order: descriptor.OrderNone}
	case dtype.KindInt, dtype.KindUint, dtype.KindFloat:
		// Base is set only on an exact registry match; non-predefined
		// widths stay structural.
		name, _ := registry.BaseName(base)
		order := wireOrder(base.Order())
		size := base.Size()
		if m, ok := base.EnumMapping(); ok {
			out = &descriptor.Enum{Base: name, Order: order, Mapping: m, Size: size, BaseSize: size}
		} else if base.Kind() == dtype.KindFloat {
			out = &descriptor.Float{Base: name, Order: order, Size: size, BaseSize: size}
		} else {
			out = &descriptor.Integer{Base: name, Order: order, Size: size, BaseSize: size}
		}
	default:
		return nil, errors.UnknownExtension(errors.PhaseReflect, path,
			"native kind "+base.Kind().String()+" has no wire form")
	}

	if shape := dt.Shape(); len(shape) > 0 {
		return &descriptor.Array{Shape: shape, Base: out}, nil
	}
	return out, nil
}

func wireOrder(o dtype.ByteOrder) descriptor.Order {
	switch o {
	case dtype.LittleEndian:
		return descriptor.OrderLE
	case dtype.BigEndian:
		return descriptor.OrderBE
	default:
		return descriptor.OrderNone
	}
}

func wireCharset(cs dtype.Charset) descriptor.Charset {
	if cs == dtype.CharsetUTF8 {
		return descriptor.CharsetUTF8
	}
	return descriptor.CharsetASCII
}
