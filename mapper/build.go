package mapper

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/dtype"
	"github.com/arraykit/typemap/errors"
	"github.com/arraykit/typemap/registry"
)

// BuildTop decodes a wire descriptor into a native type. Compound
// descriptors become ordered records; everything else goes through
// BuildBase.
func BuildTop(t descriptor.Type) (*dtype.DType, error) {
	return buildTop(t, nil)
}

// BuildBase decodes a non-compound descriptor node into a native type.
func BuildBase(t descriptor.Type) (*dtype.DType, error) {
	return buildBase(t, nil)
}

func buildTop(t descriptor.Type, path []string) (*dtype.DType, error) {
	c, ok := t.(*descriptor.Compound)
	if !ok {
		return buildBase(t, path)
	}

	if len(c.Fields) == 0 {
		return nil, errors.FieldMissing(errors.PhaseBuild, path, "fields")
	}

	seen := make(map[string]struct{}, len(c.Fields))
	fields := make([]dtype.Field, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "name")
		}
		if !asciiName(f.Name) {
			return nil, errors.NonASCIIName(errors.PhaseBuild, path, f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, errors.DuplicateField(errors.PhaseBuild, path, f.Name)
		}
		seen[f.Name] = struct{}{}

		if f.Type == nil {
			return nil, errors.FieldMissing(errors.PhaseBuild, append(path, f.Name), "type")
		}
		ft, err := buildTop(f.Type, append(path, f.Name))
		if err != nil {
			return nil, err
		}
		fields[i] = dtype.Field{Name: f.Name, Type: ft}
	}

	Logger().Debug("built record type",
		zap.Int("fields", len(fields)),
		zap.Strings("path", path))
	return dtype.Structured(fields), nil
}

func buildBase(t descriptor.Type, path []string) (*dtype.DType, error) {
	switch v := t.(type) {
	case descriptor.Predefined:
		return registry.Resolve(string(v), registry.ClassAny)

	case *descriptor.Integer:
		if v.Base == "" {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "base")
		}
		dt, err := registry.Resolve(v.Base, registry.ClassInteger)
		if err != nil {
			return nil, err
		}
		return applyShape(dt, v.Shape, path)

	case *descriptor.Float:
		if v.Base == "" {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "base")
		}
		dt, err := registry.Resolve(v.Base, registry.ClassFloat)
		if err != nil {
			return nil, err
		}
		return applyShape(dt, v.Shape, path)

	case *descriptor.String:
		return buildString(v, path)

	case *descriptor.VarLen:
		if len(v.Shape) > 0 {
			return nil, errors.UnsupportedCombination(errors.PhaseBuild, path, string(descriptor.ClassVarLen))
		}
		if v.Base == nil {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "base")
		}
		name, ok := v.Base.(descriptor.Predefined)
		if !ok {
			return nil, errors.New(errors.PhaseBuild, errors.KindTypeClass).
				Path(path...).
				Class(string(descriptor.ClassVarLen)).
				Detail("variable-length base must be a predefined type name").
				Build()
		}
		elem, err := registry.Resolve(string(name), registry.ClassAny)
		if err != nil {
			return nil, err
		}
		return dtype.VarLenOf(elem), nil

	case *descriptor.Opaque:
		if len(v.Shape) > 0 {
			return nil, errors.UnsupportedCombination(errors.PhaseBuild, path, string(descriptor.ClassOpaque))
		}
		if v.Size == nil {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "size")
		}
		if *v.Size <= 0 {
			return nil, errors.InvalidSize(errors.PhaseBuild, append(path, "size"), *v.Size)
		}
		return dtype.Opaque(*v.Size), nil

	case *descriptor.Array:
		if len(v.Shape) == 0 {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "shape")
		}
		if v.Base == nil {
			return nil, errors.FieldMissing(errors.PhaseBuild, path, "base")
		}
		elem, err := buildBase(v.Base, append(path, "base"))
		if err != nil {
			return nil, err
		}
		return applyShape(elem, v.Shape, path)

	case *descriptor.Enum:
		return nil, errors.New(errors.PhaseBuild, errors.KindTypeClass).
			Path(path...).
			Class(string(descriptor.ClassEnum)).
			Detail("enumeration types cannot be built directly").
			Build()

	case *descriptor.Reference:
		return nil, errors.New(errors.PhaseBuild, errors.KindTypeClass).
			Path(path...).
			Class(string(descriptor.ClassReference)).
			Detail("reference types cannot be built directly").
			Build()

	case *descriptor.Committed:
		return nil, errors.New(errors.PhaseBuild, errors.KindTypeClass).
			Path(path...).
			Detail("committed type %q must be resolved by the storage engine", v.ID).
			Build()

	case *descriptor.Compound:
		return nil, errors.New(errors.PhaseBuild, errors.KindTypeClass).
			Path(path...).
			Class(string(descriptor.ClassCompound)).
			Detail("compound types are not valid as a base type").
			Build()

	default:
		return nil, errors.TypeClass(errors.PhaseBuild, path, "")
	}
}

func buildString(v *descriptor.String, path []string) (*dtype.DType, error) {
	if v.StrSize == nil {
		return nil, errors.FieldMissing(errors.PhaseBuild, path, "strsize")
	}
	if v.Charset == "" {
		return nil, errors.FieldMissing(errors.PhaseBuild, path, "cset")
	}

	if v.StrSize.Variable {
		if len(v.Shape) > 0 {
			return nil, errors.UnsupportedCombination(errors.PhaseBuild, path, string(descriptor.ClassString))
		}
		switch v.Charset {
		case descriptor.CharsetASCII:
			return dtype.VarLenText(dtype.CharsetASCII), nil
		case descriptor.CharsetUTF8:
			return dtype.VarLenText(dtype.CharsetUTF8), nil
		default:
			return nil, errors.New(errors.PhaseBuild, errors.KindTypeClass).
				Path(path...).
				Class(string(descriptor.ClassString)).
				Detail("unsupported character set %q", string(v.Charset)).
				Build()
		}
	}

	if v.StrSize.Length <= 0 {
		return nil, errors.InvalidSize(errors.PhaseBuild, append(path, "strsize"), v.StrSize.Length)
	}
	return applyShape(dtype.Bytes(v.StrSize.Length), v.Shape, path)
}

func applyShape(dt *dtype.DType, shape []int, path []string) (*dtype.DType, error) {
	if len(shape) == 0 {
		return dt, nil
	}
	for _, d := range shape {
		if d <= 0 {
			return nil, errors.InvalidSize(errors.PhaseBuild, append(path, "shape"), d)
		}
	}
	return dt.WithShape(shape...), nil
}

// asciiName reports whether the name survives a lossless narrow-charset
// encoding. Names outside ASCII are rejected, never transliterated.
func asciiName(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
