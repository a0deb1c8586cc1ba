package mapper

import (
	"strconv"

	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/errors"
	"github.com/arraykit/typemap/registry"
)

// Canonicalize rewrites a descriptor tree to its compact external form.
// Committed types are returned as-is and marshal to their bare identity.
// Integer, float, and reference nodes carrying a base name collapse to the
// bare name after the sibling attributes are checked against what the name
// implies. Compound, array, and variable-length nodes are rewritten per
// child. Everything else passes through unchanged.
//
// The pass never touches native types; input and output are both descriptor
// trees.
func Canonicalize(t descriptor.Type) (descriptor.Type, error) {
	return canonicalize(t, nil)
}

func canonicalize(t descriptor.Type, path []string) (descriptor.Type, error) {
	switch v := t.(type) {
	case *descriptor.Committed:
		return v, nil

	case *descriptor.Integer:
		// A shape keeps the node structural; collapsing would drop it.
		if v.Base == "" || len(v.Shape) > 0 {
			return v, nil
		}
		if err := checkNumericBase(v.Base, registry.ClassInteger, v.Size, v.Order, path); err != nil {
			return nil, err
		}
		return descriptor.Predefined(v.Base), nil

	case *descriptor.Float:
		if v.Base == "" || len(v.Shape) > 0 {
			return v, nil
		}
		if err := checkNumericBase(v.Base, registry.ClassFloat, v.Size, v.Order, path); err != nil {
			return nil, err
		}
		return descriptor.Predefined(v.Base), nil

	case *descriptor.Reference:
		if v.Base == "" {
			return v, nil
		}
		if _, ok := registry.RefKindOf(v.Base); !ok {
			return nil, errors.New(errors.PhaseCanonicalize, errors.KindTypeName).
				Path(path...).
				Name(v.Base).
				Detail("invalid reference base %q", v.Base).
				Build()
		}
		return descriptor.Predefined(v.Base), nil

	case *descriptor.Compound:
		fields := make([]descriptor.Field, len(v.Fields))
		for i, f := range v.Fields {
			ft, err := canonicalize(f.Type, append(path, f.Name))
			if err != nil {
				return nil, err
			}
			fields[i] = descriptor.Field{Name: f.Name, Type: ft}
		}
		return &descriptor.Compound{Fields: fields}, nil

	case *descriptor.Array:
		base, err := canonicalize(v.Base, append(path, "base"))
		if err != nil {
			return nil, err
		}
		return &descriptor.Array{Shape: v.Shape, Base: base}, nil

	case *descriptor.VarLen:
		if v.Base == nil {
			return v, nil
		}
		base, err := canonicalize(v.Base, append(path, "base"))
		if err != nil {
			return nil, err
		}
		return &descriptor.VarLen{Base: base, Shape: v.Shape, BaseSize: v.BaseSize}, nil

	default:
		return t, nil
	}
}

// checkNumericBase verifies that the declared size and order agree with the
// primitive the base name resolves to. Zero values mean the attribute was
// not declared and are not checked.
func checkNumericBase(base string, class registry.Class, size int, order descriptor.Order, path []string) error {
	dt, err := registry.Resolve(base, class)
	if err != nil {
		return errors.New(errors.PhaseCanonicalize, errors.KindTypeName).
			Path(path...).
			Name(base).
			Cause(err).
			Detail("invalid predefined type name %q", base).
			Build()
	}
	if size != 0 && size != dt.Size() {
		return errors.TypeMismatch(errors.PhaseCanonicalize, path, base,
			"declared size "+strconv.Itoa(size)+" disagrees with "+base)
	}
	if order != "" && order != wireOrder(dt.Order()) {
		return errors.TypeMismatch(errors.PhaseCanonicalize, path, base,
			"declared order "+string(order)+" disagrees with "+base)
	}
	return nil
}
