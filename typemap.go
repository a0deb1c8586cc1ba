package typemap

import (
	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/dtype"
	"github.com/arraykit/typemap/mapper"
)

// Reflect encodes a native type as a wire descriptor tree.
func Reflect(dt *dtype.DType) (descriptor.Type, error) {
	return mapper.ReflectTop(dt)
}

// ReflectJSON encodes a native type directly to wire JSON.
func ReflectJSON(dt *dtype.DType) ([]byte, error) {
	t, err := mapper.ReflectTop(dt)
	if err != nil {
		return nil, err
	}
	return descriptor.Marshal(t)
}

// Build decodes a descriptor tree into a native type.
func Build(t descriptor.Type) (*dtype.DType, error) {
	return mapper.BuildTop(t)
}

// BuildJSON parses wire JSON and decodes it into a native type.
func BuildJSON(data []byte) (*dtype.DType, error) {
	t, err := descriptor.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return mapper.BuildTop(t)
}

// Canonicalize rewrites a descriptor tree to its compact external form.
func Canonicalize(t descriptor.Type) (descriptor.Type, error) {
	return mapper.Canonicalize(t)
}

// CanonicalJSON parses wire JSON, canonicalizes it, and re-encodes the
// result.
func CanonicalJSON(data []byte) ([]byte, error) {
	t, err := descriptor.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	c, err := mapper.Canonicalize(t)
	if err != nil {
		return nil, err
	}
	return descriptor.Marshal(c)
}
