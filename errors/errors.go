package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in type processing the error occurred
type Phase string

const (
	PhaseParse        Phase = "parse"        // wire descriptor parsing
	PhaseResolve      Phase = "resolve"      // predefined name resolution
	PhaseReflect      Phase = "reflect"      // native type to descriptor
	PhaseCanonicalize Phase = "canonicalize" // descriptor to canonical wire form
	PhaseBuild        Phase = "build"        // descriptor to native type
)

// Kind categorizes the error
type Kind string

const (
	KindTypeName               Kind = "type_name"               // unknown or malformed canonical name
	KindTypeClass              Kind = "type_class"              // missing or invalid type class
	KindFieldMissing           Kind = "field_missing"           // required descriptor key absent
	KindUnsupportedCombination Kind = "unsupported_combination" // shape on a variable-length type
	KindNonASCIIName           Kind = "non_ascii_name"          // field name not ASCII-representable
	KindUnknownExtension       Kind = "unknown_extension"       // unrecognized native extension kind
	KindInvalidSize            Kind = "invalid_size"            // non-positive or non-integer size
	KindTypeMismatch           Kind = "type_mismatch"           // descriptor attributes disagree with base
	KindDuplicateField         Kind = "duplicate_field"         // compound field name repeated
	KindInvalidDescriptor      Kind = "invalid_descriptor"      // wire form is not a descriptor at all
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Class  string
	Name   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Class != "" || e.Name != "" {
		b.WriteString(": ")
		if e.Class != "" && e.Name != "" {
			b.WriteString("class ")
			b.WriteString(e.Class)
			b.WriteString(", name ")
			b.WriteString(e.Name)
		} else if e.Class != "" {
			b.WriteString("class ")
			b.WriteString(e.Class)
		} else {
			b.WriteString("name ")
			b.WriteString(e.Name)
		}
	}

	if e.Detail != "" {
		if e.Class != "" || e.Name != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Class sets the wire type class
func (b *Builder) Class(c string) *Builder {
	b.err.Class = c
	return b
}

// Name sets the type or field name
func (b *Builder) Name(n string) *Builder {
	b.err.Name = n
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeName creates an unknown-or-malformed canonical name error
func TypeName(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeName,
		Name:   name,
		Detail: fmt.Sprintf("invalid predefined type name %q", name),
	}
}

// TypeClass creates a missing-or-invalid class error
func TypeClass(phase Phase, path []string, class string) *Error {
	detail := "type class not provided"
	if class != "" {
		detail = fmt.Sprintf("invalid type class %q", class)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindTypeClass,
		Path:   path,
		Class:  class,
		Detail: detail,
	}
}

// FieldMissing creates a missing required key error
func FieldMissing(phase Phase, path []string, key string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required key %q not provided", key),
	}
}

// UnsupportedCombination creates an error for a shape on a variable-length type
func UnsupportedCombination(phase Phase, path []string, class string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedCombination,
		Path:   path,
		Class:  class,
		Detail: "array shape is not supported for variable-length types",
	}
}

// NonASCIIName creates an error for a field name outside the required character set
func NonASCIIName(phase Phase, path []string, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNonASCIIName,
		Path:   path,
		Detail: fmt.Sprintf("field name %q is not ASCII-representable", name),
		Value:  name,
	}
}

// UnknownExtension creates an error for an unrecognized native extension kind
func UnknownExtension(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownExtension,
		Path:   path,
		Detail: detail,
	}
}

// InvalidSize creates an error for a non-positive or non-integer size
func InvalidSize(phase Phase, path []string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidSize,
		Path:   path,
		Detail: fmt.Sprintf("invalid size %v", value),
		Value:  value,
	}
}

// DuplicateField creates an error for a repeated compound field name
func DuplicateField(phase Phase, path []string, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicateField,
		Path:   path,
		Name:   name,
		Detail: fmt.Sprintf("duplicate field name %q", name),
	}
}

// TypeMismatch creates an error for descriptor attributes that disagree with
// what the predefined base implies
func TypeMismatch(phase Phase, path []string, base, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Path:   path,
		Name:   base,
		Detail: detail,
	}
}

// InvalidDescriptor creates an error for wire input that is not a descriptor
func InvalidDescriptor(cause error, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidDescriptor,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
