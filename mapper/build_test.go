package mapper

import (
	"errors"
	"testing"

	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/dtype"
	tmerrors "github.com/arraykit/typemap/errors"
)

func TestBuildBasePredefined(t *testing.T) {
	tests := []struct {
		name      string
		wantKind  dtype.Kind
		wantSize  int
		wantOrder dtype.ByteOrder
	}{
		{"H5T_STD_I32LE", dtype.KindInt, 4, dtype.LittleEndian},
		{"H5T_STD_I32BE", dtype.KindInt, 4, dtype.BigEndian},
		{"H5T_STD_UI64LE", dtype.KindUint, 8, dtype.LittleEndian},
		{"H5T_IEEE_F32BE", dtype.KindFloat, 4, dtype.BigEndian},
		{"H5T_STD_I8", dtype.KindInt, 1, dtype.LittleEndian},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildBase(descriptor.Predefined(tc.name))
			if err != nil {
				t.Fatalf("BuildBase failed: %v", err)
			}
			if got.Kind() != tc.wantKind || got.Size() != tc.wantSize || got.Order() != tc.wantOrder {
				t.Errorf("got %v/%d/%v, want %v/%d/%v",
					got.Kind(), got.Size(), got.Order(),
					tc.wantKind, tc.wantSize, tc.wantOrder)
			}
		})
	}
}

func TestBuildBaseNumericClasses(t *testing.T) {
	got, err := BuildBase(&descriptor.Integer{Base: "H5T_STD_I16LE"})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	if got.Kind() != dtype.KindInt || got.Size() != 2 {
		t.Errorf("got %v/%d, want int/2", got.Kind(), got.Size())
	}

	got, err = BuildBase(&descriptor.Float{Base: "H5T_IEEE_F64BE", Shape: []int{2, 2}})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	if got.Kind() != dtype.KindFloat || got.Order() != dtype.BigEndian {
		t.Errorf("got %v/%v, want float/be", got.Kind(), got.Order())
	}
	if s := got.Shape(); len(s) != 2 || s[0] != 2 || s[1] != 2 {
		t.Errorf("Shape = %v, want [2 2]", s)
	}
}

func TestBuildBaseStrings(t *testing.T) {
	got, err := BuildBase(&descriptor.String{
		StrSize: descriptor.Fixed(16),
		Charset: descriptor.CharsetASCII,
	})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	if got.Kind() != dtype.KindBytes || got.Size() != 16 {
		t.Errorf("got %v/%d, want bytes/16", got.Kind(), got.Size())
	}

	got, err = BuildBase(&descriptor.String{
		StrSize: descriptor.VariableSize(),
		Charset: descriptor.CharsetUTF8,
	})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	cs, ok := got.VlenText()
	if !ok || cs != dtype.CharsetUTF8 {
		t.Errorf("got %v, want vlen utf8 text", got)
	}
}

func TestBuildBaseVarLen(t *testing.T) {
	got, err := BuildBase(&descriptor.VarLen{Base: descriptor.Predefined("H5T_STD_I32LE")})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	elem, ok := got.VlenType()
	if !ok {
		t.Fatalf("got %v, want vlen container", got)
	}
	if elem.Kind() != dtype.KindInt || elem.Size() != 4 {
		t.Errorf("element = %v/%d, want int/4", elem.Kind(), elem.Size())
	}
}

func TestBuildBaseOpaque(t *testing.T) {
	n := 9
	got, err := BuildBase(&descriptor.Opaque{Size: &n})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	if got.Kind() != dtype.KindOpaque || got.Size() != 9 {
		t.Errorf("got %v/%d, want opaque/9", got.Kind(), got.Size())
	}
}

func TestBuildBaseArray(t *testing.T) {
	got, err := BuildBase(&descriptor.Array{
		Shape: []int{4},
		Base:  descriptor.Predefined("H5T_IEEE_F32LE"),
	})
	if err != nil {
		t.Fatalf("BuildBase failed: %v", err)
	}
	if s := got.Shape(); len(s) != 1 || s[0] != 4 {
		t.Errorf("Shape = %v, want [4]", s)
	}
	if got.ItemSize() != 16 {
		t.Errorf("ItemSize = %d, want 16", got.ItemSize())
	}
}

func TestBuildBaseErrors(t *testing.T) {
	zero := 0
	tests := []struct {
		name string
		in   descriptor.Type
		want *tmerrors.Error
	}{
		{
			name: "integer missing base",
			in:   &descriptor.Integer{Size: 4},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "integer wrong table",
			in:   &descriptor.Integer{Base: "H5T_IEEE_F32LE"},
			want: &tmerrors.Error{Phase: tmerrors.PhaseResolve, Kind: tmerrors.KindTypeName},
		},
		{
			name: "unknown predefined",
			in:   descriptor.Predefined("H5T_STD_I7LE"),
			want: &tmerrors.Error{Phase: tmerrors.PhaseResolve, Kind: tmerrors.KindTypeName},
		},
		{
			name: "string missing strsize",
			in:   &descriptor.String{Charset: descriptor.CharsetASCII},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "string missing cset",
			in:   &descriptor.String{StrSize: descriptor.Fixed(4)},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "variable string with shape",
			in: &descriptor.String{
				StrSize: descriptor.VariableSize(),
				Charset: descriptor.CharsetASCII,
				Shape:   []int{3},
			},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindUnsupportedCombination},
		},
		{
			name: "variable string bad charset",
			in: &descriptor.String{
				StrSize: descriptor.VariableSize(),
				Charset: "H5T_CSET_EBCDIC",
			},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindTypeClass},
		},
		{
			name: "fixed string zero length",
			in: &descriptor.String{
				StrSize: descriptor.Fixed(0),
				Charset: descriptor.CharsetASCII,
			},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindInvalidSize},
		},
		{
			name: "vlen with shape",
			in: &descriptor.VarLen{
				Base:  descriptor.Predefined("H5T_STD_I32LE"),
				Shape: []int{2},
			},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindUnsupportedCombination},
		},
		{
			name: "vlen structural base",
			in:   &descriptor.VarLen{Base: &descriptor.Integer{Base: "H5T_STD_I32LE"}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindTypeClass},
		},
		{
			name: "opaque missing size",
			in:   &descriptor.Opaque{},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "opaque zero size",
			in:   &descriptor.Opaque{Size: &zero},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindInvalidSize},
		},
		{
			name: "opaque with shape",
			in:   &descriptor.Opaque{Size: &zero, Shape: []int{2}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindUnsupportedCombination},
		},
		{
			name: "array negative dim",
			in: &descriptor.Array{
				Shape: []int{-1},
				Base:  descriptor.Predefined("H5T_STD_I32LE"),
			},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindInvalidSize},
		},
		{
			name: "enum class",
			in:   &descriptor.Enum{Base: "H5T_STD_UI8LE", Mapping: map[string]int64{"A": 0}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindTypeClass},
		},
		{
			name: "reference class",
			in:   &descriptor.Reference{Base: "H5T_STD_REF_OBJ"},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindTypeClass},
		},
		{
			name: "committed type",
			in:   &descriptor.Committed{ID: "1234"},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindTypeClass},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildBase(tc.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v/%v", err, tc.want.Phase, tc.want.Kind)
			}
		})
	}
}

func TestBuildTopCompound(t *testing.T) {
	in := &descriptor.Compound{Fields: []descriptor.Field{
		{Name: "a", Type: descriptor.Predefined("H5T_STD_I32LE")},
		{Name: "b", Type: descriptor.Predefined("H5T_IEEE_F64LE")},
	}}

	got, err := BuildTop(in)
	if err != nil {
		t.Fatalf("BuildTop failed: %v", err)
	}
	if got.Kind() != dtype.KindRecord || got.NumFields() != 2 {
		t.Fatalf("got %v with %d fields", got.Kind(), got.NumFields())
	}
	fields := got.Fields()
	if fields[0].Name != "a" || fields[1].Name != "b" {
		t.Errorf("field order = %q, %q", fields[0].Name, fields[1].Name)
	}
	if fields[0].Type.Kind() != dtype.KindInt || fields[1].Type.Kind() != dtype.KindFloat {
		t.Errorf("field kinds = %v, %v", fields[0].Type.Kind(), fields[1].Type.Kind())
	}
	if got.ItemSize() != 12 {
		t.Errorf("ItemSize = %d, want 12", got.ItemSize())
	}
}

func TestBuildTopNestedCompound(t *testing.T) {
	in := &descriptor.Compound{Fields: []descriptor.Field{
		{Name: "pos", Type: &descriptor.Compound{Fields: []descriptor.Field{
			{Name: "x", Type: descriptor.Predefined("H5T_IEEE_F64LE")},
			{Name: "y", Type: descriptor.Predefined("H5T_IEEE_F64LE")},
		}}},
	}}

	got, err := BuildTop(in)
	if err != nil {
		t.Fatalf("BuildTop failed: %v", err)
	}
	inner := got.Fields()[0].Type
	if inner.Kind() != dtype.KindRecord || inner.NumFields() != 2 {
		t.Errorf("inner = %v with %d fields", inner.Kind(), inner.NumFields())
	}
}

func TestBuildTopCompoundErrors(t *testing.T) {
	tests := []struct {
		name string
		in   *descriptor.Compound
		want *tmerrors.Error
	}{
		{
			name: "empty fields",
			in:   &descriptor.Compound{},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "missing field name",
			in: &descriptor.Compound{Fields: []descriptor.Field{
				{Type: descriptor.Predefined("H5T_STD_I32LE")},
			}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "missing field type",
			in: &descriptor.Compound{Fields: []descriptor.Field{
				{Name: "a"},
			}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindFieldMissing},
		},
		{
			name: "non-ascii name",
			in: &descriptor.Compound{Fields: []descriptor.Field{
				{Name: "température", Type: descriptor.Predefined("H5T_STD_I32LE")},
			}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindNonASCIIName},
		},
		{
			name: "duplicate name",
			in: &descriptor.Compound{Fields: []descriptor.Field{
				{Name: "a", Type: descriptor.Predefined("H5T_STD_I32LE")},
				{Name: "a", Type: descriptor.Predefined("H5T_STD_I64LE")},
			}},
			want: &tmerrors.Error{Phase: tmerrors.PhaseBuild, Kind: tmerrors.KindDuplicateField},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildTop(tc.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v/%v", err, tc.want.Phase, tc.want.Kind)
			}
		})
	}
}

func TestBuildTopErrorPath(t *testing.T) {
	in := &descriptor.Compound{Fields: []descriptor.Field{
		{Name: "outer", Type: &descriptor.Compound{Fields: []descriptor.Field{
			{Name: "inner", Type: &descriptor.Integer{}},
		}}},
	}}

	_, err := BuildTop(in)
	if err == nil {
		t.Fatal("expected error")
	}
	var e *tmerrors.Error
	if !errors.As(err, &e) {
		t.Fatalf("error type = %T", err)
	}
	if len(e.Path) != 2 || e.Path[0] != "outer" || e.Path[1] != "inner" {
		t.Errorf("Path = %v, want [outer inner]", e.Path)
	}
}
