package registry

import (
	"errors"
	"testing"

	"github.com/arraykit/typemap/dtype"
	tmerrors "github.com/arraykit/typemap/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		class Class
		kind  dtype.Kind
		size  int
		order dtype.ByteOrder
	}{
		{"H5T_STD_I8", ClassAny, dtype.KindInt, 1, dtype.LittleEndian},
		{"H5T_STD_I32LE", ClassAny, dtype.KindInt, 4, dtype.LittleEndian},
		{"H5T_STD_I32BE", ClassAny, dtype.KindInt, 4, dtype.BigEndian},
		{"H5T_STD_UI16BE", ClassInteger, dtype.KindUint, 2, dtype.BigEndian},
		{"H5T_STD_UI64", ClassInteger, dtype.KindUint, 8, dtype.LittleEndian},
		{"H5T_IEEE_F32LE", ClassFloat, dtype.KindFloat, 4, dtype.LittleEndian},
		{"H5T_IEEE_F64BE", ClassAny, dtype.KindFloat, 8, dtype.BigEndian},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dt, err := Resolve(tc.name, tc.class)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if dt.Kind() != tc.kind || dt.Size() != tc.size || dt.Order() != tc.order {
				t.Errorf("Resolve = %v, want kind=%v size=%d order=%v", dt, tc.kind, tc.size, tc.order)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		class Class
	}{
		{"too short", "LE", ClassAny},
		{"empty", "", ClassAny},
		{"unknown name", "H5T_STD_I24LE", ClassAny},
		{"integer in float table", "H5T_STD_I32LE", ClassFloat},
		{"float in integer table", "H5T_IEEE_F64LE", ClassInteger},
		{"reference name not numeric", "H5T_STD_REF_OBJ", ClassAny},
	}

	want := &tmerrors.Error{Phase: tmerrors.PhaseResolve, Kind: tmerrors.KindTypeName}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.input, tc.class)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, want) {
				t.Errorf("error = %v, want type_name", err)
			}
		})
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		want string
		dt   *dtype.DType
	}{
		{"H5T_STD_I32LE", dtype.Signed(4, dtype.LittleEndian)},
		{"H5T_STD_I32BE", dtype.Signed(4, dtype.BigEndian)},
		{"H5T_STD_UI8LE", dtype.Unsigned(1, dtype.LittleEndian)},
		{"H5T_IEEE_F64BE", dtype.Float(8, dtype.BigEndian)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got, ok := BaseName(tc.dt)
			if !ok || got != tc.want {
				t.Errorf("BaseName = %q, %v; want %q", got, ok, tc.want)
			}
		})
	}
}

func TestBaseNameNoMatch(t *testing.T) {
	nonPredefined := []*dtype.DType{
		dtype.Signed(3, dtype.LittleEndian), // odd width
		dtype.Float(2, dtype.LittleEndian),  // no predefined half float
		dtype.Bytes(4),
		dtype.Opaque(4),
		dtype.VarLenText(dtype.CharsetASCII),
		nil,
	}
	for _, dt := range nonPredefined {
		if name, ok := BaseName(dt); ok {
			t.Errorf("BaseName(%v) = %q, want no match", dt, name)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Every table entry must survive Resolve then BaseName with both suffixes.
	for _, base := range Names() {
		for _, suffix := range []string{"LE", "BE"} {
			name := base + suffix
			dt, err := Resolve(name, ClassAny)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", name, err)
			}
			back, ok := BaseName(dt)
			if !ok || back != name {
				t.Errorf("BaseName(Resolve(%q)) = %q, %v", name, back, ok)
			}
		}
	}
}

func TestReferenceNames(t *testing.T) {
	if RefName(dtype.RefObject) != "H5T_STD_REF_OBJ" {
		t.Errorf("RefName(object) = %q", RefName(dtype.RefObject))
	}
	if RefName(dtype.RefRegion) != "H5T_STD_REF_DSETREG" {
		t.Errorf("RefName(region) = %q", RefName(dtype.RefRegion))
	}

	k, ok := RefKindOf("H5T_STD_REF_DSETREG")
	if !ok || k != dtype.RefRegion {
		t.Errorf("RefKindOf = %v, %v", k, ok)
	}
	if _, ok := RefKindOf("H5T_STD_REF_BOGUS"); ok {
		t.Error("RefKindOf should reject unknown names")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 10 {
		t.Fatalf("Names() returned %d entries, want 10", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}
