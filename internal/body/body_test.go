package body

import (
	"errors"
	"testing"

	"github.com/san-kum/gravsim/internal/geom"
)

func TestNewRejectsInvalidMass(t *testing.T) {
	tests := []struct {
		name string
		mass string
	}{
		{"zero", "0"},
		{"negative", "-5.965e24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.name, geom.MustParse(tt.mass), geom.Origin(), geom.ZeroVector())
			if !errors.Is(err, ErrInvalidMass) {
				t.Errorf("New with mass %s: error = %v, want ErrInvalidMass", tt.mass, err)
			}
		})
	}
}

func TestUIDStableAndUnique(t *testing.T) {
	mass := geom.MustParse("1")
	a := MustNew("a", mass, geom.Origin(), geom.ZeroVector())
	b := MustNew("b", mass, geom.Origin(), geom.ZeroVector())

	if a.UID() == b.UID() {
		t.Error("distinct bodies share a uid")
	}
	if a.UID() != a.UID() {
		t.Error("uid is not stable")
	}
}

// Coincident bodies must still be distinct by identity; the force pass
// relies on uid comparison, not positions.
func TestCoincidentBodiesAreDistinct(t *testing.T) {
	mass := geom.MustParse("10")
	p, _ := geom.ParsePoint("1e8", "2e8", "0")
	a := MustNew("a", mass, p, geom.ZeroVector())
	b := MustNew("b", mass, p, geom.ZeroVector())

	if !a.Attributes().Center.Equal(b.Attributes().Center) {
		t.Fatal("test setup: bodies should coincide")
	}
	if a.UID() == b.UID() {
		t.Error("coincident bodies share a uid")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	b := MustNew("b", geom.MustParse("2"), geom.Origin(), geom.ZeroVector())

	snap := b.Snapshot()
	v, _ := geom.ParseVector("9", "9", "9")
	snap.Velocity = v
	snap.Mass.SetInt64(999)

	if !b.Attributes().Velocity.IsZero() {
		t.Error("mutating a snapshot changed the live velocity")
	}
	if b.Attributes().Mass.Cmp(geom.MustParse("2")) != 0 {
		t.Error("mutating a snapshot changed the live mass")
	}
}

func TestConstructorClonesInputs(t *testing.T) {
	mass := geom.MustParse("3")
	center := geom.Origin()
	b := MustNew("b", mass, center, geom.ZeroVector())

	mass.SetInt64(-1)
	center.X.SetInt64(42)

	if b.Attributes().Mass.Cmp(geom.MustParse("3")) != 0 {
		t.Error("body aliases the caller's mass")
	}
	if !b.Attributes().Center.Equal(geom.Origin()) {
		t.Error("body aliases the caller's center")
	}
}

func TestAttributesValidate(t *testing.T) {
	good := MustNew("g", geom.MustParse("1"), geom.Origin(), geom.ZeroVector()).Snapshot()
	if err := good.Validate(); err != nil {
		t.Errorf("valid attributes rejected: %v", err)
	}

	bad := good.Clone()
	bad.Mass.SetInt64(0)
	if err := bad.Validate(); !errors.Is(err, ErrInvalidMass) {
		t.Errorf("zero mass: error = %v, want ErrInvalidMass", err)
	}
}

func TestCollectionPreservesOrder(t *testing.T) {
	mass := geom.MustParse("1")
	a := MustNew("a", mass, geom.Origin(), geom.ZeroVector())
	b := MustNew("b", mass, geom.Origin(), geom.ZeroVector())
	c := MustNew("c", mass, geom.Origin(), geom.ZeroVector())

	objs := NewCollection(a, b)
	objs.Append(c)

	if objs.Len() != 3 {
		t.Fatalf("Len = %d, want 3", objs.Len())
	}
	for i, want := range []*Body{a, b, c} {
		if objs.At(i) != Object(want) {
			t.Errorf("At(%d) is not the body appended at %d", i, i)
		}
	}
}

func TestCollectionBorrows(t *testing.T) {
	b := MustNew("b", geom.MustParse("1"), geom.Origin(), geom.ZeroVector())
	objs := NewCollection(b)

	v, _ := geom.ParseVector("7", "0", "0")
	objs.At(0).Attributes().Velocity = v

	if !b.Attributes().Velocity.Equal(v) {
		t.Error("collection does not borrow the live body")
	}
}
