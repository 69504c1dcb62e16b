package qmodels

import (
	"errors"
	"testing"

	"qmodels/mat"
)

func TestJaynesCummings(t *testing.T) {
	t.Parallel()
	// Two cavity levels; basis order is (n, atom) with the field leftmost.
	m := JaynesCummings{N: 2, Wc: 1, Wa: 1, G: 0.1}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	z := mat.M([][]complex64{
		{0, 0, 0, 0},
		{0, 1, 0.1, 0},
		{0, 0.1, 1, 0},
		{0, 0, 0, 2},
	})
	if !op.Mat().Equal(z) {
		t.Fatalf("%s, expected %s", op.Mat(), z)
	}
}

func TestJaynesCummingsInvalid(t *testing.T) {
	t.Parallel()
	if _, err := (JaynesCummings{N: 1, Wc: 1, Wa: 1, G: 0.1}).Build(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRabi(t *testing.T) {
	t.Parallel()
	m := Rabi{N: 2, Wc: 1, Wa: 1, G: 0.1}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	z := mat.M([][]complex64{
		{0.5, 0, 0, 0.1},
		{0, -0.5, 0.1, 0},
		{0, 0.1, 1.5, 0},
		{0.1, 0, 0, 0.5},
	})
	if !op.Mat().Equal(z) {
		t.Fatalf("%s, expected %s", op.Mat(), z)
	}
}

// TestTavisCummingsSingleAtom checks the collective-to-single-atom
// reduction: one atom in the shared cavity is exactly Jaynes-Cummings.
func TestTavisCummingsSingleAtom(t *testing.T) {
	t.Parallel()
	tc := TavisCummings{NAtoms: 1, NCavity: 5, Wc: 1, Wa: 1, G: 0.1}
	jc := JaynesCummings{N: 5, Wc: 1, Wa: 1, G: 0.1}

	tcOp, err := tc.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	jcOp, err := jc.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !tcOp.Mat().Equal(jcOp.Mat()) {
		t.Fatalf("%s, expected %s", tcOp.Mat(), jcOp.Mat())
	}
}

func TestTavisCummings(t *testing.T) {
	t.Parallel()
	m := TavisCummings{NAtoms: 2, NCavity: 3, Wc: 1, Wa: 1, G: 0.1}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !(op.Rows() == 12 && op.Cols() == 12) {
		t.Fatalf("%d %d", op.Rows(), op.Cols())
	}
	if !op.IsHermitian(HermitianTol) {
		t.Fatalf("defect %g", op.HermiticityDefect())
	}

	if _, err := (TavisCummings{NAtoms: 0, NCavity: 3, Wc: 1, Wa: 1, G: 0.1}).Build(); !errors.Is(err, ErrInsufficientSubsystems) {
		t.Fatalf("%+v, expected %v", err, ErrInsufficientSubsystems)
	}
}

func TestDicke(t *testing.T) {
	t.Parallel()
	// One atom is a spin-1/2: Jz = sigma_z/2, Jx = sigma_x/2.
	m := Dicke{NAtoms: 1, NCavity: 2, Wc: 1, Wa: 1, G: 0.5}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	z := mat.M([][]complex64{
		{0.5, 0, 0, 0.25},
		{0, -0.5, 0.25, 0},
		{0, 0.25, 1.5, 0},
		{0.25, 0, 0, 0.5},
	})
	if !op.Mat().Equal(z) {
		t.Fatalf("%s, expected %s", op.Mat(), z)
	}
}

func TestDickeCollective(t *testing.T) {
	t.Parallel()
	// Four atoms form a spin of length 2 on a 5-dimensional subsystem.
	m := Dicke{NAtoms: 4, NCavity: 5, Wc: 1, Wa: 1, G: 0.5}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !(op.Rows() == 25 && op.Cols() == 25) {
		t.Fatalf("%d %d", op.Rows(), op.Cols())
	}
	if !op.IsHermitian(HermitianTol) {
		t.Fatalf("defect %g", op.HermiticityDefect())
	}

	if _, err := (Dicke{NAtoms: 0, NCavity: 5, Wc: 1, Wa: 1, G: 0.5}).Build(); !errors.Is(err, ErrInsufficientSubsystems) {
		t.Fatalf("%+v, expected %v", err, ErrInsufficientSubsystems)
	}
}
