package qmodels

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"qmodels/mat"
)

func TestHeisenbergChainTwoSpins(t *testing.T) {
	t.Parallel()
	m := HeisenbergChain{NSpins: 2, Jx: 1, Jy: 1, Jz: 1}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	z := mat.M([][]complex64{
		{1, 0, 0, 0},
		{0, -1, 2, 0},
		{0, 2, -1, 0},
		{0, 0, 0, 1},
	})
	if !op.Mat().Equal(z) {
		t.Fatalf("%s, expected %s", op.Mat(), z)
	}

	// The singlet lies at -3, the triplet at 1.
	vals, err := op.Eigenvalues()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	expected := []float64{-3, 1, 1, 1}
	for i, v := range vals {
		if math.Abs(v-expected[i]) > 1e-5 {
			t.Fatalf("%d %f, expected %f", i, v, expected[i])
		}
	}
}

func TestHeisenbergChainThreeSpins(t *testing.T) {
	t.Parallel()
	m := HeisenbergChain{NSpins: 3, Jx: 1, Jy: 1, Jz: 1}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !(op.Rows() == 8 && op.Cols() == 8) {
		t.Fatalf("%d %d", op.Rows(), op.Cols())
	}
	if !op.IsHermitian(HermitianTol) {
		t.Fatalf("defect %g", op.HermiticityDefect())
	}

	// Pauli strings are traceless, so the spectrum sums to zero.
	vals, err := op.Eigenvalues()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	if math.Abs(sum) > 1e-4 {
		t.Fatalf("%f", sum)
	}
	lo, hi := op.Mat().Gerschgorin()
	for _, v := range vals {
		if v < lo-1e-6 || v > hi+1e-6 {
			t.Fatalf("%f outside [%f, %f]", v, lo, hi)
		}
	}
}

func TestHeisenbergChainInsufficient(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1} {
		if _, err := (HeisenbergChain{NSpins: n, Jx: 1, Jy: 1, Jz: 1}).Build(); !errors.Is(err, ErrInsufficientSubsystems) {
			t.Fatalf("%d: %+v, expected %v", n, err, ErrInsufficientSubsystems)
		}
	}
}

func TestBoseHubbardTwoSites(t *testing.T) {
	t.Parallel()
	// With two levels per site the on-site interaction vanishes and only
	// hopping remains.
	m := BoseHubbard{NSites: 2, NLevels: 2, T: 1, U: 2}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	z := mat.M([][]complex64{
		{0, 0, 0, 0},
		{0, 0, -1, 0},
		{0, -1, 0, 0},
		{0, 0, 0, 0},
	})
	if !op.Mat().Equal(z) {
		t.Fatalf("%s, expected %s", op.Mat(), z)
	}
}

func TestBoseHubbardThreeSites(t *testing.T) {
	t.Parallel()
	m := BoseHubbard{NSites: 3, NLevels: 2, T: 1, U: 2}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !(op.Rows() == 8 && op.Cols() == 8) {
		t.Fatalf("%d %d", op.Rows(), op.Cols())
	}
	if !op.IsHermitian(HermitianTol) {
		t.Fatalf("defect %g", op.HermiticityDefect())
	}
}

func TestBoseHubbardNoHopping(t *testing.T) {
	t.Parallel()
	// Without hopping there is no coupling between sites and the
	// Hamiltonian is diagonal in the site occupation basis.
	m := BoseHubbard{NSites: 3, NLevels: 3, T: 0, U: 2}
	op, err := m.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	dense := op.Mat().Dense()
	for i, row := range dense {
		for j, v := range row {
			if i != j && v != 0 {
				t.Fatalf("%d %d %v", i, j, v)
			}
		}
	}
	// All sites doubly occupied: energy is 3 * 0.5*U*n*(n-1) = 6.
	full := 2*9 + 2*3 + 2
	if v := dense[full][full]; cmplx.Abs(complex128(v)-6) > 1e-5 {
		t.Fatalf("%v", v)
	}
}

func TestBoseHubbardInsufficient(t *testing.T) {
	t.Parallel()
	if _, err := (BoseHubbard{NSites: 1, NLevels: 2, T: 1, U: 2}).Build(); !errors.Is(err, ErrInsufficientSubsystems) {
		t.Fatalf("%+v, expected %v", err, ErrInsufficientSubsystems)
	}
	if _, err := (BoseHubbard{NSites: 2, NLevels: 1, T: 1, U: 2}).Build(); err == nil {
		t.Fatalf("expected error")
	}
}
