package hilbert

import (
	"errors"
	"fmt"
	"testing"

	"qmodels/mat"
)

func TestEmbedSingle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dims  []int
		local *mat.COO
		at    int
		z     *mat.COO
	}{
		{
			// Subsystem 0 is the leftmost tensor factor.
			dims:  []int{2, 2},
			local: mat.M(mat.PauliZ),
			at:    0,
			z: mat.M([][]complex64{
				{1, 0, 0, 0},
				{0, 1, 0, 0},
				{0, 0, -1, 0},
				{0, 0, 0, -1},
			}),
		},
		{
			dims:  []int{2, 2},
			local: mat.M(mat.PauliZ),
			at:    1,
			z: mat.M([][]complex64{
				{1, 0, 0, 0},
				{0, -1, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, -1},
			}),
		},
		{
			dims:  []int{2, 3},
			local: mat.M(mat.Number(3)),
			at:    1,
			z: mat.M([][]complex64{
				{0, 0, 0, 0, 0, 0},
				{0, 1, 0, 0, 0, 0},
				{0, 0, 2, 0, 0, 0},
				{0, 0, 0, 0, 0, 0},
				{0, 0, 0, 0, 1, 0},
				{0, 0, 0, 0, 0, 2},
			}),
		},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v %d", test.dims, test.at), func(t *testing.T) {
			t.Parallel()
			s, err := New(test.dims...)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			op, err := EmbedSingle(s, test.local, test.at)
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if !op.Mat().Equal(test.z) {
				t.Fatalf("%s, expected %s", op.Mat(), test.z)
			}
		})
	}
}

func TestEmbedErrors(t *testing.T) {
	t.Parallel()
	s, err := New(5, 2)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	tests := []struct {
		locals []LocalOp
		err    error
	}{
		{
			locals: []LocalOp{{At: 0, Op: mat.M(mat.PauliX)}},
			err:    ErrDimensionMismatch,
		},
		{
			locals: []LocalOp{{At: 2, Op: mat.M(mat.PauliX)}},
			err:    ErrIndexOutOfRange,
		},
		{
			locals: []LocalOp{{At: -1, Op: mat.M(mat.PauliX)}},
			err:    ErrIndexOutOfRange,
		},
		{
			locals: []LocalOp{
				{At: 1, Op: mat.M(mat.PauliX)},
				{At: 1, Op: mat.M(mat.PauliZ)},
			},
			err: ErrDuplicateIndex,
		},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%v", test.err), func(t *testing.T) {
			t.Parallel()
			if _, err := EmbedJoint(s, test.locals); !errors.Is(err, test.err) {
				t.Fatalf("%+v, expected %v", err, test.err)
			}
		})
	}
}

// TestEmbedComposition checks that multiplying operators embedded at
// disjoint subsystems equals the joint embedding of those subsystems.
func TestEmbedComposition(t *testing.T) {
	t.Parallel()
	s, err := New(2, 2, 2)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	x0, err := EmbedSingle(s, mat.M(mat.PauliX), 0)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	z2, err := EmbedSingle(s, mat.M(mat.PauliZ), 2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	joint, err := EmbedJoint(s, []LocalOp{
		{At: 0, Op: mat.M(mat.PauliX)},
		{At: 2, Op: mat.M(mat.PauliZ)},
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	prod, err := x0.MatMul(z2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !prod.Mat().Equal(joint.Mat()) {
		t.Fatalf("%s, expected %s", prod.Mat(), joint.Mat())
	}

	// Embedded operators on disjoint subsystems commute.
	dorp, err := z2.MatMul(x0)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !dorp.Mat().Equal(joint.Mat()) {
		t.Fatalf("%s, expected %s", dorp.Mat(), joint.Mat())
	}
}
