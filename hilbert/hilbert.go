// Package hilbert describes composite Hilbert spaces and the embedding of
// local operators into them.
//
// A composite space is an ordered list of subsystem dimensions. The factor
// order of every tensor product follows that list, with subsystem 0 as the
// leftmost factor.
package hilbert

import (
	"slices"

	"github.com/pkg/errors"

	"qmodels/mat"
)

var (
	ErrInvalidDimension  = errors.New("invalid subsystem dimension")
	ErrIndexOutOfRange   = errors.New("subsystem index out of range")
	ErrDimensionMismatch = errors.New("local operator dimension mismatch")
	ErrDuplicateIndex    = errors.New("duplicate subsystem index")
	ErrSpaceMismatch     = errors.New("operator space mismatch")
)

// Space is an immutable composite Hilbert space.
type Space struct {
	dims []int
}

// New creates a Space from subsystem dimensions.
// Every dimension must be at least 2.
func New(dims ...int) (*Space, error) {
	if len(dims) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "no subsystems")
	}
	for i, d := range dims {
		if d < 2 {
			return nil, errors.Wrapf(ErrInvalidDimension, "subsystem %d has dimension %d", i, d)
		}
	}
	return &Space{dims: slices.Clone(dims)}, nil
}

// Len returns the number of subsystems.
func (s *Space) Len() int { return len(s.dims) }

// Dims returns a copy of the subsystem dimensions.
func (s *Space) Dims() []int { return slices.Clone(s.dims) }

// TotalDim returns the dimension of the composite space,
// the product of all subsystem dimensions.
func (s *Space) TotalDim() int {
	d := 1
	for _, di := range s.dims {
		d *= di
	}
	return d
}

// Dim returns the dimension of subsystem i.
func (s *Space) Dim(i int) (int, error) {
	if i < 0 || i >= len(s.dims) {
		return -1, errors.Wrapf(ErrIndexOutOfRange, "index %d, space has %d subsystems", i, len(s.dims))
	}
	return s.dims[i], nil
}

func (s *Space) Equal(t *Space) bool {
	return slices.Equal(s.dims, t.dims)
}

// Operator is a linear operator over a composite Hilbert space.
// Operators are values: methods return new Operators and never modify the
// receiver or its matrix.
type Operator struct {
	space *Space
	m     *mat.COO
}

// NewOperator pairs a square matrix with the space it is defined over.
func NewOperator(space *Space, m *mat.COO) (*Operator, error) {
	d := space.TotalDim()
	if m.Rows() != d || m.Cols() != d {
		return nil, errors.Wrapf(ErrDimensionMismatch, "matrix is %dx%d, space has dimension %d", m.Rows(), m.Cols(), d)
	}
	return &Operator{space: space, m: m}, nil
}

// Space returns the space the operator is defined over.
func (o *Operator) Space() *Space { return o.space }

// Mat returns the operator's matrix. Callers must not modify it.
func (o *Operator) Mat() *mat.COO { return o.m }

func (o *Operator) Rows() int { return o.m.Rows() }
func (o *Operator) Cols() int { return o.m.Cols() }

// Dagger returns the conjugate transpose of o.
func (o *Operator) Dagger() *Operator {
	m := o.m.Clone()
	m.Dagger()
	return &Operator{space: o.space, m: m}
}

// Scale returns c*o.
func (o *Operator) Scale(c complex64) *Operator {
	d := o.space.TotalDim()
	m := mat.COOZeros(d, d)
	m.Add(c, o.m)
	return &Operator{space: o.space, m: m}
}

// Add returns o + p.
func (o *Operator) Add(p *Operator) (*Operator, error) {
	if !o.space.Equal(p.space) {
		return nil, errors.Wrapf(ErrSpaceMismatch, "%v %v", o.space.dims, p.space.dims)
	}
	m := o.m.Clone()
	m.Add(1, p.m)
	return &Operator{space: o.space, m: m}, nil
}

// MatMul returns the operator product o*p.
func (o *Operator) MatMul(p *Operator) (*Operator, error) {
	if !o.space.Equal(p.space) {
		return nil, errors.Wrapf(ErrSpaceMismatch, "%v %v", o.space.dims, p.space.dims)
	}
	m := o.m.Clone()
	m.MatMul(p.m)
	return &Operator{space: o.space, m: m}, nil
}

// HermiticityDefect returns max |o - o.Dagger()| over all matrix entries.
func (o *Operator) HermiticityDefect() float64 {
	return o.m.HermiticityDefect()
}

// IsHermitian reports whether o is Hermitian within tol.
func (o *Operator) IsHermitian(tol float64) bool {
	return o.m.HermiticityDefect() <= tol
}

// Eigenvalues returns the eigenvalues of a Hermitian operator in ascending order.
func (o *Operator) Eigenvalues() ([]float64, error) {
	vals, err := o.m.Eigenvalues()
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return vals, nil
}
