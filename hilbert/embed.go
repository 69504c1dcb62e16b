package hilbert

import (
	"github.com/pkg/errors"

	"qmodels/mat"
)

// LocalOp names a local operator and the subsystem it acts on.
type LocalOp struct {
	At int
	Op *mat.COO
}

// EmbedSingle lifts a local operator acting on subsystem at into the full
// composite space, acting as the identity on every other subsystem.
func EmbedSingle(s *Space, local *mat.COO, at int) (*Operator, error) {
	op, err := EmbedJoint(s, []LocalOp{{At: at, Op: local}})
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return op, nil
}

// EmbedJoint lifts several local operators, each acting on its own
// subsystem, into the full composite space. The tensor product runs over
// all subsystems in index order, taking the named local operator at the
// listed positions and the identity everywhere else.
func EmbedJoint(s *Space, locals []LocalOp) (*Operator, error) {
	at := make(map[int]*mat.COO, len(locals))
	for _, l := range locals {
		d, err := s.Dim(l.At)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		if _, ok := at[l.At]; ok {
			return nil, errors.Wrapf(ErrDuplicateIndex, "subsystem %d listed twice", l.At)
		}
		if l.Op.Rows() != d || l.Op.Cols() != d {
			return nil, errors.Wrapf(ErrDimensionMismatch, "subsystem %d has dimension %d, local operator is %dx%d", l.At, d, l.Op.Rows(), l.Op.Cols())
		}
		at[l.At] = l.Op
	}

	system := mat.M([][]complex64{{0}})
	system.Scalar(1)
	for i, d := range s.dims {
		switch op, ok := at[i]; {
		case ok:
			system.Kron(op)
		default:
			system.Kron(mat.COOIdentity(d))
		}
	}

	return &Operator{space: s, m: system}, nil
}
