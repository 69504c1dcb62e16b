// Package qmodels builds the Hamiltonians of a small catalog of quantum
// many-body models: light-matter couplings, spin chains and bosonic
// lattices. Each model is a pure recipe turning physical parameters into a
// composite Hilbert space and a list of coupling terms, which are summed
// into a single operator and checked for Hermiticity.
package qmodels

import (
	"encoding/json"

	"github.com/pkg/errors"

	"qmodels/hilbert"
	"qmodels/mat"
)

var (
	ErrEmptySpecification     = errors.New("no coupling terms")
	ErrNonHermitian           = errors.New("non-Hermitian Hamiltonian")
	ErrInsufficientSubsystems = errors.New("insufficient subsystems")
)

// HermitianTol is the tolerance of the Hermiticity check every model's
// Hamiltonian must pass.
const HermitianTol = 1e-10

// Term is one coupling term of a Hamiltonian, coefficient times operator.
type Term struct {
	Coeff complex64
	Op    *hilbert.Operator
}

// Assemble sums coupling terms into a single operator over space.
// Terms are summed in order, so identical inputs give bit-identical results.
func Assemble(space *hilbert.Space, terms []Term) (*hilbert.Operator, error) {
	if len(terms) == 0 {
		return nil, errors.Wrap(ErrEmptySpecification, "")
	}
	for i, t := range terms {
		if !t.Op.Space().Equal(space) {
			return nil, errors.Wrapf(hilbert.ErrSpaceMismatch, "term %d over %v, expected %v", i, t.Op.Space().Dims(), space.Dims())
		}
	}

	d := space.TotalDim()
	h := mat.COOZeros(d, d)
	for _, t := range terms {
		h.Add(t.Coeff, t.Op.Mat())
	}

	op, err := hilbert.NewOperator(space, h)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return op, nil
}

// Validate checks that op is numerically Hermitian within tol.
// Every cataloged model must produce a Hermitian Hamiltonian, so a failure
// here is fatal to the construction.
func Validate(op *hilbert.Operator, tol float64) error {
	if tol < 0 {
		return errors.Errorf("negative tolerance %g", tol)
	}
	if defect := op.HermiticityDefect(); defect > tol {
		return errors.Wrapf(ErrNonHermitian, "defect %g exceeds tolerance %g", defect, tol)
	}
	return nil
}

// Model is a named, parameterized Hamiltonian recipe.
// Build is pure: it shares no state between calls and two calls with the
// same parameters return identical operators.
type Model interface {
	Name() string
	Params() map[string]float64
	Build() (*hilbert.Operator, error)
}

// Record is the shareable description of a built Hamiltonian.
type Record struct {
	ModelName   string             `json:"model_name"`
	Parameters  map[string]float64 `json:"parameters"`
	MatrixShape [2]int             `json:"matrix_shape"`
	IsHermitian bool               `json:"is_hermitian"`
}

// NewRecord describes op as built by m.
func NewRecord(m Model, op *hilbert.Operator) Record {
	return Record{
		ModelName:   m.Name(),
		Parameters:  m.Params(),
		MatrixShape: [2]int{op.Rows(), op.Cols()},
		IsHermitian: op.IsHermitian(HermitianTol),
	}
}

// JSON renders the record in indented JSON.
func (r Record) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return b, nil
}

// Portfolio returns every cataloged model with its reference parameters.
func Portfolio() []Model {
	return []Model{
		JaynesCummings{N: 5, Wc: 1, Wa: 1, G: 0.1},
		Rabi{N: 5, Wc: 1, Wa: 1, G: 0.1},
		TavisCummings{NAtoms: 2, NCavity: 3, Wc: 1, Wa: 1, G: 0.1},
		Dicke{NAtoms: 4, NCavity: 5, Wc: 1, Wa: 1, G: 0.5},
		HeisenbergChain{NSpins: 3, Jx: 1, Jy: 1, Jz: 1},
		BoseHubbard{NSites: 3, NLevels: 2, T: 1, U: 2},
	}
}

// build assembles terms over space and validates the result.
func build(space *hilbert.Space, terms []Term) (*hilbert.Operator, error) {
	h, err := Assemble(space, terms)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	if err := Validate(h, HermitianTol); err != nil {
		return nil, errors.Wrap(err, "")
	}
	return h, nil
}

func c(v float64) complex64 {
	return complex(float32(v), 0)
}
