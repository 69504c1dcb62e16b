package qmodels

import (
	"math"

	"github.com/pkg/errors"

	"qmodels/hilbert"
	"qmodels/mat"
)

// JaynesCummings is a single cavity mode coupled to one two-level atom
// under the rotating wave approximation.
//
//	H = wc*n_field + wa*n_atom + g*(a†σ⁻ + aσ⁺)
type JaynesCummings struct {
	N  int     // cavity levels
	Wc float64 // cavity frequency
	Wa float64 // atom frequency
	G  float64 // coupling strength
}

func (m JaynesCummings) Name() string { return "Jaynes-Cummings" }

func (m JaynesCummings) Params() map[string]float64 {
	return map[string]float64{"N": float64(m.N), "wc": m.Wc, "wa": m.Wa, "g": m.G}
}

func (m JaynesCummings) Build() (*hilbert.Operator, error) {
	space, err := hilbert.New(m.N, 2)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	nField, err := hilbert.EmbedSingle(space, mat.M(mat.Number(m.N)), 0)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	nAtom, err := hilbert.EmbedSingle(space, mat.M(mat.Number(2)), 1)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	// a†σ⁻ and its conjugate aσ⁺.
	emit, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
		{At: 0, Op: mat.M(mat.Create(m.N))},
		{At: 1, Op: mat.M(mat.Destroy(2))},
	})
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	absorb, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
		{At: 0, Op: mat.M(mat.Destroy(m.N))},
		{At: 1, Op: mat.M(mat.Create(2))},
	})
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	terms := []Term{
		{Coeff: c(m.Wc), Op: nField},
		{Coeff: c(m.Wa), Op: nAtom},
		{Coeff: c(m.G), Op: emit},
		{Coeff: c(m.G), Op: absorb},
	}
	return build(space, terms)
}

// Rabi is the full light-matter coupling of one cavity mode and one
// two-level atom, without the rotating wave approximation.
//
//	H = wc*n_field + 0.5*wa*σz + g*(a† + a)σx
type Rabi struct {
	N  int
	Wc float64
	Wa float64
	G  float64
}

func (m Rabi) Name() string { return "Quantum-Rabi" }

func (m Rabi) Params() map[string]float64 {
	return map[string]float64{"N": float64(m.N), "wc": m.Wc, "wa": m.Wa, "g": m.G}
}

func (m Rabi) Build() (*hilbert.Operator, error) {
	space, err := hilbert.New(m.N, 2)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	nField, err := hilbert.EmbedSingle(space, mat.M(mat.Number(m.N)), 0)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	sz, err := hilbert.EmbedSingle(space, mat.M(mat.PauliZ), 1)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	quad := mat.M(mat.Create(m.N))
	quad.Add(1, mat.M(mat.Destroy(m.N)))
	coupling, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
		{At: 0, Op: quad},
		{At: 1, Op: mat.M(mat.PauliX)},
	})
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	terms := []Term{
		{Coeff: c(m.Wc), Op: nField},
		{Coeff: c(0.5 * m.Wa), Op: sz},
		{Coeff: c(m.G), Op: coupling},
	}
	return build(space, terms)
}

// TavisCummings couples several two-level atoms to a single shared cavity
// mode under the rotating wave approximation. The field mode is subsystem
// 0 and atom i is subsystem 1+i.
type TavisCummings struct {
	NAtoms  int
	NCavity int
	Wc      float64
	Wa      float64
	G       float64
}

func (m TavisCummings) Name() string { return "Tavis-Cummings" }

func (m TavisCummings) Params() map[string]float64 {
	return map[string]float64{
		"N_atoms": float64(m.NAtoms), "N_cavity": float64(m.NCavity),
		"wc": m.Wc, "wa": m.Wa, "g": m.G,
	}
}

func (m TavisCummings) Build() (*hilbert.Operator, error) {
	if m.NAtoms < 1 {
		return nil, errors.Wrapf(ErrInsufficientSubsystems, "%d atoms", m.NAtoms)
	}
	dims := make([]int, 0, 1+m.NAtoms)
	dims = append(dims, m.NCavity)
	for i := 0; i < m.NAtoms; i++ {
		dims = append(dims, 2)
	}
	space, err := hilbert.New(dims...)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	nField, err := hilbert.EmbedSingle(space, mat.M(mat.Number(m.NCavity)), 0)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	terms := []Term{{Coeff: c(m.Wc), Op: nField}}

	for i := 0; i < m.NAtoms; i++ {
		nAtom, err := hilbert.EmbedSingle(space, mat.M(mat.Number(2)), 1+i)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		terms = append(terms, Term{Coeff: c(m.Wa), Op: nAtom})
	}
	for i := 0; i < m.NAtoms; i++ {
		emit, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
			{At: 0, Op: mat.M(mat.Create(m.NCavity))},
			{At: 1 + i, Op: mat.M(mat.Destroy(2))},
		})
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		absorb, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
			{At: 0, Op: mat.M(mat.Destroy(m.NCavity))},
			{At: 1 + i, Op: mat.M(mat.Create(2))},
		})
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		terms = append(terms, Term{Coeff: c(m.G), Op: emit}, Term{Coeff: c(m.G), Op: absorb})
	}

	return build(space, terms)
}

// Dicke couples NAtoms atoms collectively to a single cavity mode. The
// atoms are indistinguishable and enter as one large spin of length
// j = NAtoms/2, a (2j+1)-dimensional subsystem.
//
//	H = wc*n_field + wa*Jz + g/sqrt(NAtoms)*(a† + a)Jx
type Dicke struct {
	NAtoms  int
	NCavity int
	Wc      float64
	Wa      float64
	G       float64
}

func (m Dicke) Name() string { return "Dicke-Collective" }

func (m Dicke) Params() map[string]float64 {
	return map[string]float64{
		"N_atoms": float64(m.NAtoms), "N_cavity": float64(m.NCavity),
		"wc": m.Wc, "wa": m.Wa, "g": m.G,
	}
}

func (m Dicke) Build() (*hilbert.Operator, error) {
	if m.NAtoms < 1 {
		return nil, errors.Wrapf(ErrInsufficientSubsystems, "%d atoms", m.NAtoms)
	}
	j := float64(m.NAtoms) / 2
	space, err := hilbert.New(m.NCavity, m.NAtoms+1)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	nField, err := hilbert.EmbedSingle(space, mat.M(mat.Number(m.NCavity)), 0)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	jz, err := hilbert.EmbedSingle(space, mat.M(mat.SpinJ(j, 'z')), 1)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	quad := mat.M(mat.Create(m.NCavity))
	quad.Add(1, mat.M(mat.Destroy(m.NCavity)))
	coupling, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
		{At: 0, Op: quad},
		{At: 1, Op: mat.M(mat.SpinJ(j, 'x'))},
	})
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	terms := []Term{
		{Coeff: c(m.Wc), Op: nField},
		{Coeff: c(m.Wa), Op: jz},
		{Coeff: c(m.G / math.Sqrt(float64(m.NAtoms))), Op: coupling},
	}
	return build(space, terms)
}
