package qmodels

import (
	"github.com/pkg/errors"

	"qmodels/hilbert"
	"qmodels/mat"
)

// HeisenbergChain is a 1D chain of spin-1/2 sites with nearest-neighbor
// exchange couplings.
//
//	H = Σ_n Jx*σx_n σx_{n+1} + Jy*σy_n σy_{n+1} + Jz*σz_n σz_{n+1}
type HeisenbergChain struct {
	NSpins int
	Jx     float64
	Jy     float64
	Jz     float64
}

func (m HeisenbergChain) Name() string { return "Heisenberg-Chain" }

func (m HeisenbergChain) Params() map[string]float64 {
	return map[string]float64{"N_spins": float64(m.NSpins), "Jx": m.Jx, "Jy": m.Jy, "Jz": m.Jz}
}

func (m HeisenbergChain) Build() (*hilbert.Operator, error) {
	if m.NSpins < 2 {
		return nil, errors.Wrapf(ErrInsufficientSubsystems, "chain of %d spins has no bonds", m.NSpins)
	}
	dims := make([]int, m.NSpins)
	for i := range dims {
		dims[i] = 2
	}
	space, err := hilbert.New(dims...)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	paulis := []struct {
		coeff float64
		local [][]complex64
	}{
		{coeff: m.Jx, local: mat.PauliX},
		{coeff: m.Jy, local: mat.PauliY},
		{coeff: m.Jz, local: mat.PauliZ},
	}
	terms := make([]Term, 0, 3*(m.NSpins-1))
	for n := 0; n < m.NSpins-1; n++ {
		for _, p := range paulis {
			bond, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
				{At: n, Op: mat.M(p.local)},
				{At: n + 1, Op: mat.M(p.local)},
			})
			if err != nil {
				return nil, errors.Wrap(err, "")
			}
			terms = append(terms, Term{Coeff: c(p.coeff), Op: bond})
		}
	}

	return build(space, terms)
}

// BoseHubbard is a 1D lattice of bosonic sites with nearest-neighbor
// hopping and on-site interaction. Each site is truncated to NLevels
// occupation levels.
//
//	H = Σ_n -t*(a†_n a_{n+1} + a†_{n+1} a_n) + Σ_n 0.5*U*a†_n a†_n a_n a_n
type BoseHubbard struct {
	NSites  int
	NLevels int
	T       float64 // hopping amplitude
	U       float64 // on-site interaction
}

func (m BoseHubbard) Name() string { return "Bose-Hubbard-Lattice" }

func (m BoseHubbard) Params() map[string]float64 {
	return map[string]float64{
		"N_sites": float64(m.NSites), "N_levels": float64(m.NLevels),
		"t": m.T, "U": m.U,
	}
}

func (m BoseHubbard) Build() (*hilbert.Operator, error) {
	if m.NSites < 2 {
		return nil, errors.Wrapf(ErrInsufficientSubsystems, "lattice of %d sites has no bonds", m.NSites)
	}
	dims := make([]int, m.NSites)
	for i := range dims {
		dims[i] = m.NLevels
	}
	space, err := hilbert.New(dims...)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	terms := make([]Term, 0, 3*m.NSites-2)
	for n := 0; n < m.NSites-1; n++ {
		right, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
			{At: n, Op: mat.M(mat.Create(m.NLevels))},
			{At: n + 1, Op: mat.M(mat.Destroy(m.NLevels))},
		})
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		left, err := hilbert.EmbedJoint(space, []hilbert.LocalOp{
			{At: n, Op: mat.M(mat.Destroy(m.NLevels))},
			{At: n + 1, Op: mat.M(mat.Create(m.NLevels))},
		})
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		terms = append(terms, Term{Coeff: c(-m.T), Op: right}, Term{Coeff: c(-m.T), Op: left})
	}

	// On-site interaction a†a†aa.
	onsite := mat.M(mat.Create(m.NLevels))
	onsite.MatMul(mat.M(mat.Create(m.NLevels)))
	onsite.MatMul(mat.M(mat.Destroy(m.NLevels)))
	onsite.MatMul(mat.M(mat.Destroy(m.NLevels)))
	for n := 0; n < m.NSites; n++ {
		site, err := hilbert.EmbedSingle(space, onsite, n)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		terms = append(terms, Term{Coeff: c(0.5 * m.U), Op: site})
	}

	return build(space, terms)
}
