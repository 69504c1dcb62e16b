// Package spectrum extracts and renders the energy spectrum of a Hamiltonian.
package spectrum

import (
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"

	"qmodels/hilbert"
)

// Energies returns the eigenvalues of op in ascending order.
func Energies(op *hilbert.Operator) ([]float64, error) {
	vals, err := op.Eigenvalues()
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return vals, nil
}

// Bounds returns Gerschgorin lower and upper bounds on the spectrum,
// available without diagonalization.
func Bounds(op *hilbert.Operator) (float64, float64) {
	return op.Mat().Gerschgorin()
}

// Chart renders energy levels against their index as a terminal plot.
func Chart(name string, energies []float64) string {
	return asciigraph.Plot(energies,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("Energy spectrum: "+name))
}
