// Package mat implements sparse complex matrices and the small set of
// linear-algebra operations needed to build composite quantum operators.
package mat

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type vRowCol struct {
	v   complex64
	row int
	col int
}

// COO is a sparse matrix in coordinate format.
// Entries are kept sorted in row-major order with no explicit zeros.
type COO struct {
	rows int
	cols int
	Data []vRowCol

	m map[[2]int]complex64
}

// M creates a COO matrix from a dense slice.
func M(dense [][]complex64) *COO {
	m := &COO{rows: len(dense), cols: len(dense[0]), Data: make([]vRowCol, 0), m: make(map[[2]int]complex64)}
	for i, row := range dense {
		for j, v := range row {
			if v == 0 {
				continue
			}
			m.Data = append(m.Data, vRowCol{v: v, row: i, col: j})
		}
	}
	return m
}

func COOZeros(rows, cols int) *COO {
	m := M([][]complex64{{0}})
	m.Zeros(rows, cols)
	return m
}

func COOIdentity(rows int) *COO {
	m := M([][]complex64{{0}})
	m.Zeros(rows, rows)
	for i := 0; i < rows; i++ {
		m.Data = append(m.Data, vRowCol{v: 1, row: i, col: i})
	}
	return m
}

func (m *COO) Rows() int { return m.rows }
func (m *COO) Cols() int { return m.cols }

func (m *COO) Zeros(rows, cols int) {
	m.rows, m.cols = rows, cols
	m.Data = m.Data[:0]
}

func (m *COO) Scalar(v complex64) {
	m.rows, m.cols = 1, 1
	m.Data = m.Data[:0]
	m.Data = append(m.Data, vRowCol{v: v, row: 0, col: 0})
}

func (m *COO) Clone() *COO {
	c := &COO{rows: m.rows, cols: m.cols, Data: slices.Clone(m.Data), m: make(map[[2]int]complex64)}
	return c
}

func (m *COO) At(i, j int) complex64 {
	for _, v := range m.Data {
		if v.row == i && v.col == j {
			return v.v
		}
		if v.row > i {
			break
		}
	}
	return 0
}

func (a *COO) Equal(b *COO) bool {
	if a.rows != b.rows {
		return false
	}
	if a.cols != b.cols {
		return false
	}
	if len(a.Data) != len(b.Data) {
		return false
	}
	for i, av := range a.Data {
		bv := b.Data[i]
		if av != bv {
			return false
		}
	}
	return true
}

func (m *COO) Slice(yBoundN, xBoundN [2]int) *COO {
	yBound, xBound := yBoundN, xBoundN
	for i := 0; i < 2; i++ {
		if yBound[i] < 0 {
			yBound[i] += m.rows
		}
		if xBound[i] < 0 {
			xBound[i] += m.cols
		}
	}

	s := &COO{rows: yBound[1] - yBound[0], cols: xBound[1] - xBound[0], Data: make([]vRowCol, 0)}
	for _, v := range m.Data {
		if v.row < yBound[0] {
			continue
		}
		if v.row >= yBound[1] {
			break
		}
		if v.col < xBound[0] || v.col >= xBound[1] {
			continue
		}
		s.Data = append(s.Data, vRowCol{v: v.v, row: v.row - yBound[0], col: v.col - xBound[0]})
	}
	return s
}

// Add sets a to a + c*b.
func (a *COO) Add(c complex64, b *COO) {
	if !(b.rows == a.rows && b.cols == a.cols) {
		panic(fmt.Sprintf("%dx%d %dx%d", a.rows, a.cols, b.rows, b.cols))
	}

	a.scratch()
	for _, v := range a.Data {
		a.m[[2]int{v.row, v.col}] = v.v
	}
	for _, v := range b.Data {
		a.m[[2]int{v.row, v.col}] += c * v.v
	}

	a.Data = a.Data[:0]
	for yx, v := range a.m {
		if v == 0 {
			continue
		}
		a.Data = append(a.Data, vRowCol{v: v, row: yx[0], col: yx[1]})
	}
	slices.SortFunc(a.Data, rowMajor)
	clear(a.m)
}

// MatMul sets a to the matrix product a*b.
func (a *COO) MatMul(b *COO) {
	if a.cols != b.rows {
		panic(fmt.Sprintf("%dx%d %dx%d", a.rows, a.cols, b.rows, b.cols))
	}

	byRow := make(map[int][]vRowCol)
	for _, bv := range b.Data {
		byRow[bv.row] = append(byRow[bv.row], bv)
	}

	a.scratch()
	for _, av := range a.Data {
		for _, bv := range byRow[av.col] {
			a.m[[2]int{av.row, bv.col}] += av.v * bv.v
		}
	}

	a.cols = b.cols
	a.Data = a.Data[:0]
	for yx, v := range a.m {
		if v == 0 {
			continue
		}
		a.Data = append(a.Data, vRowCol{v: v, row: yx[0], col: yx[1]})
	}
	slices.SortFunc(a.Data, rowMajor)
	clear(a.m)
}

// Kron sets a to the Kronecker product of a and b.
func (a *COO) Kron(b *COO) {
	rows := a.rows * b.rows
	cols := a.cols * b.cols
	a.rows, a.cols = rows, cols

	prevElemNum := len(a.Data)
	for i := prevElemNum - 1; i >= 0; i-- {
		av := a.Data[i]
		a.Data[i].v = 0
		for _, bv := range b.Data {
			ky := av.row*b.rows + bv.row
			kx := av.col*b.cols + bv.col
			a.Data = append(a.Data, vRowCol{v: av.v * bv.v, row: ky, col: kx})
		}
	}

	a.Data = slices.DeleteFunc(a.Data, func(v vRowCol) bool {
		return v.v == 0
	})
	slices.SortFunc(a.Data, rowMajor)
}

// Dagger sets m to its conjugate transpose.
func (m *COO) Dagger() {
	for i, v := range m.Data {
		m.Data[i] = vRowCol{v: complex(real(v.v), -imag(v.v)), row: v.col, col: v.row}
	}
	m.rows, m.cols = m.cols, m.rows
	slices.SortFunc(m.Data, rowMajor)
}

// HermiticityDefect returns max |m - m.Dagger()| over all entries.
func (m *COO) HermiticityDefect() float64 {
	if m.rows != m.cols {
		return math.Inf(1)
	}

	m.scratch()
	for _, v := range m.Data {
		m.m[[2]int{v.row, v.col}] = v.v
	}

	var defect float64
	for _, v := range m.Data {
		t := m.m[[2]int{v.col, v.row}]
		d := v.v - complex(real(t), -imag(t))
		if abs := math.Hypot(float64(real(d)), float64(imag(d))); abs > defect {
			defect = abs
		}
	}

	clear(m.m)
	return defect
}

func (m *COO) Dense() [][]complex64 {
	dense := make([][]complex64, m.rows)
	for i := range dense {
		dense[i] = make([]complex64, m.cols)
	}

	for _, v := range m.Data {
		dense[v.row][v.col] = v.v
	}

	return dense
}

// Eigenvalues returns the eigenvalues of a Hermitian matrix in ascending order.
// The complex matrix H = A + iB is diagonalized through its real symmetric
// doubling [[A, -B], [B, A]], whose spectrum is that of H with every
// eigenvalue appearing twice.
func (m *COO) Eigenvalues() ([]float64, error) {
	if m.rows != m.cols {
		return nil, errors.Errorf("%d %d", m.rows, m.cols)
	}

	n := m.rows
	sym := mat.NewSymDense(2*n, nil)
	for _, v := range m.Data {
		re, im := float64(real(v.v)), float64(imag(v.v))
		sym.SetSym(v.row, v.col, re)
		sym.SetSym(n+v.row, n+v.col, re)
		sym.SetSym(v.row, n+v.col, -im)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, errors.Errorf("factorization failed %dx%d", m.rows, m.cols)
	}
	vals := eig.Values(nil)
	slices.Sort(vals)

	out := make([]float64, 0, n)
	for i := 0; i < 2*n; i += 2 {
		out = append(out, (vals[i]+vals[i+1])/2)
	}
	return out, nil
}

func (m *COO) scratch() {
	if m.m == nil {
		m.m = make(map[[2]int]complex64)
	}
}

func (m *COO) String() string {
	m.scratch()
	for _, v := range m.Data {
		m.m[[2]int{v.row, v.col}] = v.v
	}

	lines := []string{}
	for i := 0; i < m.rows; i++ {
		cs := []string{}
		for j := 0; j < m.cols; j++ {
			v := m.m[[2]int{i, j}]
			switch {
			case imag(v) == 0:
				cs = append(cs, format(real(v)))
			case real(v) == 0:
				cs = append(cs, format(imag(v))+"i")
			default:
				cs = append(cs, format(real(v))+"+"+format(imag(v))+"i")
			}
		}
		l := strings.Join(cs, "\t")
		lines = append(lines, l)
	}

	clear(m.m)
	return strings.Join(lines, "\n")
}

func rowMajor(a, b vRowCol) int {
	if c := cmp.Compare(a.row, b.row); c != 0 {
		return c
	}
	return cmp.Compare(a.col, b.col)
}

func format(v float32) string {
	// If v is 0 or -0, return "0" immediately to avoid returning "-0".
	if v == 0 {
		return " 0"
	}

	s := fmt.Sprintf("%v", v)

	// Add a space before non-negative numbers to align with other negative numbers in the same column.
	if v >= 0 {
		s = " " + s
	}

	return s
}
