package pairwise

// Matrix is a labeled symmetric N×N matrix of pairwise metric values, one
// row/column per unit. Set mirrors every write into both triangle positions,
// so M[i][j] == M[j][i] holds by construction. Once a metric engine returns
// a Matrix it is treated as an immutable value object.
type Matrix struct {
	labels []string
	index  map[string]int
	cells  [][]float64
}

// New creates a zero-valued matrix over the given unit labels. The label
// slice is copied.
func New(labels []string) *Matrix {
	m := &Matrix{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
		cells:  make([][]float64, len(labels)),
	}
	copy(m.labels, labels)
	for i, label := range m.labels {
		m.index[label] = i
		m.cells[i] = make([]float64, len(labels))
	}
	return m
}

// Size returns N, the number of units.
func (m *Matrix) Size() int {
	return len(m.labels)
}

// Labels returns the unit labels in row order.
func (m *Matrix) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// Label returns the unit label of row i.
func (m *Matrix) Label(i int) string {
	return m.labels[i]
}

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) float64 {
	return m.cells[i][j]
}

// ByID returns the value for a pair of unit labels and whether both labels
// exist in the matrix.
func (m *Matrix) ByID(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.cells[i][j], true
}

// Set writes v at (i, j) and mirrors it to (j, i).
func (m *Matrix) Set(i, j int, v float64) {
	m.cells[i][j] = v
	m.cells[j][i] = v
}

// Map applies f to every cell and returns the result as a new matrix. The
// transform is pure and elementwise, so symmetry is preserved by
// construction; the receiver is unchanged. This is how derived matrices such
// as cosine dissimilarity (1 − similarity) are produced.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	out := New(m.labels)
	for i := range m.cells {
		for j := range m.cells[i] {
			out.cells[i][j] = f(m.cells[i][j])
		}
	}
	return out
}
