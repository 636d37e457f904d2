package cluster

// Node is one node of a dendrogram. A leaf carries a unit label and a Size
// of 1; an internal node carries the height at which its two children were
// merged and the number of original leaves it subsumes. Heights are recorded
// raw: a later merge may sit lower than an earlier one under some linkages
// and no monotonicity correction is applied.
type Node struct {
	Height float64
	Left   *Node
	Right  *Node
	Leaf   string // unit label, empty for internal nodes
	Size   int    // original leaves subsumed
}

// IsLeaf reports whether the node is an original unit.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Merge records one agglomeration step in merge order.
type Merge struct {
	Height float64
	Node   *Node
}

// Dendrogram is the binary merge tree over N units: N leaves, each label
// appearing exactly once, and N−1 internal nodes. Immutable once returned.
type Dendrogram struct {
	root   *Node
	labels []string
	merges []Merge
}

// Root returns the final merged cluster.
func (d *Dendrogram) Root() *Node {
	return d.root
}

// Labels returns the unit labels in the input matrix's row order.
func (d *Dendrogram) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Merges returns the N−1 merge steps in the order they happened.
func (d *Dendrogram) Merges() []Merge {
	out := make([]Merge, len(d.merges))
	copy(out, d.merges)
	return out
}

// Leaves returns the leaf labels in left-to-right tree order.
func (d *Dendrogram) Leaves() []string {
	var out []string
	d.Walk(func(n *Node) {
		if n.IsLeaf() {
			out = append(out, n.Leaf)
		}
	})
	return out
}

// Walk visits every node depth-first, children before parents, left child
// first. Rendering collaborators use this to lay out the tree.
func (d *Dendrogram) Walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		if n == nil {
			return
		}
		visit(n.Left)
		visit(n.Right)
		fn(n)
	}
	visit(d.root)
}
