package decomp

import (
	"strconv"

	"github.com/katalvlaran/ualg/algebra"
)

// Partition is a disjoint-set partition of the universe {0..n-1}, using
// union-find with path compression and union by rank. The zero value is
// not usable; construct with NewPartition.
//
// Canonical form: Labels assigns block numbers 0..k-1 in order of each
// block's least element, so two Partitions describe the same partition iff
// their Labels (and Key) are equal, regardless of union order.
type Partition struct {
	parent []int
	rank   []int
	blocks int
}

// NewPartition returns the identity partition of {0..n-1}: n singleton
// blocks. Errors: ErrBadUniverse for n < 1. Complexity: O(n).
func NewPartition(n int) (*Partition, error) {
	if n < 1 {
		return nil, ErrBadUniverse
	}

	p := &Partition{
		parent: make([]int, n),
		rank:   make([]int, n),
		blocks: n,
	}
	for i := range p.parent {
		p.parent[i] = i
	}

	return p, nil
}

// Size returns the universe size n.
func (p *Partition) Size() int { return len(p.parent) }

// NumBlocks returns the current number of blocks.
func (p *Partition) NumBlocks() int { return p.blocks }

// IsIdentity reports whether every block is a singleton.
func (p *Partition) IsIdentity() bool { return p.blocks == len(p.parent) }

// IsAll reports whether all elements share one block (the full partition).
func (p *Partition) IsAll() bool { return p.blocks == 1 }

// find walks to the root with path compression (iterative, as in a
// classic DSU; grandparent pointing keeps the walk short).
func (p *Partition) find(x int) int {
	for p.parent[x] != x {
		p.parent[x] = p.parent[p.parent[x]]
		x = p.parent[x]
	}

	return x
}

// Same reports whether x and y lie in one block.
// Errors: algebra.ErrElementRange. Complexity: amortized near O(1).
func (p *Partition) Same(x, y int) (bool, error) {
	if x < 0 || x >= len(p.parent) || y < 0 || y >= len(p.parent) {
		return false, algebra.ErrElementRange
	}

	return p.find(x) == p.find(y), nil
}

// Union merges the blocks of x and y. Reports whether a merge happened
// (false when x and y were already related).
// Errors: algebra.ErrElementRange. Complexity: amortized near O(1).
func (p *Partition) Union(x, y int) (bool, error) {
	if x < 0 || x >= len(p.parent) || y < 0 || y >= len(p.parent) {
		return false, algebra.ErrElementRange
	}
	rx, ry := p.find(x), p.find(y)
	if rx == ry {
		return false, nil
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if p.rank[rx] < p.rank[ry] {
		rx, ry = ry, rx
	}
	p.parent[ry] = rx
	if p.rank[rx] == p.rank[ry] {
		p.rank[rx]++
	}
	p.blocks--

	return true, nil
}

// Labels returns the canonical block label of each element: blocks are
// numbered 0..NumBlocks()-1 in order of their least element. Complexity: O(n).
func (p *Partition) Labels() []int {
	labels := make([]int, len(p.parent))
	rootLabel := make(map[int]int, p.blocks)
	next := 0
	for x := range p.parent {
		r := p.find(x)
		l, seen := rootLabel[r]
		if !seen {
			l = next
			rootLabel[r] = l
			next++
		}
		labels[x] = l
	}

	return labels
}

// Blocks returns the partition as ordered blocks: block order by least
// element, members ascending. Complexity: O(n).
func (p *Partition) Blocks() [][]int {
	labels := p.Labels()
	blocks := make([][]int, p.blocks)
	for x, l := range labels {
		blocks[l] = append(blocks[l], x)
	}

	return blocks
}

// Representatives returns the least element of each block, in label order.
func (p *Partition) Representatives() []int {
	labels := p.Labels()
	reps := make([]int, p.blocks)
	for i := range reps {
		reps[i] = -1
	}
	for x, l := range labels {
		if reps[l] < 0 {
			reps[l] = x
		}
	}

	return reps
}

// Refines reports whether p is a refinement of q (every p-block lies
// inside one q-block, i.e. p ≤ q in the partition lattice).
// Errors: ErrSizeMismatch. Complexity: O(n).
func (p *Partition) Refines(q *Partition) (bool, error) {
	if q == nil || q.Size() != p.Size() {
		return false, ErrSizeMismatch
	}
	qLabels := q.Labels()
	for x := range p.parent {
		if qLabels[x] != qLabels[p.find(x)] {
			return false, nil
		}
	}

	return true, nil
}

// Clone returns an independent copy of p.
func (p *Partition) Clone() *Partition {
	return &Partition{
		parent: append([]int(nil), p.parent...),
		rank:   append([]int(nil), p.rank...),
		blocks: p.blocks,
	}
}

// Key returns a canonical string form of the partition (its Labels),
// suitable for deduplication across differently built equal partitions.
func (p *Partition) Key() string {
	labels := p.Labels()
	buf := make([]byte, 0, len(labels)*3)
	for _, l := range labels {
		buf = strconv.AppendInt(buf, int64(l), 10)
		buf = append(buf, ',')
	}

	return string(buf)
}

// relatedPairs counts the distinct related pairs {x,y}, x≠y — the witness
// size used to order decomposition candidates.
func (p *Partition) relatedPairs() int {
	total := 0
	for _, b := range p.Blocks() {
		total += len(b) * (len(b) - 1) / 2
	}

	return total
}
