package atom

// Pool issues stable positive integer ids for atoms. Ids start at 1 (SAT
// conventions reserve 0 as a clause terminator) and grow densely in
// first-reference order. The registry only ever grows: no atom is
// re-assigned and no id is recycled within a solve attempt.
type Pool struct {
	ids   map[Atom]int
	atoms []Atom // atoms[i] owns id i+1
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{ids: make(map[Atom]int)}
}

// ID returns the id of a, issuing a fresh one on first reference.
// The mapping is injective and stable: equal atoms always yield the same
// positive id.
// Complexity: O(1) amortized.
func (p *Pool) ID(a Atom) int {
	if id, ok := p.ids[a]; ok {
		return id
	}
	p.atoms = append(p.atoms, a)
	id := len(p.atoms)
	p.ids[a] = id
	return id
}

// Lookup returns the atom that owns id. The second result is false for
// ids the pool has never issued (including zero and negatives).
// Complexity: O(1).
func (p *Pool) Lookup(id int) (Atom, bool) {
	if id < 1 || id > len(p.atoms) {
		return Atom{}, false
	}
	return p.atoms[id-1], true
}

// Len returns the number of ids issued so far.
func (p *Pool) Len() int {
	return len(p.atoms)
}
