package minimizer

import (
	"math/bits"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// implicant represents a product term using bitmasks.
// value holds the bit values for care positions; mask has 1=care, 0=don't-care.
// Bit width-1 is the first variable of the alphabet.
type implicant struct {
	value uint
	mask  uint
}

func (imp implicant) ones() int {
	return bits.OnesCount(imp.value & imp.mask)
}

func (imp implicant) pattern(width int) Pattern {
	b := make([]byte, width)
	for i := range b {
		bit := uint(1) << (width - 1 - i)
		switch {
		case imp.mask&bit == 0:
			b[i] = DontCare
		case imp.value&bit != 0:
			b[i] = '1'
		default:
			b[i] = '0'
		}
	}
	return Pattern(b)
}

// tryMerge attempts to merge two implicants that have the same mask (same
// set of care variables) and differ in exactly one variable's polarity.
func tryMerge(a, b implicant) (implicant, bool) {
	if a.mask != b.mask {
		return implicant{}, false
	}
	diff := (a.value ^ b.value) & a.mask
	if diff == 0 || (diff&(diff-1)) != 0 {
		return implicant{}, false // 0 or >1 bits differ
	}
	return implicant{
		value: a.value &^ diff,
		mask:  a.mask &^ diff,
	}, true
}

// State of a Tabulator.
type State int

const (
	Merging State = iota
	Converged
)

func (s State) String() string {
	if s == Converged {
		return "converged"
	}
	return "merging"
}

// Tabulator runs the Quine-McCluskey merge rounds. Each call to Step
// performs one round; patterns that take part in no merge during a round are
// prime implicants. Once a round produces nothing new the tabulator is
// Converged and further steps are no-ops.
type Tabulator struct {
	width   int
	round   int
	state   State
	current map[int][]implicant // keyed by popcount
	primes  mapset.Set[implicant]
}

// NewTabulator seeds the first generation with the distinct minterms.
func NewTabulator(minterms []Minterm, width int) *Tabulator {
	full := uint(1)<<width - 1

	sorted := make([]Minterm, len(minterms))
	copy(sorted, minterms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	seen := mapset.NewThreadUnsafeSet[implicant]()
	current := make(map[int][]implicant)
	for _, m := range sorted {
		imp := implicant{value: uint(m) & full, mask: full}
		if !seen.Add(imp) {
			continue
		}
		k := imp.ones()
		current[k] = append(current[k], imp)
	}

	t := &Tabulator{
		width:   width,
		state:   Merging,
		current: current,
		primes:  mapset.NewThreadUnsafeSet[implicant](),
	}
	if len(current) == 0 {
		t.state = Converged
	}
	return t
}

func (t *Tabulator) State() State { return t.state }

// Round is the number of rounds run so far.
func (t *Tabulator) Round() int { return t.round }

// Step runs one merge round and returns the resulting state.
func (t *Tabulator) Step() State {
	if t.state == Converged {
		return t.state
	}
	t.round++

	next := make(map[int][]implicant)
	produced := mapset.NewThreadUnsafeSet[implicant]()
	consumed := mapset.NewThreadUnsafeSet[implicant]()

	for _, k := range t.popcounts() {
		upper, ok := t.current[k+1]
		if !ok {
			continue
		}
		for _, a := range t.current[k] {
			for _, b := range upper {
				m, ok := tryMerge(a, b)
				if !ok {
					continue
				}
				consumed.Add(a)
				consumed.Add(b)
				if produced.Add(m) {
					next[k] = append(next[k], m)
				}
			}
		}
	}

	for _, group := range t.current {
		for _, imp := range group {
			if !consumed.Contains(imp) {
				t.primes.Add(imp)
			}
		}
	}

	if produced.Cardinality() == 0 {
		t.state = Converged
		t.current = nil
		return t.state
	}
	t.current = next
	return t.state
}

// Run steps until convergence and returns the prime implicants.
func (t *Tabulator) Run() []Pattern {
	for t.Step() != Converged {
	}
	return t.PrimeImplicants()
}

// PrimeImplicants returns the primes collected so far, sorted.
func (t *Tabulator) PrimeImplicants() []Pattern {
	out := make([]Pattern, 0, t.primes.Cardinality())
	for _, imp := range t.primes.ToSlice() {
		out = append(out, imp.pattern(t.width))
	}
	sortPatterns(out)
	return out
}

// Generation returns the patterns awaiting the next round, sorted.
func (t *Tabulator) Generation() []Pattern {
	var out []Pattern
	for _, group := range t.current {
		for _, imp := range group {
			out = append(out, imp.pattern(t.width))
		}
	}
	sortPatterns(out)
	return out
}

func (t *Tabulator) popcounts() []int {
	keys := make([]int, 0, len(t.current))
	for k := range t.current {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// PrimeImplicants tabulates minterms over width variables to completion.
func PrimeImplicants(minterms []Minterm, width int) []Pattern {
	return NewTabulator(minterms, width).Run()
}
