package minimizer

import "sort"

// MaxVariables is the widest function the minimizer accepts.
const MaxVariables = 5

// Alphabet is the sorted set of variables of one expression. Position 0 is
// the most significant bit of every minterm and pattern.
type Alphabet []Variable

func (a Alphabet) Width() int { return len(a) }

// Index returns the bit position of v, or -1.
func (a Alphabet) Index(v Variable) int {
	i := sort.Search(len(a), func(i int) bool { return a[i] >= v })
	if i < len(a) && a[i] == v {
		return i
	}
	return -1
}

func (a Alphabet) String() string {
	b := make([]byte, len(a))
	for i, v := range a {
		b[i] = byte(v)
	}
	return string(b)
}

// IndexVariables collects the variables used by terms.
func IndexVariables(terms []PartialTerm) (Alphabet, error) {
	seen := make(map[Variable]bool)
	for _, t := range terms {
		for _, l := range t.Lits {
			seen[l.Var] = true
		}
	}
	if len(seen) > MaxVariables {
		return nil, errOverflow()
	}
	alpha := make(Alphabet, 0, len(seen))
	for v := range seen {
		alpha = append(alpha, v)
	}
	sort.Slice(alpha, func(i, j int) bool { return alpha[i] < alpha[j] })
	return alpha, nil
}
