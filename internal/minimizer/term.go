package minimizer

import (
	"sort"
	"strings"
)

// Variable is a single ASCII letter.
type Variable byte

func (v Variable) String() string { return string(v) }

// isVariable accepts ASCII letters only. Bytes of multi-byte UTF-8 letters
// are skipped like any other separator.
func isVariable(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// negationMark follows a variable to negate it.
const negationMark = '\''

type Literal struct {
	Var Variable
	Neg bool
}

func (l Literal) String() string {
	if l.Neg {
		return string(l.Var) + string(negationMark)
	}
	return string(l.Var)
}

// PartialTerm is a product term as written by the user. It may leave out
// variables of the alphabet and has to go through Expand before it can be
// encoded.
type PartialTerm struct {
	Lits []Literal
}

func (t PartialTerm) String() string { return renderLits(t.Lits) }

// FullTerm is a product term naming every variable of an alphabet. Only
// Expand produces values of this type.
type FullTerm struct {
	lits []Literal
}

func (t FullTerm) Literals() []Literal { return t.lits }

func (t FullTerm) String() string { return renderLits(t.lits) }

func renderLits(lits []Literal) string {
	var sb strings.Builder
	for _, l := range lits {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// canonical returns a copy of lits in alphabetical variable order. The sort
// is stable so repeated variables keep their written order.
func canonical(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	copy(out, lits)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Var < out[j].Var })
	return out
}

// lexTerm reads the literals of a single product term. Anything that is
// neither a letter nor a negation mark is skipped, so "A*B" and "AB" are
// the same term.
func lexTerm(s string) PartialTerm {
	var lits []Literal
	for i := 0; i < len(s); i++ {
		if !isVariable(s[i]) {
			continue
		}
		neg := i+1 < len(s) && s[i+1] == negationMark
		lits = append(lits, Literal{Var: Variable(s[i]), Neg: neg})
	}
	return PartialTerm{Lits: lits}
}

// conjoin ANDs two terms. It fails if the result would assign both
// polarities to one variable; shared literals are kept once.
func conjoin(a, b PartialTerm) (PartialTerm, bool) {
	seen := make(map[Variable]bool, len(a.Lits)+len(b.Lits))
	lits := make([]Literal, 0, len(a.Lits)+len(b.Lits))
	for _, l := range append(append([]Literal{}, a.Lits...), b.Lits...) {
		if neg, ok := seen[l.Var]; ok {
			if neg != l.Neg {
				return PartialTerm{}, false
			}
			continue
		}
		seen[l.Var] = l.Neg
		lits = append(lits, l)
	}
	return PartialTerm{Lits: canonical(lits)}, true
}
