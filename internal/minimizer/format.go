package minimizer

import (
	"fmt"
	"sort"
	"strings"
)

// DontCare marks a pattern position that two merged patterns disagreed on.
const DontCare = '-'

// Pattern is a product term over an alphabet written as a string of '0',
// '1' and '-', one character per variable.
type Pattern string

func (p Pattern) Width() int { return len(p) }

func (p Pattern) implicant() implicant {
	var imp implicant
	for i := 0; i < len(p); i++ {
		bit := uint(1) << (len(p) - 1 - i)
		switch p[i] {
		case '1':
			imp.value |= bit
			imp.mask |= bit
		case '0':
			imp.mask |= bit
		}
	}
	return imp
}

// Merge combines two patterns that differ in exactly one fixed position,
// replacing that position with DontCare. Don't-care positions have to line up.
func Merge(a, b Pattern) (Pattern, bool) {
	if len(a) != len(b) {
		return "", false
	}
	m, ok := tryMerge(a.implicant(), b.implicant())
	if !ok {
		return "", false
	}
	return m.pattern(len(a)), true
}

// Covers reports whether minterm m agrees with every fixed position of p.
func (p Pattern) Covers(m Minterm) bool {
	imp := p.implicant()
	return uint(m)&imp.mask == imp.value
}

// Minterms expands p into the minterms it covers, in ascending order.
func (p Pattern) Minterms() []Minterm {
	imp := p.implicant()
	var dcBits []int
	for b := 0; b < len(p); b++ {
		if imp.mask&(uint(1)<<b) == 0 {
			dcBits = append(dcBits, b)
		}
	}

	out := make([]Minterm, 0, 1<<len(dcBits))
	for i := 0; i < 1<<len(dcBits); i++ {
		m := imp.value
		for j, bit := range dcBits {
			if i&(1<<j) != 0 {
				m |= uint(1) << bit
			}
		}
		out = append(out, Minterm(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Literals converts p back into a product term over alpha.
func (p Pattern) Literals(alpha Alphabet) []Literal {
	var lits []Literal
	for i := 0; i < len(p) && i < len(alpha); i++ {
		switch p[i] {
		case '1':
			lits = append(lits, Literal{Var: alpha[i]})
		case '0':
			lits = append(lits, Literal{Var: alpha[i], Neg: true})
		}
	}
	return lits
}

func FormatTerm(p Pattern, alpha Alphabet) string {
	return renderLits(p.Literals(alpha))
}

// FormatExpression renders patterns as a sum of products in pattern order.
// A pattern made only of don't-cares renders as an empty term.
func FormatExpression(patterns []Pattern, alpha Alphabet) string {
	sorted := make([]Pattern, len(patterns))
	copy(sorted, patterns)
	sortPatterns(sorted)

	terms := make([]string, len(sorted))
	for i, p := range sorted {
		terms[i] = FormatTerm(p, alpha)
	}
	return strings.Join(terms, " + ")
}

// BinaryInputs lists the minterms as sorted bit strings. Repeated minterms
// are listed once per occurrence.
func BinaryInputs(minterms []Minterm, width int) []string {
	sorted := make([]Minterm, len(minterms))
	copy(sorted, minterms)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make([]string, len(sorted))
	for i, m := range sorted {
		out[i] = m.Binary(width)
	}
	return out
}

func sortPatterns(ps []Pattern) {
	sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
}

func joinPatterns(ps []Pattern) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = string(p)
	}
	return strings.Join(s, ", ")
}

// Summary renders the two-line report returned by the service.
func (r Result) Summary() string {
	return fmt.Sprintf("Essential Prime Implicants: %s\nSimplified Expression: F = %s",
		joinPatterns(r.PrimeImplicants), r.SimplifiedExpression)
}
