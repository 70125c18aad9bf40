package minimizer

import (
	"strings"
	"unicode"
)

// IsPOS reports whether expr is written as a product of sums, e.g.
// "(A+B)(A'+C)". An explicit '*' always selects sum-of-products syntax.
func IsPOS(expr string) bool {
	return strings.Contains(expr, "(") && strings.Contains(expr, ")") && !strings.Contains(expr, "*")
}

// ParseExpression turns a SOP or POS expression into a list of product
// terms. POS input is distributed into an equivalent SOP first.
func ParseExpression(expr string) ([]PartialTerm, error) {
	s := stripSpace(expr)
	if s == "" {
		return nil, errMalformed()
	}
	// Distribution grows with the number of letters per group, so the
	// variable cap is applied to the raw text first.
	if countVariables(s) > MaxVariables {
		return nil, errOverflow()
	}

	if IsPOS(s) {
		groups := sumGroups(s)
		for _, group := range groups {
			for _, raw := range group {
				if err := checkTerm(raw); err != nil {
					return nil, err
				}
			}
		}
		terms := distribute(groups)
		if len(terms) == 0 {
			return nil, errContradiction()
		}
		return terms, nil
	}

	var terms []PartialTerm
	for _, raw := range strings.Split(s, "+") {
		if err := checkTerm(raw); err != nil {
			return nil, err
		}
		terms = append(terms, lexTerm(raw))
	}
	return terms, nil
}

// checkTerm rejects empty terms and terms without a single variable.
func checkTerm(raw string) error {
	if raw == "" {
		return errMalformed()
	}
	for i := 0; i < len(raw); i++ {
		if isVariable(raw[i]) {
			return nil
		}
	}
	return errConstant(raw)
}

func countVariables(s string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; isVariable(c) && !seen[c] {
			seen[c] = true
			n++
		}
	}
	return n
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// sumGroups splits "(A+B)(C+D')" into [[A B] [C D']].
func sumGroups(s string) [][]string {
	parts := strings.Split(s, ")(")
	groups := make([][]string, 0, len(parts))
	for _, p := range parts {
		groups = append(groups, strings.Split(strings.Trim(p, "()"), "+"))
	}
	return groups
}

// distribute multiplies the sum groups out left to right:
// (a+b)(c+d) = ac + ad + bc + bd. Products that assign both polarities to a
// variable are dropped and identical products are kept once. An empty
// result means the product of sums is unsatisfiable.
func distribute(groups [][]string) []PartialTerm {
	if len(groups) == 0 {
		return nil
	}
	current := make([]PartialTerm, 0, len(groups[0]))
	for _, raw := range groups[0] {
		current = append(current, lexTerm(raw))
	}

	for _, group := range groups[1:] {
		var next []PartialTerm
		seen := make(map[string]bool)
		for _, left := range current {
			for _, raw := range group {
				t, ok := conjoin(left, lexTerm(raw))
				if !ok {
					continue
				}
				key := t.String()
				if seen[key] {
					continue
				}
				seen[key] = true
				next = append(next, t)
			}
		}
		current = next
		if len(current) == 0 {
			break
		}
	}
	return current
}
