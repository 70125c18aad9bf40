package minimizer

// Expand fills in the variables each term leaves out, producing one full
// term per polarity assignment of the missing variables. Terms that already
// name every variable come back as they are (in canonical order).
func Expand(terms []PartialTerm, alpha Alphabet) []FullTerm {
	var out []FullTerm
	for _, t := range terms {
		present := make(map[Variable]bool, len(t.Lits))
		for _, l := range t.Lits {
			present[l.Var] = true
		}
		var missing []Variable
		for _, v := range alpha {
			if !present[v] {
				missing = append(missing, v)
			}
		}

		// combo counts up in binary over the missing variables, first
		// missing variable most significant; a 0 bit is the negated literal.
		for combo := 0; combo < 1<<len(missing); combo++ {
			lits := make([]Literal, 0, len(t.Lits)+len(missing))
			lits = append(lits, t.Lits...)
			for i, v := range missing {
				bit := combo >> (len(missing) - 1 - i) & 1
				lits = append(lits, Literal{Var: v, Neg: bit == 0})
			}
			out = append(out, FullTerm{lits: canonical(lits)})
		}
	}
	return out
}
