package minimizer

import (
	"strconv"
	"strings"
)

type Minterm uint

// Binary renders m as a width-wide bit string, most significant bit first.
func (m Minterm) Binary(width int) string {
	s := strconv.FormatUint(uint64(m), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// MintermTable maps the canonical rendering of every full term of an
// alphabet ("A'BC'") to its minterm.
type MintermTable map[string]Minterm

func NewMintermTable(alpha Alphabet) MintermTable {
	n := alpha.Width()
	table := make(MintermTable, 1<<n)
	for m := 0; m < 1<<n; m++ {
		var sb strings.Builder
		for i, v := range alpha {
			sb.WriteByte(byte(v))
			if m>>(n-1-i)&1 == 0 {
				sb.WriteByte(negationMark)
			}
		}
		table[sb.String()] = Minterm(m)
	}
	return table
}

// Encode looks up every term in the alphabet's minterm table. Terms with
// repeated or conflicting literals have no entry and are rejected.
func Encode(terms []FullTerm, alpha Alphabet) ([]Minterm, error) {
	table := NewMintermTable(alpha)
	minterms := make([]Minterm, 0, len(terms))
	for _, t := range terms {
		key := t.String()
		m, ok := table[key]
		if !ok {
			return nil, errEncoding(key)
		}
		minterms = append(minterms, m)
	}
	return minterms, nil
}

// CheckRange rejects minterms that do not fit in width bits.
func CheckRange(minterms []Minterm, width int) error {
	limit := Minterm(1) << width
	for _, m := range minterms {
		if m >= limit {
			return errRange(width)
		}
	}
	return nil
}
