package minimizer

import (
	"sort"
	"strings"
	"testing"

	"github.com/dalzilio/rudd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabulatorRounds(t *testing.T) {
	tab := NewTabulator([]Minterm{0, 1, 2, 3}, 2)
	require.Equal(t, Merging, tab.State())
	assert.Equal(t, []Pattern{"00", "01", "10", "11"}, tab.Generation())

	assert.Equal(t, Merging, tab.Step())
	assert.Equal(t, 1, tab.Round())
	assert.Equal(t, []Pattern{"-0", "-1", "0-", "1-"}, tab.Generation())
	assert.Empty(t, tab.PrimeImplicants())

	assert.Equal(t, Merging, tab.Step())
	assert.Equal(t, []Pattern{"--"}, tab.Generation())

	assert.Equal(t, Converged, tab.Step())
	assert.Equal(t, 3, tab.Round())
	assert.Equal(t, []Pattern{"--"}, tab.PrimeImplicants())

	// Stepping a converged tabulator changes nothing.
	assert.Equal(t, Converged, tab.Step())
	assert.Equal(t, 3, tab.Round())
}

func TestTabulatorNoMerge(t *testing.T) {
	// 01 and 10 share a popcount and differ in two bits.
	assert.Equal(t, []Pattern{"01", "10"}, PrimeImplicants([]Minterm{1, 2}, 2))
}

func TestTabulatorDuplicateMinterms(t *testing.T) {
	once := PrimeImplicants([]Minterm{1, 3, 5, 7}, 3)
	twice := PrimeImplicants([]Minterm{7, 5, 3, 1, 1, 7}, 3)
	assert.Equal(t, once, twice)
	assert.Equal(t, []Pattern{"--1"}, once)
}

func TestTabulatorEmpty(t *testing.T) {
	tab := NewTabulator(nil, 3)
	assert.Equal(t, Converged, tab.State())
	assert.Empty(t, tab.Run())
}

func TestMerge(t *testing.T) {
	tests := []struct {
		a, b Pattern
		want Pattern
		ok   bool
	}{
		{"010", "011", "01-", true},
		{"01-", "11-", "-1-", true},
		{"01-", "0-1", "", false},
		{"01", "01", "", false},
		{"01", "10", "", false},
		{"01", "011", "", false},
	}
	for _, tt := range tests {
		got, ok := Merge(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%s %s", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%s %s", tt.a, tt.b)
	}
}

func TestPatternMinterms(t *testing.T) {
	p := Pattern("1-0-")
	assert.Equal(t, []Minterm{8, 9, 12, 13}, p.Minterms())
	assert.True(t, p.Covers(9))
	assert.False(t, p.Covers(10))
	assert.Equal(t, []Minterm{0, 1, 2, 3}, Pattern("--").Minterms())
}

// sopFor writes the sum of the given minterms over the first width letters.
func sopFor(minterms []Minterm, width int) string {
	alpha := Alphabet("ABCDE"[:width])
	terms := make([]string, len(minterms))
	for i, m := range minterms {
		var sb strings.Builder
		for j, v := range alpha {
			sb.WriteByte(byte(v))
			if m>>(width-1-j)&1 == 0 {
				sb.WriteByte(negationMark)
			}
		}
		terms[i] = sb.String()
	}
	return strings.Join(terms, "+")
}

// TestPrimeImplicantProperties checks every non-empty function of three
// variables.
func TestPrimeImplicantProperties(t *testing.T) {
	const width = 3
	bdd, err := rudd.New(width)
	require.NoError(t, err)
	// Pattern position i is BDD variable i.
	sum := func(patterns []Pattern) rudd.Node {
		var cubes []rudd.Node
		for _, p := range patterns {
			var lits []rudd.Node
			for i := 0; i < len(p); i++ {
				switch p[i] {
				case '1':
					lits = append(lits, bdd.Ithvar(i))
				case '0':
					lits = append(lits, bdd.NIthvar(i))
				}
			}
			cubes = append(cubes, bdd.And(lits...))
		}
		return bdd.Or(cubes...)
	}

	for set := 1; set < 1<<(1<<width); set++ {
		var minterms []Minterm
		onSet := make(map[Minterm]bool)
		for m := 0; m < 1<<width; m++ {
			if set>>m&1 == 1 {
				minterms = append(minterms, Minterm(m))
				onSet[Minterm(m)] = true
			}
		}

		res, err := Simplify(sopFor(minterms, width))
		require.NoError(t, err)
		require.Equal(t, width, res.Width)
		primes := res.PrimeImplicants

		seen := make(map[Pattern]bool)
		for _, p := range primes {
			assert.Equal(t, width, p.Width())
			assert.False(t, seen[p], "duplicate prime %s", p)
			seen[p] = true

			// An implicant never covers a minterm outside the function.
			for _, m := range p.Minterms() {
				assert.True(t, onSet[m], "%s covers %d outside %v", p, m, minterms)
			}

			// Formatting and re-expanding reproduces the covered minterms.
			back, err := Encode(Expand([]PartialTerm{{Lits: p.Literals(res.Variables)}}, res.Variables), res.Variables)
			require.NoError(t, err)
			sort.Slice(back, func(i, j int) bool { return back[i] < back[j] })
			assert.Equal(t, p.Minterms(), back, "round trip of %s", p)
		}

		for _, m := range minterms {
			covered := false
			for _, p := range primes {
				if p.Covers(m) {
					covered = true
					break
				}
			}
			assert.True(t, covered, "minterm %d not covered", m)
		}

		// The simplified sum denotes the same function as the input.
		var onPatterns []Pattern
		for _, m := range minterms {
			onPatterns = append(onPatterns, Pattern(m.Binary(width)))
		}
		assert.True(t, bdd.Equal(sum(onPatterns), sum(primes)), "%v is not equivalent to %v", primes, minterms)

		for i := range primes {
			for j := i + 1; j < len(primes); j++ {
				_, ok := Merge(primes[i], primes[j])
				assert.False(t, ok, "%s and %s are still mergeable", primes[i], primes[j])
			}
		}
	}
}
