package minimizer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullStrings(terms []FullTerm) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}
	return out
}

func TestIndexVariables(t *testing.T) {
	terms, err := ParseExpression("CB'+A+C")
	require.NoError(t, err)
	alpha, err := IndexVariables(terms)
	require.NoError(t, err)
	assert.Equal(t, "ABC", alpha.String())
	assert.Equal(t, 3, alpha.Width())
	assert.Equal(t, 0, alpha.Index('A'))
	assert.Equal(t, 2, alpha.Index('C'))
	assert.Equal(t, -1, alpha.Index('D'))
}

func TestIndexVariables_Overflow(t *testing.T) {
	terms, err := ParseExpression("ABCDEF")
	require.NoError(t, err)
	_, err = IndexVariables(terms)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindVariableOverflow))
	assert.Equal(t, "This is a 5-bit solver and does not support more than 5 variables.", err.Error())
}

func TestExpand(t *testing.T) {
	alpha := Alphabet("ABC")
	got := Expand([]PartialTerm{lexTerm("B"), lexTerm("C'A'B")}, alpha)
	assert.Equal(t, []string{"A'BC'", "A'BC", "ABC'", "ABC", "A'BC'"}, fullStrings(got))
}

func TestNewMintermTable(t *testing.T) {
	table := NewMintermTable(Alphabet("AB"))
	assert.Equal(t, MintermTable{"A'B'": 0, "A'B": 1, "AB'": 2, "AB": 3}, table)
}

func TestEncode(t *testing.T) {
	alpha := Alphabet("ABC")
	minterms, err := Encode(Expand([]PartialTerm{lexTerm("AC")}, alpha), alpha)
	require.NoError(t, err)
	assert.Equal(t, []Minterm{5, 7}, minterms)
}

func TestEncode_MistypedTerm(t *testing.T) {
	alpha := Alphabet("A")
	_, err := Encode(Expand([]PartialTerm{lexTerm("AA'")}, alpha), alpha)
	require.Error(t, err)
	assert.Equal(t, KindEncoding, KindOf(err))
	assert.Equal(t, "Invalid or mistyped term: AA'", err.Error())
}

func TestCheckRange(t *testing.T) {
	assert.NoError(t, CheckRange([]Minterm{0, 7}, 3))

	err := CheckRange([]Minterm{3, 8}, 3)
	require.Error(t, err)
	assert.Equal(t, KindRange, KindOf(err))
	assert.Equal(t, "This is a 3-bit solver and does not support minterms greater than 7.", err.Error())
}

func TestMintermBinary(t *testing.T) {
	assert.Equal(t, "00101", Minterm(5).Binary(5))
	assert.Equal(t, "1", Minterm(1).Binary(1))
}

func TestKindOf(t *testing.T) {
	wrapped := errors.Wrap(errContradiction(), "simplify")
	assert.Equal(t, KindContradiction, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindContradiction))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("boom")))
	assert.False(t, IsKind(nil, KindUnexpected))
	assert.Equal(t, "variable_overflow", KindVariableOverflow.String())
}
