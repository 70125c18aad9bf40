// Package minimizer reduces boolean functions of up to five variables to a
// sum of products with the Quine-McCluskey tabulation method.
//
// Input is either a sum of products ("AB'+C") or a product of sums
// ("(A+B)(A'+C)"). The result lists every prime implicant that survives
// tabulation; no covering step is applied, so the returned expression may
// contain redundant terms.
package minimizer

// Result of a successful Simplify.
type Result struct {
	Width     int
	Variables Alphabet
	// InputMinterms are the minterms of the function as sorted bit strings.
	InputMinterms        []string
	PrimeImplicants      []Pattern
	SimplifiedExpression string
}

// Simplify parses expression and minimizes it. Every failure is an *Error;
// a panic inside the pipeline is reported as KindUnexpected.
func Simplify(expression string) (Result, error) {
	return simplify(expression, PrimeImplicants)
}

type tabulateFunc func(minterms []Minterm, width int) []Pattern

func simplify(expression string, tabulate tabulateFunc) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, errUnexpected(r)
		}
	}()

	terms, err := ParseExpression(expression)
	if err != nil {
		return Result{}, err
	}
	alpha, err := IndexVariables(terms)
	if err != nil {
		return Result{}, err
	}
	width := alpha.Width()

	minterms, err := Encode(Expand(terms, alpha), alpha)
	if err != nil {
		return Result{}, err
	}
	if err := CheckRange(minterms, width); err != nil {
		return Result{}, err
	}

	primes := tabulate(minterms, width)
	return Result{
		Width:                width,
		Variables:            alpha,
		InputMinterms:        BinaryInputs(minterms, width),
		PrimeImplicants:      primes,
		SimplifiedExpression: FormatExpression(primes, alpha),
	}, nil
}
