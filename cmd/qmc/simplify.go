package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pborges/qmc/internal/minimizer"
)

type simplifyOutput struct {
	Variables       string   `json:"variables"`
	BinaryInput     []string `json:"binaryInput"`
	PrimeImplicants []string `json:"primeImplicants"`
	Simplified      string   `json:"simplified"`
}

func newSimplifyCmd(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "simplify <expression>",
		Short: "Minimize a SOP or POS expression",
		Long: `Minimize a boolean expression of at most five single-letter variables.
A trailing apostrophe negates a variable. Terms are separated by '+';
a product of sums is written as adjacent parenthesised groups.

Example) qmc simplify "A'B + AB' + AB"
Example) qmc simplify "(A+B)(A'+C)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			res, err := minimizer.Simplify(expr)
			if err != nil {
				root.logger.Debug("simplification failed",
					zap.String("expression", expr),
					zap.Stringer("kind", minimizer.KindOf(err)))
				return err
			}
			root.logger.Debug("simplified",
				zap.String("expression", expr),
				zap.Int("primeImplicants", len(res.PrimeImplicants)))

			out := cmd.OutOrStdout()
			if asJSON {
				primes := make([]string, len(res.PrimeImplicants))
				for i, p := range res.PrimeImplicants {
					primes[i] = string(p)
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(simplifyOutput{
					Variables:       res.Variables.String(),
					BinaryInput:     res.InputMinterms,
					PrimeImplicants: primes,
					Simplified:      res.SimplifiedExpression,
				})
			}
			fmt.Fprintf(out, "Binary Input: %s\n", strings.Join(res.InputMinterms, ", "))
			fmt.Fprintln(out, res.Summary())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the result in JSON format")
	return cmd
}
