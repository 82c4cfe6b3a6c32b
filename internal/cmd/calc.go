package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/internal/run"
	"hopd/pkg/calc"
)

// NewCalcCmd creates the calc command
func NewCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>...",
		Short: "Evaluate an arithmetic expression with bc",
		Long: `Evaluate an expression by piping it through bc -l. Quote anything your
shell would otherwise mangle:

    hopd calc '2 * (3 + 4)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := calc.Eval(cmd.Context(), run.NewExecRunner(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			cli.NewWriter(cmd.OutOrStdout(), cfg).Plain("%s", result)
			return nil
		},
	}
}
