package cmd

import (
	"github.com/spf13/cobra"

	"hopd/internal/cli"
	"hopd/pkg/passgen"
)

// NewGenpassCmd creates the genpass command
func NewGenpassCmd() *cobra.Command {
	var (
		length    int
		count     int
		noSymbols bool
	)

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := cli.NewWriter(cmd.OutOrStdout(), cfg)
			opts := passgen.Options{Length: length, Symbols: !noSymbols}

			for i := 0; i < count; i++ {
				password, err := passgen.Generate(opts)
				if err != nil {
					return err
				}
				ui.Plain("%s", password)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", passgen.DefaultLength, "Password length")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many passwords to generate")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "Letters and digits only")

	return cmd
}
