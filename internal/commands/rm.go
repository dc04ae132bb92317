package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <card-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a card",
		Example: `
cardedit rm 3f2a9c1e-0b7d-4c55-9a43-1d2e8f6b7a90
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			if err := st.Delete(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
