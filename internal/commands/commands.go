// Package commands builds the cardedit command line.
package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kobzarvs/cardedit/internal/app"
	"github.com/kobzarvs/cardedit/internal/config"
	"github.com/kobzarvs/cardedit/internal/store"
)

func New() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "cardedit [card-id]",
		Short: "Write and edit short text cards in the terminal.",
		Example: `
cardedit
cardedit --review
cardedit 3f2a9c1e-0b7d-4c55-9a43-1d2e8f6b7a90
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if opts.Review {
					return errors.New("--review does not take a card id")
				}
				opts.CardID = args[0]
			}
			return app.New(opts).Run()
		},
	}
	cmd.Flags().BoolVar(&opts.Review, "review", false, "start on the review page")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "write debug output to the log file")
	cmd.SetOut(color.Output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addRm(topLevel)
}

func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	return store.Open(dir)
}
