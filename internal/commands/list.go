package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/kobzarvs/cardedit/internal/store"
)

const timeLayout = "2006-01-02 15:04"

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored cards, oldest first",
		Example: `
cardedit list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			return printCards(cmd.Context(), cmd.OutOrStdout(), st)
		},
	}

	topLevel.AddCommand(cmd)
}

type cardLister interface {
	List(ctx context.Context) ([]store.Card, error)
}

// printCards writes a table of cards. Cards that could be read are printed
// even when others failed; the failure is still returned.
func printCards(ctx context.Context, w io.Writer, st cardLister) error {
	cards, err := st.List(ctx)
	if len(cards) == 0 {
		if err == nil {
			_, _ = fmt.Fprintln(w, "no cards")
		}
		return err
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Updated"), bold.Sprint("Title"))
	for _, c := range cards {
		tbl.AddRow(c.ID, c.Updated.Local().Format(timeLayout), c.Title())
	}
	_, _ = fmt.Fprintln(w, tbl)
	return err
}
