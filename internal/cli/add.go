package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/samples/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var item types.Item

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace an item",
		Long: `Add an item to the store. Without --id the next free ID is assigned;
with --id an existing item of that ID is replaced.

Example:
  samples add --title "항목 11" --description "열한 번째 항목입니다."
  samples add --id 3 --title "updated"`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int
			err := a.withItems(func(tbl types.ItemTable) error {
				var err error
				id, err = tbl.Set(item)
				return err
			})
			if err != nil {
				return fmt.Errorf("add item: %w", err)
			}

			item.ID = id
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added item %d\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&item.ID, "id", 0, "item ID (default: next free ID)")
	cmd.Flags().StringVar(&item.Title, "title", "", "item title (required)")
	cmd.Flags().StringVar(&item.Description, "description", "", "item description")
	return cmd
}
