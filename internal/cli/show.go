package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/samples/pkg/types"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item by ID",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var it types.Item
			err = a.withItems(func(tbl types.ItemTable) error {
				var err error
				it, err = tbl.Get(id)
				return err
			})
			if err != nil {
				return fmt.Errorf("item %d: %w", id, err)
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), it)
			}
			writeItemDetail(cmd.OutOrStdout(), it)
			return nil
		},
	}
}

// parseID converts a positional argument to an item ID.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %s", errUsage, arg)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d", types.ErrInvalidID, id)
	}
	return id, nil
}
