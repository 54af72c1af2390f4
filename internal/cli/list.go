package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/samples/pkg/items"
	"github.com/mesh-intelligence/samples/pkg/types"
)

type listOptions struct {
	builtin     bool
	title       string
	description string
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Long: `List the items in the configured store, ordered by ID.

With --builtin the compiled-in sample table is listed instead and no storage
is touched. --title and --description filter by exact match.

Example:
  samples list
  samples list --builtin --json
  samples list --title "항목 3"`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "list the built-in table instead of the store")
	cmd.Flags().StringVar(&opts.title, "title", "", "only items with this exact title")
	cmd.Flags().StringVar(&opts.description, "description", "", "only items with this exact description")
	return cmd
}

func (opts listOptions) filter(cmd *cobra.Command) map[string]any {
	filter := make(map[string]any)
	if cmd.Flags().Changed("title") {
		filter[types.FilterTitle] = opts.title
	}
	if cmd.Flags().Changed("description") {
		filter[types.FilterDescription] = opts.description
	}
	return filter
}

func (a *app) runList(cmd *cobra.Command, opts listOptions) error {
	filter := opts.filter(cmd)

	var result []types.Item
	if opts.builtin {
		result = []types.Item{}
		for _, it := range items.All() {
			if types.MatchFilter(it, filter) {
				result = append(result, it)
			}
		}
	} else {
		err := a.withItems(func(tbl types.ItemTable) error {
			var err error
			result, err = tbl.Fetch(filter)
			return err
		})
		if err != nil {
			return err
		}
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	writeItemTable(cmd.OutOrStdout(), result)
	return nil
}
