package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad-cli/internal/cli"
	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/files"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <block> <attribute> <value>",
		Short: "Set a block attribute",
		Long: `Set a single attribute on a block document and persist it.

Values "true" and "false" are stored as booleans, everything else as a
string. Item lists can only be edited through the TUI.

Examples:
  # Set the title of the hero block
  blockpad set hero title "Welcome"

  # Flip a boolean attribute
  blockpad set hero visible false`,
		Args: cobra.ExactArgs(3),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runSet,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	blockRef, key, raw := args[0], args[1], args[2]

	block, err := files.ReadBlock(resolveBlockPath(blockRef))
	if err != nil {
		return err
	}

	store := attrs.NewStore(block, files.WriteBlock)
	if store.Items(key) != nil {
		return fmt.Errorf("attribute %q is an item list; edit it in the TUI", key)
	}

	store.Set(key, parseValue(raw))
	if err := store.Commit(); err != nil {
		return err
	}

	fmt.Printf("✓ %s.%s = %s\n", block.Name, key, raw)
	return nil
}

func parseValue(raw string) any {
	if v, err := strconv.ParseBool(raw); err == nil && (raw == "true" || raw == "false") {
		return v
	}
	return raw
}
