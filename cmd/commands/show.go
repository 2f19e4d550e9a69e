package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad-cli/internal/cli"
	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/files"
)

var showOutputFormat string

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <block>",
		Short: "Show a block's attributes",
		Long: `Show every attribute of the named block document.

The block may be given by name or filename, e.g. "hero" or "hero.yaml".

Examples:
  # Show a block
  blockpad show hero

  # Show with YAML output
  blockpad show hero -o yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

// resolveBlockPath accepts either a block name or a filename.
func resolveBlockPath(ref string) string {
	if strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") {
		return ref
	}
	return files.Slugify(ref) + ".yaml"
}

func runShow(cmd *cobra.Command, args []string) error {
	block, err := files.ReadBlock(resolveBlockPath(args[0]))
	if err != nil {
		return err
	}

	if showOutputFormat != "text" {
		return cli.OutputResults(os.Stdout, showOutputFormat, block)
	}

	fmt.Printf("%s (%s)\n\n", block.Name, block.Type)

	keys := make([]string, 0, len(block.Attributes))
	for key := range block.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	store := attrs.NewStore(block, nil)
	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ATTRIBUTE", "VALUE")
	for _, key := range keys {
		table.Row(key, formatAttribute(store, key))
	}
	table.Flush()

	return nil
}

// formatAttribute renders an attribute value for the text table; item lists
// collapse to a count plus their labels.
func formatAttribute(store *attrs.Store, key string) string {
	if items := store.Items(key); items != nil {
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = item.Label
		}
		return fmt.Sprintf("%d items: %s", len(items), strings.Join(labels, ", "))
	}
	return fmt.Sprintf("%v", store.Get(key))
}
