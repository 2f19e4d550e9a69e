package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad-cli/internal/cli"
	"github.com/blockpad/blockpad-cli/pkg/files"
)

// ListResult represents the output structure for the list command
type ListResult struct {
	Blocks []ListItem `json:"blocks" yaml:"blocks"`
	Count  int        `json:"count" yaml:"count"`
}

// ListItem represents a single block in the list
type ListItem struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Filename string `json:"filename" yaml:"filename"`
}

var listOutputFormat string

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List block documents",
		Long: `List every block document in the current project.

Examples:
  # List all blocks
  blockpad list

  # List with JSON output
  blockpad list -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	paths, err := files.ListBlocks()
	if err != nil {
		return err
	}

	result := ListResult{}
	for _, path := range paths {
		block, err := files.ReadBlock(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", path, err)
			continue
		}
		result.Blocks = append(result.Blocks, ListItem{
			Name:     block.Name,
			Type:     block.Type,
			Filename: path,
		})
	}
	result.Count = len(result.Blocks)

	if listOutputFormat != "text" {
		return cli.OutputResults(os.Stdout, listOutputFormat, result)
	}

	if result.Count == 0 {
		fmt.Println("No blocks found. Run 'blockpad' to create one.")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "TYPE", "FILE")
	for _, item := range result.Blocks {
		table.Row(item.Name, item.Type, item.Filename)
	}
	table.Flush()

	return nil
}
