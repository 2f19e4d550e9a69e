package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad-cli/internal/cli"
	"github.com/blockpad/blockpad-cli/pkg/export"
	"github.com/blockpad/blockpad-cli/pkg/files"
)

var exportOutputFile string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [blocks...]",
		Short: "Compose blocks into a single markdown document",
		Long: `Compose block documents into a single markdown file.

With no arguments every block in the project is exported; otherwise only the
named blocks are, in the given order (grouped by type).

Examples:
  # Export the whole project to BLOCKPAD.md
  blockpad export

  # Export selected blocks to a custom file
  blockpad export hero footer -f landing.md`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportOutputFile, "file", "f", "", "Output file (default from settings)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		paths = append(paths, resolveBlockPath(arg))
	}
	if len(paths) == 0 {
		all, err := files.ListBlocks()
		if err != nil {
			return err
		}
		paths = all
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to export: no blocks in project")
	}

	content, err := export.ComposeDocument(paths, settings)
	if err != nil {
		return err
	}

	outputFile := exportOutputFile
	if outputFile == "" {
		outputFile = settings.Export.OutputFile
	}
	if err := export.WriteDocumentFile(content, outputFile); err != nil {
		return err
	}
	if outputFile == "" {
		outputFile = export.DefaultOutputFile
	}

	fmt.Printf("✓ Exported %d block(s) to %s\n", len(paths), outputFile)
	return nil
}
