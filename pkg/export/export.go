// Package export composes block documents into a single markdown file so a
// project can be shared or published outside the TUI.
package export

import (
	"fmt"
	"strings"

	"github.com/blockpad/blockpad-cli/pkg/attrs"
	"github.com/blockpad/blockpad-cli/pkg/files"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// DefaultOutputFile is used when neither settings nor the caller name one.
const DefaultOutputFile = "BLOCKPAD.md"

// Attribute keys the exporter understands. Blocks may carry more; anything
// unrecognized stays in the YAML document and is simply not rendered.
const (
	attrTitle      = "title"
	attrLayout     = "layout"
	attrTextColor  = "text_color"
	attrBackground = "background_color"
	attrItems      = "items"
	attrAnchor     = "anchor"
)

type blockWithPath struct {
	path  string
	block *models.Block
}

// ComposeDocument renders the given block documents into a single markdown
// document. Paths are block filenames relative to the blocks directory; pass
// the result of files.ListBlocks to export the whole project. Blocks are
// grouped by type in order of first appearance, and blocks that fail to load
// are reported in a trailing warning instead of aborting the export.
func ComposeDocument(paths []string, settings *models.Settings) (string, error) {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	if len(paths) == 0 {
		return "", fmt.Errorf("cannot compose document: no blocks to export")
	}

	typeGroups := make(map[string][]blockWithPath)
	typeOrder := []string{}
	var missingBlocks []string

	for _, path := range paths {
		block, err := files.ReadBlock(path)
		if err != nil {
			missingBlocks = append(missingBlocks, path)
			continue
		}

		if _, exists := typeGroups[block.Type]; !exists {
			typeOrder = append(typeOrder, block.Type)
		}
		typeGroups[block.Type] = append(typeGroups[block.Type], blockWithPath{
			path:  path,
			block: block,
		})
	}

	if len(typeGroups) == 0 {
		return "", fmt.Errorf("cannot compose document: none of the %d blocks could be loaded", len(paths))
	}

	var output strings.Builder

	for _, blockType := range typeOrder {
		if settings.Export.ShowHeadings {
			output.WriteString(fmt.Sprintf("## %s\n\n", typeHeading(blockType)))
		}

		for _, entry := range typeGroups[blockType] {
			output.WriteString(fmt.Sprintf("<!-- %s -->\n", entry.path))
			writeBlock(&output, entry.block)
		}
	}

	if len(missingBlocks) > 0 {
		output.WriteString("\n---\n")
		output.WriteString("⚠️  Warning: The following blocks could not be loaded:\n")
		for _, path := range missingBlocks {
			output.WriteString(fmt.Sprintf("   - %s\n", path))
		}
	}

	return output.String(), nil
}

// writeBlock renders one block: its heading, a metadata line when the block
// styles itself, and its item list.
func writeBlock(output *strings.Builder, block *models.Block) {
	store := attrs.NewStore(block, nil)

	title := store.String(attrTitle)
	if title == "" {
		title = block.Name
	}

	if anchor := store.String(attrAnchor); anchor != "" {
		output.WriteString(fmt.Sprintf("### %s {#%s}\n\n", title, anchor))
	} else {
		output.WriteString(fmt.Sprintf("### %s\n\n", title))
	}

	if meta := metadataLine(store); meta != "" {
		output.WriteString(meta)
		output.WriteString("\n\n")
	}

	items := store.Items(attrItems)
	for _, item := range items {
		if item.Value != "" {
			output.WriteString(fmt.Sprintf("- %s — %s\n", item.Label, item.Value))
		} else {
			output.WriteString(fmt.Sprintf("- %s\n", item.Label))
		}
	}
	if len(items) > 0 {
		output.WriteString("\n")
	}
}

func metadataLine(store *attrs.Store) string {
	var parts []string
	if layout := store.String(attrLayout); layout != "" {
		parts = append(parts, "layout: "+layout)
	}
	if text := store.String(attrTextColor); text != "" {
		parts = append(parts, "text: "+text)
	}
	if background := store.String(attrBackground); background != "" {
		parts = append(parts, "background: "+background)
	}
	if len(parts) == 0 {
		return ""
	}
	return "_" + strings.Join(parts, " · ") + "_"
}

func typeHeading(blockType string) string {
	switch blockType {
	case "section":
		return "Sections"
	case "":
		return "Blocks"
	default:
		return strings.ToUpper(blockType[:1]) + blockType[1:] + "s"
	}
}

// WriteDocumentFile writes the composed document to the output file.
func WriteDocumentFile(content string, outputPath string) error {
	if outputPath == "" {
		outputPath = DefaultOutputFile
	}

	if err := files.WriteFile(outputPath, content); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
