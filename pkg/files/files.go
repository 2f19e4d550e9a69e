// Package files is the persistence layer for block documents and settings.
// Everything lives as plain YAML under the .blockpad directory so documents
// stay diffable and editable outside the TUI.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blockpad/blockpad-cli/pkg/models"
)

const (
	BlockpadDir  = ".blockpad"
	BlocksDir    = "blocks"
	SettingsFile = "settings.yaml"
)

func InitProjectStructure() error {
	dirs := []string{
		BlockpadDir,
		filepath.Join(BlockpadDir, BlocksDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ReadBlock loads a block document. path is relative to the blocks directory,
// e.g. "hero.yaml".
func ReadBlock(path string) (*models.Block, error) {
	absPath := filepath.Join(BlockpadDir, BlocksDir, path)

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read block %s: %w", path, err)
	}

	var block models.Block
	if err := yaml.Unmarshal(content, &block); err != nil {
		return nil, fmt.Errorf("failed to parse block %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat block %s: %w", path, err)
	}

	block.Path = path
	block.Modified = info.ModTime()

	if block.Attributes == nil {
		block.Attributes = make(map[string]any)
	}

	return &block, nil
}

// WriteBlock persists a block document. The block's path is derived from its
// name when not already set.
func WriteBlock(block *models.Block) error {
	if block.Path == "" {
		block.Path = Slugify(block.Name) + ".yaml"
	}
	absPath := filepath.Join(BlockpadDir, BlocksDir, block.Path)

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return fmt.Errorf("failed to create blocks directory: %w", err)
	}

	data, err := yaml.Marshal(block)
	if err != nil {
		return fmt.Errorf("failed to marshal block %s: %w", block.Name, err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write block %s: %w", block.Path, err)
	}

	return nil
}

// ListBlocks returns the filenames of all block documents, sorted.
func ListBlocks() ([]string, error) {
	dir := filepath.Join(BlockpadDir, BlocksDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list blocks: %w", err)
	}

	var blocks []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			blocks = append(blocks, name)
		}
	}

	sort.Strings(blocks)
	return blocks, nil
}

// WriteFile writes exported output relative to the project root, outside the
// .blockpad directory.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func DeleteBlock(path string) error {
	absPath := filepath.Join(BlockpadDir, BlocksDir, path)
	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("failed to delete block %s: %w", path, err)
	}
	return nil
}

// Slugify converts a user-provided name into a safe filename.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")

	var clean strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			clean.WriteRune(r)
		}
	}

	result := strings.Trim(clean.String(), "-")
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	if result == "" {
		result = "untitled"
	}

	return result
}
