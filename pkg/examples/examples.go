// Package examples ships starter block documents that seed a new project so
// the inspector has something to edit right away.
package examples

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blockpad/blockpad-cli/pkg/files"
	"github.com/blockpad/blockpad-cli/pkg/models"
)

// BlockSet represents a collection of related starter blocks
type BlockSet struct {
	Category    string
	Name        string
	Description string
	Blocks      []SampleBlock
}

// SampleBlock represents one starter block document
type SampleBlock struct {
	Name       string
	Filename   string
	Type       string // section, note
	Attributes map[string]any
}

// GetExamples returns the starter sets for the given category
func GetExamples(category string) []BlockSet {
	switch category {
	case "landing":
		sets := getLandingExamples()
		for i := range sets {
			sets[i].Category = "landing"
		}
		return sets
	case "article":
		sets := getArticleExamples()
		for i := range sets {
			sets[i].Category = "article"
		}
		return sets
	case "all":
		var all []BlockSet
		all = append(all, GetExamples("landing")...)
		all = append(all, GetExamples("article")...)
		return all
	default:
		return []BlockSet{}
	}
}

// ErrBlockExists reports that an install target is already present.
var ErrBlockExists = errors.New("block already exists")

// InstallBlock writes a starter block into the user's .blockpad directory.
// An existing file is an error unless force is set.
func InstallBlock(sample SampleBlock, force bool) error {
	fullPath := filepath.Join(files.BlockpadDir, files.BlocksDir, sample.Filename)

	if !force {
		if _, err := os.Stat(fullPath); err == nil {
			return fmt.Errorf("%w: %s", ErrBlockExists, sample.Filename)
		}
	}

	block := &models.Block{
		Name:       sample.Name,
		Type:       sample.Type,
		Path:       sample.Filename,
		Attributes: sample.Attributes,
	}

	return files.WriteBlock(block)
}

// InstallSet installs every block of a set, skipping ones that already exist.
// Returns how many blocks were written.
func InstallSet(set BlockSet, force bool) (int, error) {
	installed := 0
	for _, sample := range set.Blocks {
		err := InstallBlock(sample, force)
		if errors.Is(err, ErrBlockExists) {
			continue
		}
		if err != nil {
			return installed, err
		}
		installed++
	}
	return installed, nil
}
