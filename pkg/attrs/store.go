// Package attrs models the host-owned attribute map that every control reads
// from and writes to. Controls never cache attribute state: each render reads
// the current value, each edit replaces the value wholesale through Set, and
// Commit hands the block to the persistence sink.
package attrs

import (
	"fmt"

	"github.com/blockpad/blockpad-cli/pkg/models"
)

// CommitFunc persists a block after its attributes changed.
type CommitFunc func(*models.Block) error

// Store is the single write path to a block's attributes.
type Store struct {
	block  *models.Block
	commit CommitFunc
	dirty  bool
}

// NewStore wraps a block. commit may be nil for read-only consumers.
func NewStore(block *models.Block, commit CommitFunc) *Store {
	if block.Attributes == nil {
		block.Attributes = make(map[string]any)
	}
	return &Store{block: block, commit: commit}
}

// Block returns the wrapped block.
func (s *Store) Block() *models.Block {
	return s.block
}

// Get returns the raw attribute value, or nil when absent.
func (s *Store) Get(key string) any {
	return s.block.Attributes[key]
}

// String returns the attribute as a string, or "" when absent or mistyped.
func (s *Store) String(key string) string {
	if v, ok := s.block.Attributes[key].(string); ok {
		return v
	}
	return ""
}

// Bool returns the attribute as a bool, or false when absent or mistyped.
func (s *Store) Bool(key string) bool {
	if v, ok := s.block.Attributes[key].(bool); ok {
		return v
	}
	return false
}

// Items returns the attribute as a repeater item list. Values freshly set by
// a control are already typed; values loaded from a YAML document arrive as
// generic maps and are decoded field by field. Anything unrecognizable yields
// an empty list.
func (s *Store) Items(key string) []models.RepeaterItem {
	switch v := s.block.Attributes[key].(type) {
	case []models.RepeaterItem:
		return v
	case []any:
		items := make([]models.RepeaterItem, 0, len(v))
		for _, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			items = append(items, decodeItem(m))
		}
		return items
	default:
		return nil
	}
}

func decodeItem(m map[string]any) models.RepeaterItem {
	item := models.RepeaterItem{}
	if id, ok := m["id"].(int); ok {
		item.ID = id
	}
	if label, ok := m["label"].(string); ok {
		item.Label = label
	}
	if value, ok := m["value"].(string); ok {
		item.Value = value
	}
	if collapsed, ok := m["collapsed"].(bool); ok {
		item.Collapsed = collapsed
	}
	return item
}

// Set replaces the attribute value wholesale and marks the store dirty.
func (s *Store) Set(key string, value any) {
	s.block.Attributes[key] = value
	s.dirty = true
}

// Dirty reports whether the store holds uncommitted changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Commit hands the block to the persistence sink and clears the dirty flag.
func (s *Store) Commit() error {
	if s.commit == nil {
		return fmt.Errorf("store has no commit sink")
	}
	if err := s.commit(s.block); err != nil {
		return fmt.Errorf("failed to commit attributes for %s: %w", s.block.Name, err)
	}
	s.dirty = false
	return nil
}
