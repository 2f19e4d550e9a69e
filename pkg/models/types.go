package models

import "time"

// RepeaterItem is one row in a repeated list attribute. IDs are assigned
// monotonically (max existing + 1) and never reused after removal.
type RepeaterItem struct {
	ID        int    `yaml:"id"`
	Label     string `yaml:"label"`
	Value     string `yaml:"value"`
	Collapsed bool   `yaml:"collapsed"`
}

// Block is a single editable document block. Attributes holds every
// control-backed value, keyed by attribute name.
type Block struct {
	Name       string         `yaml:"name"`
	Type       string         `yaml:"type"`
	Path       string         `yaml:"-"`
	Attributes map[string]any `yaml:"attributes"`
	Modified   time.Time      `yaml:"-"`
}

// ToggleOption is one choice in a toggle group.
type ToggleOption struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// NamedColor is a palette entry in the color picker.
type NamedColor struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// ColorTab identifies one color dimension a block supports (e.g. text,
// background). The picker derives its tab row from these.
type ColorTab struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}
