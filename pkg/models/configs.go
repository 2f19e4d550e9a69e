package models

import "github.com/blockpad/blockpad-cli/pkg/condition"

// RepeaterConfig configures a repeater control instance.
//
// PreventEmpty is a tri-state so that the zero value of the struct keeps the
// default policy (removal of the last item is blocked). Set it explicitly to
// false to allow emptying the list.
type RepeaterConfig struct {
	Attribute     string
	Label         string
	PreventEmpty  *bool
	Fixed         bool   // hides the add action entirely
	AddButtonText string // overrides the default add label
}

// PreventEmptyEnabled resolves the tri-state against the default.
func (c RepeaterConfig) PreventEmptyEnabled() bool {
	if c.PreventEmpty == nil {
		return true
	}
	return *c.PreventEmpty
}

// TextConfig configures a text control instance.
type TextConfig struct {
	Attribute    string
	Label        string
	Placeholder  string
	DisabledWhen *condition.Rule
}

// ToggleConfig configures a toggle group control instance.
type ToggleConfig struct {
	Attribute    string
	Label        string
	Options      []ToggleOption
	DisabledWhen *condition.Rule
}

// ColorConfig configures a color picker control instance. Each tab edits its
// own attribute (the tab key), so a block supporting text and background
// colors yields a two-tab picker.
type ColorConfig struct {
	Label   string
	Tabs    []ColorTab
	Palette []NamedColor
}
