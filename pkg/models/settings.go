package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Editor EditorSettings `yaml:"editor"`
	Export ExportSettings `yaml:"export"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowHelp    bool   `yaml:"show_help"`
	AccentColor string `yaml:"accent_color"` // ANSI 256 color code
}

// EditorSettings controls inspector defaults
type EditorSettings struct {
	DefaultItemLabel string `yaml:"default_item_label"`
	DefaultAddLabel  string `yaml:"default_add_label"`
}

// ExportSettings controls how blocks are composed into a document
type ExportSettings struct {
	ShowHeadings bool   `yaml:"show_headings"`
	OutputFile   string `yaml:"output_file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			ShowHelp:    true,
			AccentColor: "170",
		},
		Editor: EditorSettings{
			DefaultItemLabel: "Item",
			DefaultAddLabel:  "Add item",
		},
		Export: ExportSettings{
			ShowHeadings: true,
			OutputFile:   "BLOCKPAD.md",
		},
	}
}
