package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/blockpad/blockpad-cli/cmd/commands"
	"github.com/blockpad/blockpad-cli/pkg/examples"
	"github.com/blockpad/blockpad-cli/pkg/files"
	"github.com/blockpad/blockpad-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "blockpad",
	Short: "Terminal-based block editor with an inspector for block attributes",
	Long:  `Blockpad is a terminal-based block editor. Blocks live as plain YAML documents, and the TUI inspector edits their attributes through form controls: text inputs, toggle groups, color pickers and reorderable item lists.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .blockpad directory exists
		if _, err := os.Stat(files.BlockpadDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .blockpad directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'blockpad init' first to initialize a new project.\n")
			os.Exit(1)
		}

		// Launch TUI
		app := tui.NewApp()
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initWithExamples bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Blockpad project",
	Long:  `Creates the .blockpad folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Blockpad project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .blockpad folder structure")

		if initWithExamples {
			installed := 0
			for _, set := range examples.GetExamples("all") {
				n, err := examples.InstallSet(set, false)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: Failed to install starter blocks: %v\n", err)
					os.Exit(1)
				}
				installed += n
			}
			fmt.Printf("✓ Installed %d starter block(s)\n", installed)
		}

		fmt.Println("✓ You can now create blocks and edit their attributes!")
		fmt.Println("\nRun 'blockpad' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Blockpad",
	Long:  `Display the current version of the Blockpad CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Blockpad version %s\n", version)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initWithExamples, "examples", false, "Seed the project with starter blocks")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
