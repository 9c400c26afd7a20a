package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdrop/internal/level"
	"github.com/vovakirdan/blockdrop/internal/registry"
)

var flagListDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels and, with --dir, every valid level file
(.json, .yaml, .yml) found under a directory.`,
	Run: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListDir, "dir", "", "Directory to search for level files")
}

type levelRow struct {
	ID     string
	Title  string
	Size   string
	Source string
}

func runList(_ *cobra.Command, _ []string) {
	var rows []levelRow
	for _, info := range registry.List() {
		lvl, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		rows = append(rows, levelRow{
			ID:     info.ID,
			Title:  info.Title,
			Size:   fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			Source: "built-in",
		})
	}

	if flagListDir != "" {
		levels, err := level.NewLoader(flagListDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, lvl := range levels {
			rows = append(rows, levelRow{
				ID:     lvl.ID,
				Title:  lvl.Title(),
				Size:   fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
				Source: lvl.FilePath,
			})
		}
	}

	if len(rows) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, r := range rows {
		maxIDLen = max(maxIDLen, len(r.ID))
		maxTitleLen = max(maxTitleLen, len(r.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %-6s  %s\n", maxIDLen, r.ID, maxTitleLen, r.Title, r.Size, r.Source)
	}

	fmt.Println()
	fmt.Println("Run 'blockdrop replay <id>' to watch a level.")
}
