package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	catalogPath  string
	settingsPath string
	batchName    string
	singleURL    string
	limit        int
	offset       int
	dryRun       bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate source HTML pages into block-table markdown",
	Long: `Reads a JSON catalog of URL batches, fetches each page, parses it with the
template bound to its batch, and writes one block-table markdown file per
URL. Per-URL failures are recorded in the run report and never stop a run.`,
	Run: func(cmd *cobra.Command, args []string) {
		if batchName == "" && singleURL == "" {
			printUsage(cmd)
			return
		}

		settings, err := LoadSettings(settingsPath)
		if err != nil {
			log.Fatalf("Settings error: %v", err)
		}

		catalog, err := LoadCatalog(catalogPath)
		if err != nil {
			log.Fatalf("%v", err)
		}

		sel := Selection{URL: singleURL, Batch: batchName, Offset: offset, Limit: limit}
		migrator := NewMigrator(settings, dryRun, verbose)

		report, err := migrator.Run(catalog, sel)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if err := migrator.WriteReport(report); err != nil {
			log.Printf("Warning: %v", err)
		}
		PrintSummary(report)
	},
}

// printUsage shows the flag surface plus the catalog's batches. Exits 0 by
// returning normally.
func printUsage(cmd *cobra.Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println(cmd.UsageString())

	catalog, err := LoadCatalog(catalogPath)
	if err != nil {
		fmt.Printf("No batches available (%v)\n", err)
		return
	}

	fmt.Println("Available batches:")
	for _, name := range catalog.BatchNames() {
		batch := catalog.Batches[name]
		fmt.Printf("  %-24s %-20s %d URL(s)\n", name, batch.Template, len(batch.URLs))
	}
	fmt.Println("  all")
}

var compileCmd = &cobra.Command{
	Use:   "compile <file-or-directory>",
	Short: "Compile block-table markdown into HTML previews",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := compilePath(args[0]); err != nil {
			log.Fatalf("Compile failed: %v", err)
		}
	},
}

// compilePath compiles one markdown file, or every .md under a directory,
// into sibling .html preview files.
func compilePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return compileFile(path)
	}

	return filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Continue on errors
		}
		if !d.IsDir() && strings.HasSuffix(p, ".md") {
			if err := compileFile(p); err != nil {
				log.Printf("✗ %s: %v", p, err)
			}
		}
		return nil
	})
}

func compileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fragment := Compile(string(content))
	outPath := strings.TrimSuffix(path, ".md") + ".html"
	if err := os.WriteFile(outPath, []byte(previewPage(path, fragment)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Printf("✓ %s → %s", path, outPath)
	return nil
}

// previewPage wraps a compiled fragment in a minimal browsable page.
func previewPage(name, fragment string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<main>
%s
</main>
</body>
</html>
`, filepath.Base(name), fragment)
}

func init() {
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "catalog.json", "Path to the migration catalog JSON file")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to a settings YAML file (embedded defaults otherwise)")
	rootCmd.Flags().StringVar(&batchName, "batch", "", "Batch name from the catalog, or 'all'")
	rootCmd.Flags().StringVar(&singleURL, "url", "", "Migrate a single URL (template inferred from the catalog)")
	rootCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of URLs to process (0 = unbounded)")
	rootCmd.Flags().IntVar(&offset, "offset", 0, "Number of URLs to skip before processing")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Fetch and parse but skip the final file write")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log each pipeline step per URL")

	rootCmd.AddCommand(compileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
