package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the portfolio as a static website",
	Long:  `Renders the portfolio page and copies every indexed image into a self-contained static site. The exported page tracks scrolling in the browser.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	lib := assets.NewLibrary(libraryOptions(cfg), logger)

	generator := site.NewGenerator(renderer, lib, outputDir, progress.NewReporter(), logger)
	count, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d images)\n", outputDir, count)
	return nil
}
