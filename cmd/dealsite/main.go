package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nointernetrex/publix-deals/pkg/export"
	"github.com/nointernetrex/publix-deals/pkg/site"
	"github.com/nointernetrex/publix-deals/pkg/watch"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dealsite",
		Short: "Weekly deals website generator",
		Long: `Dealsite reads a weekly deals Word document and generates a
self-contained static website.

It parses the document's sections (Triple Stacks, Double Stacks, BOGO Deals,
Digital Coupons) into a structured catalog and renders a single index.html
ready for GitHub Pages.`,
		Version: version,
	}

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dealsite version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("dealsite %s\n", version)
			return nil
		},
	}
}

// loadConfig resolves the effective configuration from the optional config
// file plus flag overrides.
func loadConfig(cmd *cobra.Command) (site.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg site.Config
	if configPath != "" {
		loaded, err := site.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else {
		cfg = site.DefaultConfig()
	}

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		cfg.Source = source
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output = output
	}

	return cfg, nil
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a dealsite.yaml config file")
	cmd.Flags().String("source", "", "Source document (overrides config)")
	cmd.Flags().String("output", "", "Output path (overrides config)")
}

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the website from the deals document",
		Long: `Build reads the source document, parses the deal catalog, and writes
the generated page.

Example:
  dealsite build
  dealsite build --source Publix_Final.docx --output index.html
  dealsite build --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if _, err := os.Stat(cfg.Source); os.IsNotExist(err) {
				return fmt.Errorf("source document not found: %s", cfg.Source)
			}

			fmt.Printf("Reading: %s\n", cfg.Source)

			// Stats mode reports the deal counts without writing the page.
			if statsOnly, _ := cmd.Flags().GetBool("stats"); statsOnly {
				cat, err := site.NewBuilder(cfg).Catalog()
				if err != nil {
					return err
				}
				fmt.Print(site.StatsReport(cat.Stats()))
				return nil
			}

			result, err := site.NewBuilder(cfg).Build()
			if err != nil {
				return err
			}

			fmt.Print(result.Summary())
			fmt.Println("Website generated successfully!")
			return nil
		},
	}

	addConfigFlags(cmd)
	cmd.Flags().Bool("stats", false, "Report deal counts without generating the site")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the website whenever the deals document changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			builder := site.NewBuilder(cfg)
			watcher := watch.New(builder)
			watcher.OnBuild = func(result *site.BuildResult, err error) {
				if err != nil {
					fmt.Fprintf(os.Stderr, "rebuild failed: %v\n", err)
					return
				}
				fmt.Printf("Rebuilt %s\n", result.Output)
				fmt.Print(result.Summary())
			}

			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Printf("Watching %s (Ctrl-C to stop)\n", cfg.Source)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			fmt.Println("\nStopped.")
			return nil
		},
	}

	addConfigFlags(cmd)
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the deal catalog as a shopping-list workbook",
		Long: `Export parses the deals document and writes an XLSX workbook with one
sheet per section, for printing or sharing as a shopping list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if exportPath, _ := cmd.Flags().GetString("output"); exportPath != "" {
				cfg.ExportPath = exportPath
			}

			cat, err := site.NewBuilder(cfg).Catalog()
			if err != nil {
				return err
			}

			if err := export.WriteFile(cat, cfg.ExportPath); err != nil {
				return err
			}

			stats := cat.Stats()
			fmt.Printf("Exported %d stack deals, %d BOGO deals, and %d coupons to %s\n",
				stats.TripleStacks+stats.DoubleStacks, stats.BogoDeals, stats.DigitalCoupons, cfg.ExportPath)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Path to a dealsite.yaml config file")
	cmd.Flags().String("source", "", "Source document (overrides config)")
	cmd.Flags().String("output", "", "Workbook path (overrides config)")
	return cmd
}
