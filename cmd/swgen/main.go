package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/swgen-go/internal/app"
	"github.com/quantmind-br/swgen-go/internal/config"
	"github.com/quantmind-br/swgen-go/internal/output"
	"github.com/quantmind-br/swgen-go/internal/utils"
	"github.com/quantmind-br/swgen-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swgen",
	Short: "Generate a service worker and precache manifest for a build",
	Long: `Swgen derives a content-addressed precache manifest from a finished
build directory, resolves the runtime imports the worker needs, and writes
the generated service worker plus its versioned manifest artifact back into
the build output.`,
	Version: version.Short(),
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./swgen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	generateCmd.Flags().StringP("dir", "d", ".", "Build output directory to scan")
	generateCmd.Flags().String("public-path", "", "URL prefix for all embedded references")
	generateCmd.Flags().String("sw-dest", config.DefaultSWDest, "Output path of the generated worker")
	generateCmd.Flags().String("imports-dir", config.DefaultImportsDirectory, "Subdirectory for manifest artifacts")
	generateCmd.Flags().String("import-workbox-from", config.DefaultImportWorkboxFrom, "Runtime import source: disabled, cdn, local, or a bundle name")
	generateCmd.Flags().StringSlice("import-scripts", nil, "Extra script URLs the worker imports, in order")
	generateCmd.Flags().StringSlice("glob-patterns", nil, "Globs selecting files to scan (default **/*)")
	generateCmd.Flags().StringSlice("glob-ignores", nil, "Globs for files to skip while scanning")
	generateCmd.Flags().StringSlice("exclude", nil, "Globs for assets to leave out of the manifest")
	generateCmd.Flags().Bool("dry-run", false, "Simulate without writing files")

	_ = viper.BindPFlag("sw_dest", generateCmd.Flags().Lookup("sw-dest"))
	_ = viper.BindPFlag("imports_directory", generateCmd.Flags().Lookup("imports-dir"))
	_ = viper.BindPFlag("import_workbox_from", generateCmd.Flags().Lookup("import-workbox-from"))
	_ = viper.BindPFlag("import_scripts", generateCmd.Flags().Lookup("import-scripts"))
	_ = viper.BindPFlag("glob_patterns", generateCmd.Flags().Lookup("glob-patterns"))
	_ = viper.BindPFlag("glob_ignores", generateCmd.Flags().Lookup("glob-ignores"))
	_ = viper.BindPFlag("exclude", generateCmd.Flags().Lookup("exclude"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan a build directory and emit the worker and manifest",
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir, _ := cmd.Flags().GetString("dir")
	publicPath, _ := cmd.Flags().GetString("public-path")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	comp, err := scanBuildDir(ctx, dir, publicPath, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to scan build directory: %w", err)
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:  cfg,
		Logger:  log,
		Verbose: verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	if err := orchestrator.Emit(ctx, comp); err != nil {
		return err
	}

	for _, warning := range comp.Warnings {
		log.Warn().Msg(warning)
	}

	writer := output.NewWriter(output.WriterOptions{
		BaseDir: dir,
		DryRun:  dryRun,
		Logger:  log,
	})
	if err := writer.Flush(ctx, comp); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info().
		Int("emitted", len(comp.EmittedAssets())).
		Str("sw_dest", cfg.SWDest).
		Msg("Generation completed")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
