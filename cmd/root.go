package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/deploymenttheory/go-file-compressor/internal/common/fsutil"
	"github.com/deploymenttheory/go-file-compressor/internal/compress"
	"github.com/deploymenttheory/go-file-compressor/internal/config"
	"github.com/deploymenttheory/go-file-compressor/internal/logger"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile          string
	compressionLevel string
	outputFormat     string
	quiet            bool
)

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "go-file-compressor <source> <target>",
	Short: "Compress a file into a gzip container",
	Long: `go-file-compressor reads a source file and writes a compressed copy,
reporting the source size, compressed size, compression ratio and
elapsed time. A progress bar tracks the bytes consumed unless --quiet
is given.

The default output is a standard gzip stream readable by any gzip
decompressor; zstd, xz and bzip2 containers are also supported via
--format.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CLI flags can override config settings
		if cmd.Flags().Changed("debug") {
			debug, _ := cmd.Flags().GetBool("debug")
			config.Instance.Debug = debug
		}

		if cmd.Flags().Changed("log-format") {
			logFormat, _ := cmd.Flags().GetString("log-format")
			config.Instance.LogFormat = logFormat
		}

		// If config file was explicitly specified via flag, reload
		if cmd.Flags().Changed("config") && cfgFile != "" {
			// Only log an error, don't exit, as the config may still be usable
			if err := config.Reload(cfgFile); err != nil {
				logger.LogError("Error loading config file", err, map[string]interface{}{
					"config_file": cfgFile,
				})
			}
		}
	},
	RunE: runCompress,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errLabel := color.New(color.FgHiRed, color.Bold).Sprint("Error:")
		fmt.Fprintf(os.Stderr, "\n%s %v\n", errLabel, err)
		logger.Sync()
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")

	// Debug flag
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Log format flag
	rootCmd.PersistentFlags().String("log-format", "", "Log format: json or human")

	// Compression flags
	rootCmd.Flags().StringVarP(&compressionLevel, "compression", "c", "", "Compression level (fast, default, best)")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format (gzip, zstd, xz, bzip2)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress bar")

	// Bind flags to viper settings
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("compression.level", rootCmd.Flags().Lookup("compression"))
	viper.BindPFlag("compression.format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))

	// Add version command
	rootCmd.AddCommand(versionCmd)
}

// runCompress builds the job from flags and config and executes it
func runCompress(cmd *cobra.Command, args []string) error {
	source, target := args[0], args[1]

	levelName := resolveLevelName()
	level := compress.ParseLevel(levelName)
	if string(level) != levelName {
		logger.LogDebug("Unrecognized compression level, using default", map[string]interface{}{
			"requested": levelName,
		})
	}

	format, err := compress.ParseFormat(resolveFormatName())
	if err != nil {
		return err
	}

	banner := color.New(color.FgHiGreen, color.Bold)
	banner.Fprintln(cmd.OutOrStdout(), "\nFile Compression Utility")
	color.New(color.FgHiGreen).Fprintln(cmd.OutOrStdout(), "========================")

	job := compress.Job{
		SourcePath: source,
		TargetPath: target,
		Level:      level,
		Format:     format,
	}

	var bar *progressbar.ProgressBar
	if !resolveQuiet() {
		// If the source can't be sized the bar is skipped; Run reports
		// the real error with the right type
		if size, sizeErr := fsutil.FileSize(source); sizeErr == nil {
			bar = progressbar.DefaultBytes(size, "compressing")
			job.Progress = func(consumed int64) {
				_ = bar.Set64(consumed)
			}
		}
	}

	stats, err := compress.Run(job)
	if err != nil {
		logger.LogError("Compression failed", err, map[string]interface{}{
			"source": source,
			"target": target,
		})
		return err
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(cmd.OutOrStdout())
	}

	printSummary(cmd.OutOrStdout(), stats)
	return nil
}

// printSummary renders the colored summary block
func printSummary(w io.Writer, stats compress.Stats) {
	header := color.New(color.FgHiBlue, color.Bold)
	label := color.New(color.FgHiYellow)

	fmt.Fprintf(w, "\n%s\n", header.Sprint("Compression Summary:"))
	fmt.Fprintf(w, "%s: %s\n", label.Sprint("Source file size"), stats.SourceMB())
	fmt.Fprintf(w, "%s: %s\n", label.Sprint("Compressed size"), stats.TargetMB())
	fmt.Fprintf(w, "%s: %s\n", label.Sprint("Compression ratio"), stats.RatioPercent())
	fmt.Fprintf(w, "%s: %s\n", label.Sprint("Time elapsed"), stats.ElapsedString())
	fmt.Fprintf(w, "\n%s\n\n", color.New(color.FgHiGreen, color.Bold).Sprint("Compression completed successfully!"))
}

// resolveLevelName prefers the CLI flag over the configured default
func resolveLevelName() string {
	if compressionLevel != "" {
		return compressionLevel
	}
	return config.Instance.Compression.Level
}

// resolveFormatName prefers the CLI flag over the configured default
func resolveFormatName() string {
	if outputFormat != "" {
		return outputFormat
	}
	return config.Instance.Compression.Format
}

func resolveQuiet() bool {
	return quiet || config.Instance.Quiet
}

// versionCmd shows the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("go-file-compressor v2.0.0")
	},
}
