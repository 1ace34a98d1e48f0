// Package cli implements the gfshard command-line interface: a thin
// Cobra boundary over the rs and sss packages. It owns process-level
// concerns (config loading, logging, output formatting, metrics) that the
// library packages themselves stay free of.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/gfshard/internal/config"
	"github.com/mrz1836/gfshard/internal/output"
	sherr "github.com/mrz1836/gfshard/pkg/errors"
)

var (
	homeDir      string
	outputFormat string
	verbose      bool

	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gfshard",
	Short: "Reed-Solomon erasure coding and Shamir secret sharing over GF(256)",
	Long: `gfshard splits data into recoverable shards and secrets into
recoverable shares, using systematic Reed-Solomon erasure coding and
Shamir secret sharing, both over GF(256).

Example:
  gfshard rs encode --in data.bin --out-dir ./shards --data 8 --parity 4
  gfshard rs decode --shards-dir ./shards --out recovered.bin
  gfshard sss split --secret-file secret.bin --out-dir ./shares --threshold 3 --shares 5
  gfshard sss reconstruct --shares-dir ./shares --out secret.bin`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initGlobals(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// BuildInfo carries version metadata injected at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

//nolint:gochecknoglobals // Version info set at build time via ldflags
var buildInfo BuildInfo

// Execute runs the root command with the given build metadata.
func Execute(info BuildInfo) error {
	buildInfo = info
	err := rootCmd.Execute()
	if err != nil {
		formatErr(err)
		return err
	}
	return nil
}

// ExitCode returns the appropriate process exit code for an error
// returned from Execute.
func ExitCode(err error) int {
	return sherr.ExitCode(err)
}

func formatErr(err error) {
	format := output.FormatText
	if formatter != nil {
		format = formatter.Format()
	}
	if fmtErr := output.FormatError(os.Stderr, err, format); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (formatting failed: %v)\n", err, fmtErr)
	}
}

// initGlobals loads configuration, applies environment and flag
// overrides, and constructs the logger and formatter shared by every
// subcommand.
func initGlobals(_ *cobra.Command) error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	configPath := config.Path(home)
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.Defaults()
			cfg.Home = home
		} else {
			output.Warnf("failed to load config: %v", err)
			cfg = config.Defaults()
			cfg.Home = home
		}
	}

	config.ApplyEnvironment(cfg)

	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	if strings.HasPrefix(cfg.Home, "~/") {
		if userHome, homeErr := os.UserHomeDir(); homeErr == nil {
			cfg.Home = filepath.Join(userHome, cfg.Home[2:])
		}
	}

	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		logger = config.NullLogger()
	}

	explicitFormat := output.ParseFormat(outputFormat)
	detectedFormat := output.DetectFormat(os.Stdout, explicitFormat)
	formatter = output.NewFormatter(detectedFormat, os.Stdout)

	return nil
}

func cleanup() {
	if logger != nil {
		if closeErr := logger.Close(); closeErr != nil {
			output.Warnf("failed to close logger: %v", closeErr)
		}
	}
}

// readAllStdin reads all of stdin, for commands that accept a secret or
// file piped in rather than passed by path.
func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

// out is a helper for CLI output that ignores write errors, the standard
// pattern for CLI tools writing to stdout/stderr.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is outwith a trailing newline.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		if formatter != nil && formatter.Format() == output.FormatJSON {
			outln(w, "{")
			out(w, `  "version": "%s",`+"\n", buildInfo.Version)
			out(w, `  "commit": "%s",`+"\n", buildInfo.Commit)
			out(w, `  "date": "%s"`+"\n", buildInfo.Date)
			outln(w, "}")
		} else {
			out(w, "gfshard version %s\n", buildInfo.Version)
			out(w, "  commit: %s\n", buildInfo.Commit)
			out(w, "  built:  %s\n", buildInfo.Date)
		}
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "gfshard data directory (default: ~/.gfshard)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
