package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/teranos/smufl/config"
	"github.com/teranos/smufl/errors"
	"github.com/teranos/smufl/glyphgen/pipeline"
	"github.com/teranos/smufl/logger"
	"github.com/teranos/smufl/version"
)

var (
	configPath string
	jsonLogs   bool
	verbosity  int
)

// pathFlags are bound over the matching glyphgen.* config keys
var pathFlags = map[string]string{
	"metadata": "glyphgen.metadata",
	"target":   "glyphgen.target",
	"docs":     "glyphgen.docs",
}

// GlyphgenCmd regenerates the catalogue and fails if it was out of date
var GlyphgenCmd = &cobra.Command{
	Use:   "glyphgen",
	Short: "Generate the SMuFL glyph catalogue from glyphnames.json",
	Long: `Generate the SMuFL glyph catalogue from glyphnames.json.

The generated Go code lives between the marker lines of the target file;
everything outside them is left untouched. The markdown glyph table is
regenerated as a whole.

If the committed catalogue differs from the generated one, the files are
rewritten and the command still fails, so CI flags a stale catalogue while a
local run leaves a fixed tree behind.

Exit codes:
  0 - Catalogue is up to date
  1 - Catalogue was out of date (files rewritten)
  2 - Error during generation

Examples:
  glyphgen                                 # Use glyphgen.toml found upwards
  glyphgen --metadata glyphnames.json      # Override the metadata file
  glyphgen check                           # Compare only, print a diff`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, true)
	},
}

// CheckCmd compares without writing
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated catalogue is up to date",
	Long: `Check if the committed catalogue matches the glyph metadata.

Nothing is written; differences are shown as a unified diff.

Exit codes:
  0 - Catalogue is up to date
  1 - Catalogue is out of date (diff shown)
  2 - Error during check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, false)
	},
}

// ConfigCmd prints the effective configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	RunE:  runConfig,
}

// WatchCmd regenerates on every metadata change
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the catalogue whenever the metadata file changes",
	Long: `Run glyphgen once, then again every time the metadata file is saved.

Generation errors are reported and watching continues. Stop with Ctrl+C.`,
	RunE: runWatch,
}

// VersionCmd prints build information
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show glyphgen version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		if jsonLogs {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to format version info")
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		fmt.Fprintln(out, info.String())
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		return nil
	},
}

func init() {
	flags := GlyphgenCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default: "+config.FileName+" found upwards from the working directory)")
	flags.String("metadata", "", "SMuFL glyphnames.json file")
	flags.String("target", "", "Go file holding the generated region")
	flags.String("docs", "", "Generated markdown glyph table")
	flags.BoolVar(&jsonLogs, "json", false, "Log as JSON (version: print as JSON)")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v, -vv)")

	GlyphgenCmd.AddCommand(CheckCmd)
	GlyphgenCmd.AddCommand(ConfigCmd)
	GlyphgenCmd.AddCommand(VersionCmd)
	GlyphgenCmd.AddCommand(WatchCmd)
}

func initLogger(cmd *cobra.Command, args []string) error {
	return logger.Initialize(jsonLogs, verbosity)
}

// loadConfig merges defaults, the config file and CLI flags.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine working directory")
		}
		path = config.Find(wd)
	}

	v, err := config.New(path)
	if err != nil {
		return nil, err
	}

	flags := GlyphgenCmd.PersistentFlags()
	for name, key := range pathFlags {
		flag := flags.Lookup(name)
		// Flag paths are relative to the working directory, not the config file
		if flag.Changed && flag.Value.String() != "" {
			abs, err := filepath.Abs(flag.Value.String())
			if err != nil {
				return nil, errors.Wrapf(err, "invalid --%s", name)
			}
			if err := flag.Value.Set(abs); err != nil {
				return nil, errors.Wrapf(err, "invalid --%s", name)
			}
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "failed to bind --%s", name)
		}
	}

	baseDir := ""
	if path != "" {
		baseDir = filepath.Dir(path)
	}
	cfg, err := config.Load(v, baseDir)
	if err != nil {
		return nil, errors.WithHint(err, "check "+config.FileName+" or the command-line flags")
	}

	logger.Logger.Debugw("Loaded config",
		logger.FieldFile, path,
		logger.FieldMetadata, cfg.Glyphgen.Metadata,
		logger.FieldTarget, cfg.Glyphgen.Target)
	return cfg, nil
}

func runGenerate(cmd *cobra.Command, write bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report, err := pipeline.Run(afero.NewOsFs(), pipeline.OptionsFromConfig(cfg, write))
	if report != nil {
		printReport(cmd, report)
	}
	if err != nil {
		return err
	}
	return report.Err()
}

func printReport(cmd *cobra.Command, report *pipeline.Report) {
	if report.UpToDate() {
		pterm.Success.Printf("Catalogue is up to date (%d glyphs)\n", report.Glyphs)
		return
	}

	for _, res := range report.Results {
		switch {
		case res.UpToDate:
			pterm.Printf("  %s %s\n", pterm.Green("✓"), res.Path)
		case res.Written:
			pterm.Printf("  %s %s (regenerated)\n", pterm.Yellow("✗"), res.Path)
		default:
			pterm.Printf("  %s %s\n", pterm.Red("✗"), res.Path)
			fmt.Fprint(cmd.OutOrStdout(), res.Diff)
		}
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := pipeline.NewWatcher(afero.NewOsFs(), pipeline.OptionsFromConfig(cfg, true), func(report *pipeline.Report, err error) {
		if report != nil {
			printReport(cmd, report)
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			for _, hint := range errors.GetAllHints(err) {
				pterm.Info.Println(hint)
			}
		}
	})
	if err != nil {
		return err
	}

	pterm.Info.Printf("Watching %s (Ctrl+C to stop)\n", cfg.Glyphgen.Metadata)
	return w.Watch(ctx)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out, err := cfg.Encode()
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
