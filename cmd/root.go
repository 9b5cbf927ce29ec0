// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/AlbertUnruh/european-alternatives/internal/catalog"
	"github.com/AlbertUnruh/european-alternatives/internal/logging"
	"github.com/AlbertUnruh/european-alternatives/internal/output"
	"github.com/AlbertUnruh/european-alternatives/internal/query"
	"github.com/AlbertUnruh/european-alternatives/internal/score"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ExitError signals a non-zero exit code with an optional message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Options holds all CLI flag values.
type Options struct {
	Search         string
	Categories     []string
	Jurisdictions  []string
	Pricing        []string
	OpenSourceOnly bool
	SortBy         string
	Format         string
	Output         string
	CatalogPath    string
	Locale         string
	LogLevel       string
	ConfigFile     string
}

// NewRootCommand creates the root cobra command with all flags and
// subcommands. Running it without a subcommand lists the catalogue.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:     "euralt",
		Short:   "Browse European alternatives to US tech products",
		Version: Version,
		Long: `euralt is a catalogue of European and open-source alternatives to US tech
products. Each entry carries a 1-10 trust score derived from jurisdiction,
openness, privacy signals, self-hosting capability, and known reservations.

Usage:
  euralt --search mail --sort-by trustscore
  euralt -c email -c office --open-source-only
  euralt show proton-mail
  euralt validate`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(opts.ConfigFile); err != nil {
				return err
			}
			applyConfigDefaults(cmd.Flags(), opts)
			return logging.SetLevel(opts.LogLevel)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "Config file (default is $HOME/.euralt.yaml)")
	pf.StringVar(&opts.CatalogPath, "catalog", "", "Load the catalogue from a JSON file instead of the embedded dataset")
	pf.StringVar(&opts.Locale, "locale", "", "BCP 47 locale tag used for sorting (e.g. de, fr)")
	pf.StringVar(&opts.LogLevel, "loglevel", "info", "Set log level. Available: debug, info, warn, error, fatal")
	pf.StringVar(&opts.Format, "format", "table", "Output format: table, json")
	pf.StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")

	flags := cmd.Flags()
	flags.StringVarP(&opts.Search, "search", "s", "", "Free-text search over name, description, replaced products and tags")
	flags.StringSliceVarP(&opts.Categories, "category", "c", nil, "Only show entries in these categories")
	flags.StringSliceVarP(&opts.Jurisdictions, "jurisdiction", "j", nil, "Only show entries in these jurisdictions")
	flags.StringSliceVarP(&opts.Pricing, "pricing", "p", nil, "Only show entries with these pricing tiers: free, freemium, paid")
	flags.BoolVar(&opts.OpenSourceOnly, "open-source-only", false, "Only show open-source entries")
	flags.StringVar(&opts.SortBy, "sort-by", "", "Sort by: name, jurisdiction, category, trustscore")

	cmd.AddCommand(newShowCommand(opts))
	cmd.AddCommand(newValidateCommand(opts))

	return cmd
}

// initConfig reads the viper config file and environment overrides.
// A missing config file is not an error.
func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("determining home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".euralt")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("euralt")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}

// applyConfigDefaults fills flag values from config for flags the user did
// not set explicitly.
func applyConfigDefaults(fs *pflag.FlagSet, opts *Options) {
	applyStringDefault(fs, "format", &opts.Format)
	applyStringDefault(fs, "sort-by", &opts.SortBy)
	applyStringDefault(fs, "locale", &opts.Locale)
	applyStringDefault(fs, "loglevel", &opts.LogLevel)
	applyStringDefault(fs, "catalog", &opts.CatalogPath)
}

func applyStringDefault(fs *pflag.FlagSet, name string, dst *string) {
	f := fs.Lookup(name)
	if f == nil || f.Changed {
		return
	}
	if v := viper.GetString(name); v != "" {
		*dst = v
	}
}

// loadCatalogue returns the external catalogue when --catalog is set, the
// embedded dataset otherwise.
func loadCatalogue(opts *Options) ([]catalog.Entry, error) {
	if opts.CatalogPath != "" {
		entries, err := catalog.LoadFile(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		logging.Log.Debugf("loaded %d entries from %s", len(entries), opts.CatalogPath)
		return entries, nil
	}
	entries, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("loaded %d embedded entries", len(entries))
	return entries, nil
}

// openOutput resolves the output writer; the returned func closes it.
func openOutput(opts *Options) (io.Writer, func(), error) {
	if opts.Output != "" && opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
	return os.Stdout, func() {}, nil
}

// parseLocale turns the locale option into a collation tag. An empty or
// invalid tag falls back to the locale-neutral collation.
func parseLocale(locale string) language.Tag {
	if locale == "" {
		return language.Und
	}
	tag, err := language.Parse(locale)
	if err != nil {
		logging.Log.Warnf("invalid locale %q, using neutral collation", locale)
		return language.Und
	}
	return tag
}

// runList executes the filter-search-sort pipeline and writes the results.
func runList(opts *Options) error {
	entries, err := loadCatalogue(opts)
	if err != nil {
		return err
	}

	engine := query.New(parseLocale(opts.Locale), score.EffectiveScore)
	results := engine.Run(entries, query.Criteria{
		Search:         opts.Search,
		Categories:     opts.Categories,
		Jurisdictions:  opts.Jurisdictions,
		Pricing:        opts.Pricing,
		OpenSourceOnly: opts.OpenSourceOnly,
		SortBy:         opts.SortBy,
	})
	logging.Log.Debugf("query matched %d of %d entries", len(results), len(entries))

	w, closeOutput, err := openOutput(opts)
	if err != nil {
		return err
	}
	defer closeOutput()

	switch opts.Format {
	case "json":
		return output.WriteJSON(w, output.Scored(results))
	case "table":
		cfg := output.TableConfig{
			ShowReplaces: true,
			IsTerminal:   output.IsOutputToTerminal(w),
		}
		return output.WriteTable(w, results, cfg)
	default:
		return &ExitError{
			Code:    2,
			Message: fmt.Sprintf("unsupported output format: %s", opts.Format),
		}
	}
}
