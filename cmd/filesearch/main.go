// Command filesearch is the file-search skill: a Spotlight-like search
// over the local filesystem with name, extension, content, size, and
// modification-time filters. Results print as grouped text or JSON.
//
// The command always exits 0 once a search has run; a nonexistent search
// path is reported inside the output payload rather than through the exit
// code, so agent harnesses can rely on parsing stdout alone.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentkit/skills/pkg/filesearch"
	"github.com/agentkit/skills/pkg/logger"
)

// SearchConfig collects the search flags.
type SearchConfig struct {
	Name          string
	Extensions    []string
	Path          string
	Content       string
	MaxDepth      int
	ModifiedDays  int
	MinSize       int64
	MaxSize       int64
	MaxResults    int
	CaseSensitive bool
	JSON          bool
}

// NewSearchConfig returns the flag defaults.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Path:       ".",
		MaxResults: filesearch.DefaultMaxResults,
	}
}

func init() {
	viper.SetEnvPrefix("FILESEARCH")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.filesearch")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()
}

func newRootCmd() *cobra.Command {
	defaults := NewSearchConfig()

	cmd := &cobra.Command{
		Use:   "filesearch",
		Short: "Search for files on the local filesystem",
		Long: `Search for files on the local filesystem, Spotlight-style.

All filters are optional and combine as a conjunction: a file is reported
only when every configured filter matches. Matching is case-insensitive
unless --case-sensitive is given.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if level := viper.GetString("log-level"); level != "" {
				if err := logger.SetLogLevel(level); err != nil {
					return err
				}
			}
			if format := viper.GetString("log-format"); format != "" {
				logger.SetLogFormat(format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd)
		},
	}

	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-format", cmd.PersistentFlags().Lookup("log-format"))

	flags := cmd.Flags()
	flags.String("name", defaults.Name, "File name or pattern (supports wildcards * and ?)")
	flags.StringArray("extension", defaults.Extensions, "File extension to filter, leading dot included (e.g. .txt, .pdf); repeatable")
	flags.String("path", defaults.Path, "Starting directory for the search")
	flags.String("content", defaults.Content, "Search for text content within files")
	flags.Int("max-depth", defaults.MaxDepth, "Maximum directory depth to search")
	flags.Int("modified-days", defaults.ModifiedDays, "Find files modified within N days")
	flags.Int64("min-size", defaults.MinSize, "Minimum file size in bytes")
	flags.Int64("max-size", defaults.MaxSize, "Maximum file size in bytes")
	flags.Int("max-results", defaults.MaxResults, "Maximum number of results")
	flags.Bool("case-sensitive", defaults.CaseSensitive, "Enable case-sensitive matching")
	flags.Bool("json", defaults.JSON, "Output results in JSON format")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func getSearchConfigFromFlags(flags *pflag.FlagSet) *SearchConfig {
	config := NewSearchConfig()

	if v, err := flags.GetString("name"); err == nil {
		config.Name = v
	}
	if v, err := flags.GetStringArray("extension"); err == nil {
		config.Extensions = v
	}
	if v, err := flags.GetString("path"); err == nil {
		config.Path = v
	}
	if v, err := flags.GetString("content"); err == nil {
		config.Content = v
	}
	if v, err := flags.GetInt("max-depth"); err == nil {
		config.MaxDepth = v
	}
	if v, err := flags.GetInt("modified-days"); err == nil {
		config.ModifiedDays = v
	}
	if v, err := flags.GetInt64("min-size"); err == nil {
		config.MinSize = v
	}
	if v, err := flags.GetInt64("max-size"); err == nil {
		config.MaxSize = v
	}
	if v, err := flags.GetInt("max-results"); err == nil {
		config.MaxResults = v
	}
	if v, err := flags.GetBool("case-sensitive"); err == nil {
		config.CaseSensitive = v
	}
	if v, err := flags.GetBool("json"); err == nil {
		config.JSON = v
	}

	return config
}

func runSearch(cmd *cobra.Command) error {
	flags := cmd.Flags()
	config := getSearchConfigFromFlags(flags)

	criteria := filesearch.Criteria{
		Path:          config.Path,
		NamePattern:   config.Name,
		Extensions:    config.Extensions,
		Content:       config.Content,
		MaxResults:    config.MaxResults,
		CaseSensitive: config.CaseSensitive,
	}

	// Numeric filters are only constrained when their flag was actually
	// given; zero is a meaningful value for each of them.
	if flags.Changed("max-depth") {
		criteria.MaxDepth = &config.MaxDepth
	}
	if flags.Changed("modified-days") {
		criteria.ModifiedWithinDays = &config.ModifiedDays
	}
	if flags.Changed("min-size") {
		criteria.MinSize = &config.MinSize
	}
	if flags.Changed("max-size") {
		criteria.MaxSize = &config.MaxSize
	}

	result := filesearch.Search(cmd.Context(), criteria)

	if config.JSON {
		out, err := filesearch.FormatJSON(&result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), filesearch.FormatText(&result))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
