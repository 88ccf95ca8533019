package cmd

import (
	"fmt"
	"os"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/courseql/courseql/internal/config"
	"github.com/courseql/courseql/internal/course"
	"github.com/courseql/courseql/internal/graph"
	"github.com/courseql/courseql/internal/logging"
	"github.com/courseql/courseql/internal/search"
)

var (
	configPath string
	logLevel   string
)

var (
	cfg      *config.Config
	store    *course.Store
	index    *search.Index
	resolver *graph.Resolver
	schema   *graphql.Schema
)

var rootCmd = &cobra.Command{
	Use:   "courseql",
	Short: "A GraphQL server for an in-memory course catalog",
	Long: `courseql serves a small course catalog over GraphQL.

Courses can be fetched by id, listed (optionally filtered by topic), searched,
and have their topic updated. The catalog lives in memory for the lifetime of
the process and is seeded at startup.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip core initialization for init command
		if cmd.Name() == "init" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if logLevel != "" {
			loaded.Log.Level = logLevel
		}
		if err := loaded.Validate(); err != nil {
			return err
		}

		logging.Init(os.Stderr, loaded.Log.Level, !term.IsTerminal(int(os.Stderr.Fd())))

		return initCore(loaded)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if index != nil {
			return index.Close()
		}
		return nil
	},
}

// initCore builds the store, search index, resolver and schema from c.
func initCore(c *config.Config) error {
	seed := course.Seed()
	if c.Data.SeedFile != "" {
		var err error
		seed, err = course.LoadSeedFile(c.Data.SeedFile)
		if err != nil {
			return fmt.Errorf("loading seed file: %w", err)
		}
	}

	idx, err := search.NewIndex()
	if err != nil {
		return fmt.Errorf("creating search index: %w", err)
	}
	if err := idx.IndexCourses(seed); err != nil {
		idx.Close()
		return fmt.Errorf("indexing courses: %w", err)
	}

	st := course.NewStore(seed)
	r := graph.NewResolver(st, idx)

	s, err := graph.NewSchema(r, graphql.MaxDepth(c.Server.MaxDepth))
	if err != nil {
		idx.Close()
		return fmt.Errorf("parsing schema: %w", err)
	}

	cfg, store, index, resolver, schema = c, st, idx, r, s
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.ConfigFile, "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
