// Package cli implements the chartgeom command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/buildinfo"
	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/observability"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chartgeom"

	// envRedisURL selects a shared Redis artifact cache.
	envRedisURL = "CHARTGEOM_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cacheDir string
	redisURL string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Chartgeom turns declarative bar charts into drawable geometry",
		Long:         `Chartgeom reads chart documents (data, encodings, scales and a coordinate system) and renders interval marks as SVG, PNG or JSON in Cartesian, transposed or polar coordinates.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.Logger.GetLevel() <= log.DebugLevel {
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")
	root.PersistentFlags().StringVar(&c.redisURL, "redis-url", os.Getenv(envRedisURL), "use a Redis artifact cache (env "+envRedisURL+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.CachePrefix())
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if c.redisURL != "" {
		c.Logger.Debug("using redis cache")
		return cache.NewRedisCache(ctx, cache.RedisConfig{URL: c.redisURL})
	}
	dir, err := c.artifactDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// artifactDir returns the file cache directory: the --cache-dir flag or
// the per-user cache directory.
func (c *CLI) artifactDir() (string, error) {
	if c.cacheDir != "" {
		return c.cacheDir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
