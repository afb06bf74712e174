package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
		Long: `Manage the on-disk artifact cache. Entries expire after a week; prune
removes expired ones, clear removes everything. A Redis cache set with
--redis-url manages its own expiry and is not touched by these commands.`,
	}

	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cachePruneCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

func (c *CLI) openFileCache() (*cache.FileCache, error) {
	dir, err := c.artifactDir()
	if err != nil {
		return nil, fmt.Errorf("get cache dir: %w", err)
	}
	return cache.NewFileCache(dir)
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache size and entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.openFileCache()
			if err != nil {
				return err
			}
			st, err := fc.Stats()
			if err != nil {
				return err
			}
			printKeyValue("directory", fc.Dir())
			printKeyValue("entries", fmt.Sprint(st.Entries))
			printKeyValue("size", formatBytes(st.Bytes))
			printKeyValue("expired", fmt.Sprint(st.Expired))
			return nil
		},
	}
}

// cachePruneCommand creates the "cache prune" subcommand.
func (c *CLI) cachePruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired and unreadable entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.openFileCache()
			if err != nil {
				return err
			}
			n, err := fc.Prune()
			if err != nil {
				return err
			}
			printSuccess("Pruned %d cached entries", n)
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := c.openFileCache()
			if err != nil {
				return err
			}
			st, err := fc.Stats()
			if err != nil {
				return err
			}
			if st.Entries == 0 {
				printInfo("Cache is empty")
				return nil
			}
			if err := fc.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared %d cached entries", st.Entries)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.artifactDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// formatBytes renders n with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
