package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/extq/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean downloaded content and library builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			libraries, _ := cmd.Flags().GetBool("libraries")
			all, _ := cmd.Flags().GetBool("all")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			opts := app.CleanOptions{
				ConfigPath: c.configPath,
				CacheDir:   cacheDir,
			}

			switch {
			case all:
				opts.Bytes = true
				opts.Libraries = true
			case libraries:
				opts.Libraries = true
			default:
				opts.Bytes = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("libraries", "l", false, "Clean library builds and the library working copy")
	cmd.Flags().BoolP("all", "a", false, "Clean everything in the cache directory")
	cmd.Flags().String("cache-dir", "", "Cache directory (default: .cache)")

	return cmd
}
