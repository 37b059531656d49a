package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/extq/internal/app"
)

func (c *CLI) newQueryExtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query-ext [flags] <url>",
		Short: "Report the filters of an extension build that match a URL",
		Long: `Report the network and cosmetic filters of every rule asset shipped in a
Ghostery extension build that match the given URL.

The filtering library version the build depends on is built on first use and
kept in the cache directory. Running several invocations against the same
cache directory at once is not supported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) > 0 {
				target = args[0]
			}

			artifact, _ := cmd.Flags().GetString("artifact")
			source, _ := cmd.Flags().GetString("source-url")
			env, _ := cmd.Flags().GetString("env")
			skipRegionals, _ := cmd.Flags().GetBool("skip-regionals")
			ref, _ := cmd.Flags().GetString("ref")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			return c.app.QueryExt(cmd.Context(), app.QueryOptions{
				ConfigPath:    c.configPath,
				Artifact:      artifact,
				TargetURL:     target,
				SourceURL:     source,
				Env:           env,
				Ref:           ref,
				CacheDir:      cacheDir,
				SkipRegionals: skipRegionals,
				Verbose:       c.verbose,
			})
		},
	}

	cmd.Flags().StringP("artifact", "a", "", "Extension build to inspect (default: newest chromium release)")
	cmd.Flags().StringP("source-url", "s", "", "Page the request originates from")
	cmd.Flags().StringP("env", "e", "", "Environment token, e.g. chromium or firefox-mobile")
	cmd.Flags().Bool("skip-regionals", false, "Skip regional rule assets")
	cmd.Flags().StringP("ref", "r", "", "Extension ref to read the library version from (default: tags/v<artifact version>)")
	cmd.Flags().String("cache-dir", "", "Cache directory (default: .cache)")

	return cmd
}
