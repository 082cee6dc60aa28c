package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newkub/templates/internal/branding"
	"github.com/newkub/templates/internal/catalog"
	"github.com/spf13/cobra"
)

var fetchStatus bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Clone or update the local copy of the templates repository",
	Long: `Fetch the templates repository into ~/` + branding.HomeDir() + `/templates-repo/.

The first fetch makes a shallow clone (sparse on templates/ when git allows);
later fetches pull. The repository URL comes from $` + branding.EnvVar("REPO_URL") + `,
the templates_repo setting, or the built-in default. With --status, only
report where the clone is and how old it is.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchStatus, "status", false, "Show clone location and age without fetching")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	dir := catalog.Dir()

	if fetchStatus {
		return printFetchStatus(cmd, dir)
	}

	fmt.Fprintf(out, "Fetching %s into %s...\n", catalog.RepoURL(), dir)
	if err := catalog.Fetch(cmd.Context(), catalog.RepoURL(), dir); err != nil {
		return fmt.Errorf("fetching templates: %w", err)
	}
	fmt.Fprintln(out, "Templates updated successfully.")
	return nil
}

func printFetchStatus(cmd *cobra.Command, dir string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Clone path:   %s\n", dir)
	fmt.Fprintf(out, "Repo URL:     %s\n", catalog.RepoURL())

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		fmt.Fprintln(out, "Status:       not fetched")
		fmt.Fprintf(out, "\nRun '%s fetch' to download the templates.\n", branding.CLIName())
		return nil
	}

	now := time.Now()
	lastUpdated := catalog.ReadFreshnessMarker(dir)
	if lastUpdated.IsZero() {
		fmt.Fprintln(out, "Last updated: unknown")
	} else {
		age := now.Sub(lastUpdated).Truncate(time.Minute)
		fmt.Fprintf(out, "Last updated: %s (%s ago)\n", lastUpdated.Format(time.RFC3339), age)
	}

	if catalog.IsStale(dir, catalog.DefaultMaxAge, now) {
		fmt.Fprintf(out, "Status:       stale (run '%s fetch')\n", branding.CLIName())
	} else {
		fmt.Fprintln(out, "Status:       up to date")
	}
	return nil
}
