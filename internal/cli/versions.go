package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/newkub/templates/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	versionsOrder    string
	changelogVersion string
)

var versionsCmd = &cobra.Command{
	Use:   "versions <template>",
	Short: "List the released versions of a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runVersions,
}

var changelogCmd = &cobra.Command{
	Use:   "changelog <template>",
	Short: "Show the release notes of a template version",
	Long: `Show the release notes of one version of a template as markdown. The
version defaults to the manifest's currentVersion.`,
	Args: cobra.ExactArgs(1),
	RunE: runChangelog,
}

func init() {
	versionsCmd.Flags().StringVar(&versionsOrder, "order", string(manifest.SortLatest), "Sort order: latest, oldest or semver")
	changelogCmd.Flags().StringVar(&changelogVersion, "version", "", "Version to show (default: current version)")
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(changelogCmd)
}

func parseSortOrder(s string) (manifest.SortOrder, error) {
	for _, o := range manifest.ValidSortOrders {
		if string(o) == s {
			return o, nil
		}
	}
	names := make([]string, len(manifest.ValidSortOrders))
	for i, o := range manifest.ValidSortOrders {
		names[i] = string(o)
	}
	return "", fmt.Errorf("unknown sort order %q (want %s)", s, strings.Join(names, ", "))
}

// loadManifest reads the manifest of template name. A template without a
// manifest returns (nil, nil).
func loadManifest(a *app, name string) (*manifest.TemplateManifest, error) {
	dir, err := a.reg.Resolve(name)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Load(a.reg.Files().Fs(), dir)
	if errors.Is(err, manifest.ErrNoManifest) {
		return nil, nil
	}
	return m, err
}

func runVersions(cmd *cobra.Command, args []string) error {
	order, err := parseSortOrder(versionsOrder)
	if err != nil {
		return err
	}
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	m, err := loadManifest(a, name)
	if err != nil {
		return err
	}

	versions := []manifest.TemplateVersion{}
	if m != nil {
		versions = manifest.SortVersions(m.Versions, order)
	}

	return render(cmd, versions, func(out io.Writer) error {
		if len(versions) == 0 {
			fmt.Fprintf(out, "No versions available for %s\n", name)
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "VERSION\tRELEASED\tCHANGES")
		for _, v := range versions {
			marker := ""
			if v.Version == m.CurrentVersion {
				marker = " (current)"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", v.Version, marker, v.ReleaseDate, summarizeChanges(v.Changelog))
		}
		return w.Flush()
	})
}

// summarizeChanges shows the first two changelog lines.
func summarizeChanges(changes []string) string {
	if len(changes) <= 2 {
		return strings.Join(changes, ", ")
	}
	return strings.Join(changes[:2], ", ") + "..."
}

func runChangelog(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	m, err := loadManifest(a, args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), manifest.Changelog(m, changelogVersion))
	return err
}
