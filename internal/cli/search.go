package cli

import (
	"io"
	"strings"

	"github.com/newkub/templates/internal/registry"
	"github.com/spf13/cobra"
)

var (
	searchCategory string
	searchTags     []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search templates by name, description, category or tag",
	Long: `Search the available templates. The query matches case-insensitively
against the template name, description and tags. --category and --tag narrow
the results further; every --tag given must be present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Filter by manifest category")
	searchCmd.Flags().StringSliceVar(&searchTags, "tag", nil, "Filter by tag (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	var entries []listEntry
	for _, t := range a.reg.List() {
		if matchesSearch(t, query, searchCategory, searchTags) {
			entries = append(entries, listEntry{Template: t, URL: a.cfg.TemplateURL(t.Dir)})
		}
	}

	return render(cmd, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			_, err := io.WriteString(w, "No templates match.\n")
			return err
		}
		return printListTable(w, entries)
	})
}

// matchesSearch reports whether t passes the query and filters.
func matchesSearch(t registry.Template, query, category string, tags []string) bool {
	if category != "" && !strings.EqualFold(t.Category, category) {
		return false
	}

	for _, want := range tags {
		found := false
		for _, have := range t.Tags {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Name), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
