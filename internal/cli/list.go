package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/newkub/templates/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listURLs bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long: `List every template under the templates root plus every template named in
the project config, with the version and description from its manifest.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listURLs, "urls", false, "Show the GitHub page of each template")
	rootCmd.AddCommand(listCmd)
}

// listEntry is a template as shown by list.
type listEntry struct {
	registry.Template `yaml:",inline"`
	URL               string `json:"url" yaml:"url"`
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	templates := a.reg.List()
	entries := make([]listEntry, 0, len(templates))
	for _, t := range templates {
		entries = append(entries, listEntry{Template: t, URL: a.cfg.TemplateURL(t.Dir)})
	}

	if listJSON {
		outputFormat = "json"
	}
	return render(cmd, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			fmt.Fprintf(w, "No templates found under %s\n", a.reg.Root())
			return nil
		}
		return printListTable(w, entries)
	})
}

func printListTable(out io.Writer, entries []listEntry) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	header := "NAME\tVERSION\tCATEGORY\tDESCRIPTION"
	if listURLs {
		header += "\tURL"
	}
	fmt.Fprintln(w, header)
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		if !e.Exists {
			version = "missing"
		}
		category := e.Category
		if category == "" {
			category = "-"
		}
		line := fmt.Sprintf("%s\t%s\t%s\t%s", e.Name, version, category, e.Description)
		if listURLs {
			line += "\t" + e.URL
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
