package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newkub/templates/internal/branding"
	"github.com/newkub/templates/internal/catalog"
	"github.com/newkub/templates/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	templatesRootFlag string
	outputFormat      string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates, previews and keeps projects in sync with
reusable project templates. Templates live in templates/<name>/ under a
templates root, which defaults to a local clone fetched with 'fetch'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(outputFormat); err != nil {
			return err
		}
		config.Load()

		// Skip the banner for commands that manage the clone or talk a
		// protocol on stdout.
		switch cmd.Name() {
		case "fetch", "version", "mcp", "get", "set":
			return nil
		}

		dir := catalog.Dir()
		if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
			return nil
		}
		if catalog.IsStale(dir, catalog.DefaultMaxAge, time.Now()) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Templates are more than 7 days old. Run '%s fetch'.\n", branding.CLIName())
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&templatesRootFlag, "templates-root", "", "Directory containing templates/ (overrides $"+branding.EnvVar("ROOT")+")")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
