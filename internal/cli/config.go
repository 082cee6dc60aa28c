package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/newkub/templates/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write user settings stored at ` + config.FilePath() + `.

Known keys: ` + strings.Join(config.Keys, ", ") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return fmt.Errorf("unknown config key %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective project configuration",
	Long: `Show the configuration in effect for the current directory: defaults
merged with the nearest project config file, if any.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		return render(cmd, a.cfg, func(w io.Writer) error {
			source := a.cfg.Source
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(w, "Config file:     %s\n", source)
			fmt.Fprintf(w, "Templates root:  %s\n", a.reg.Root())
			fmt.Fprintf(w, "GitHub:          %s/%s@%s (%s)\n", a.cfg.GitHub.Owner, a.cfg.GitHub.Repository, a.cfg.GitHub.Branch, a.cfg.GitHub.TemplatesPath)
			fmt.Fprintf(w, "Default project: %s\n", a.cfg.DefaultProjectName)
			fmt.Fprintf(w, "Auto confirm:    %t\n", a.cfg.AutoConfirm)
			fmt.Fprintf(w, "Templates:       %d\n", len(a.cfg.TemplateMap))
			return nil
		})
	},
}
