package cli

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/validation"
	"github.com/spf13/cobra"
)

var (
	healthProject string
	healthDiff    bool
)

var healthCmd = &cobra.Command{
	Use:   "health <template>",
	Short: "Compare a project against the template it was created from",
	Long: `Check a project for config files that drifted from the template,
top-level template files missing from the project and dependencies whose
versions differ.
The project defaults to the current directory. Exits non-zero when any
error-level issue is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().StringVar(&healthProject, "project", "", "Project directory (default: current directory)")
	healthCmd.Flags().BoolVar(&healthDiff, "diff", false, "Include unified diffs for drifted config files")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	project := healthProject
	if project == "" {
		project = a.cwd
	}

	status := validation.New(a.reg, a.cwd).CheckProjectHealth(args[0], project, validation.HealthOptions{Diffs: healthDiff})
	if err := render(cmd, status, func(w io.Writer) error {
		validation.PrintHealth(w, status)
		return nil
	}); err != nil {
		return err
	}

	if !status.IsHealthy {
		return fmt.Errorf("project %s is unhealthy", project)
	}
	return nil
}
