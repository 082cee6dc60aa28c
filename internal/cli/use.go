package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/newkub/templates/internal/dryrun"
	"github.com/newkub/templates/internal/registry"
	"github.com/newkub/templates/internal/ui"
	"github.com/spf13/cobra"
)

var useYes bool

var useCmd = &cobra.Command{
	Use:   "use <template> [project]",
	Short: "Create a project from a template",
	Long: `Copy a template into a new project directory and set the project name in
its package.json. The project name defaults to defaultProjectName from the
project config. Run 'dry-run' first to see what will be written.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUse,
}

func init() {
	useCmd.Flags().BoolVarP(&useYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	project := a.cfg.DefaultProjectName
	if len(args) == 2 {
		project = args[1]
	}
	if strings.TrimSpace(project) == "" {
		return registry.NewInvalidProjectName(project, "name must not be empty")
	}

	src, err := a.reg.Resolve(name)
	if err != nil {
		return err
	}
	target := dryrun.NewService(a.reg, a.cwd).TargetPath(project)

	out := cmd.OutOrStdout()
	skipPrompts := useYes || a.cfg.AutoConfirm
	if !skipPrompts && !confirm(cmd, fmt.Sprintf("Create project %q using template %q?", project, name)) {
		fmt.Fprintln(out, "Template creation cancelled.")
		return nil
	}
	if a.reg.Files().Exists(target) && !skipPrompts {
		if !confirm(cmd, fmt.Sprintf("Directory %q already exists. Overwrite?", project)) {
			return fmt.Errorf("project directory %s already exists", target)
		}
	}

	if err := a.reg.Apply(src, target); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	if warning := a.reg.RenameProject(target, filepath.Base(target)); warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn(warning))
	}

	fmt.Fprintln(out, ui.OK(fmt.Sprintf("Created %s from template %s", project, name)))
	fmt.Fprintf(out, "\nNext steps:\n  cd %s\n", project)
	return nil
}
