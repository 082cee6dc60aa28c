package cli

import (
	"fmt"
	"path/filepath"

	"github.com/newkub/templates/internal/ui"
	"github.com/spf13/cobra"
)

var updateYes bool

var updateCmd = &cobra.Command{
	Use:   "update <template>",
	Short: "Re-apply a template over its directory in the current directory",
	Long: `Copy the latest files of a template over ./<template>, overwriting files
that exist in both. Files only in the project are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	target := filepath.Join(a.cwd, name)
	if !a.reg.Files().IsDir(target) {
		return fmt.Errorf("template directory %q not found in current directory", name)
	}

	src, err := a.reg.Resolve(name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !updateYes && !a.cfg.AutoConfirm {
		if !confirm(cmd, fmt.Sprintf("Update template %q? This will overwrite existing files.", name)) {
			fmt.Fprintln(out, "Template update cancelled.")
			return nil
		}
	}

	if err := a.reg.Apply(src, target); err != nil {
		return fmt.Errorf("updating %s: %w", name, err)
	}

	fmt.Fprintln(out, ui.OK(fmt.Sprintf("Updated files in %s", target)))
	return nil
}
