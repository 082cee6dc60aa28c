package cli

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/dryrun"
	"github.com/spf13/cobra"
)

var dryRunDiff bool

var dryRunCmd = &cobra.Command{
	Use:   "dry-run <template> <project>",
	Short: "Show what applying a template to a project would do",
	Long: `Plan the files a template would create or overwrite in <project>, report
conflicts with files already there and estimate the size of the result.
Nothing is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runDryRun,
}

func init() {
	dryRunCmd.Flags().BoolVar(&dryRunDiff, "diff", false, "Include unified diffs for conflicting files")
	rootCmd.AddCommand(dryRunCmd)
}

func runDryRun(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	res, err := dryrun.NewService(a.reg, a.cwd).DryRun(args[0], args[1], dryrun.Options{Diffs: dryRunDiff})
	if err != nil {
		return fmt.Errorf("dry run of %s: %w", args[0], err)
	}
	return render(cmd, res, func(w io.Writer) error {
		dryrun.Print(w, res)
		return nil
	})
}
