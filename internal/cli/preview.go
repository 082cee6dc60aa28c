package cli

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/preview"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <template>",
	Short: "Show a template's structure, dependencies and features",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	p, err := preview.NewService(a.reg).Preview(args[0])
	if err != nil {
		return fmt.Errorf("previewing %s: %w", args[0], err)
	}
	return render(cmd, p, func(w io.Writer) error {
		preview.Print(w, p)
		return nil
	})
}
