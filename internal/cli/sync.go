package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/newkub/templates/internal/ui"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <template>",
	Short: "Copy a template's top-level config files into the current directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	res, err := a.reg.SyncConfig(name, a.reg.Path(name), a.cwd)
	if err != nil {
		return err
	}

	return render(cmd, res, func(w io.Writer) error {
		if len(res.SyncedFiles) == 0 {
			fmt.Fprintln(w, ui.Info(res.Message))
			return nil
		}
		fmt.Fprintln(w, ui.OK(res.Message))
		fmt.Fprintf(w, "Synced files: %s\n", strings.Join(res.SyncedFiles, ", "))
		return nil
	})
}
