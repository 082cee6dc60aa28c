package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/newkub/templates/internal/manifest"
	"github.com/newkub/templates/internal/ui"
	"github.com/spf13/cobra"
)

var manifestInitVersion string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Create and check template manifests",
	Long: `Manage the ` + manifest.FileName + ` file that records a template's
description and release history.`,
}

var manifestInitCmd = &cobra.Command{
	Use:   "init <template>",
	Short: "Write an initial manifest for a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		dir, err := a.reg.Resolve(args[0])
		if err != nil {
			return err
		}

		m, err := manifest.Create(a.reg.Files().Fs(), dir, args[0], manifestInitVersion, time.Now())
		if err != nil {
			return fmt.Errorf("creating manifest: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.OK(fmt.Sprintf("Created %s (version %s)", manifest.PathIn(dir), m.CurrentVersion)))
		return nil
	},
}

var manifestCheckCmd = &cobra.Command{
	Use:   "check <template>",
	Short: "Validate a template manifest against its schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		dir, err := a.reg.Resolve(args[0])
		if err != nil {
			return err
		}

		res, err := manifest.ValidateDir(a.reg.Files().Fs(), dir)
		if err != nil {
			return fmt.Errorf("checking manifest: %w", err)
		}
		if err := render(cmd, res, func(w io.Writer) error {
			if res.Valid {
				fmt.Fprintln(w, ui.OK(manifest.PathIn(dir)+" is valid"))
				return nil
			}
			fmt.Fprintln(w, ui.Fail(manifest.PathIn(dir)+" is invalid"))
			for _, issue := range res.Issues {
				path := issue.Path
				if path == "" {
					path = "/"
				}
				fmt.Fprintf(w, "  %s: %s\n", path, issue.Message)
			}
			return nil
		}); err != nil {
			return err
		}

		if !res.Valid {
			return fmt.Errorf("manifest for %s has %d issue(s)", args[0], len(res.Issues))
		}
		return nil
	},
}

func init() {
	manifestInitCmd.Flags().StringVar(&manifestInitVersion, "version", "1.0.0", "Initial version")
	manifestCmd.AddCommand(manifestInitCmd)
	manifestCmd.AddCommand(manifestCheckCmd)
	rootCmd.AddCommand(manifestCmd)
}
