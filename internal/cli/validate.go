package cli

import (
	"fmt"
	"io"

	"github.com/newkub/templates/internal/validation"
	"github.com/spf13/cobra"
)

var validateRules string

var validateCmd = &cobra.Command{
	Use:   "validate <template>",
	Short: "Check a template against structure rules",
	Long: `Check that a template has its required files, folders and config files
and contains nothing forbidden. --rules points at a YAML or JSON file that
replaces the default rules. Exits non-zero when the template is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateRules, "rules", "", "Rules file (YAML or JSON)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	var rules *validation.Rules
	if validateRules != "" {
		rules, err = validation.LoadRules(validateRules)
		if err != nil {
			return err
		}
	}

	name := args[0]
	res := validation.New(a.reg, a.cwd).ValidateTemplate(name, rules)
	if err := render(cmd, res, func(w io.Writer) error {
		validation.PrintResult(w, name, res)
		return nil
	}); err != nil {
		return err
	}

	if !res.IsValid {
		return fmt.Errorf("template %s is invalid: %d error(s)", name, len(res.Errors))
	}
	return nil
}
