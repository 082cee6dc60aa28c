package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/newkub/templates/internal/config"
	"github.com/newkub/templates/internal/fileset"
	"github.com/newkub/templates/internal/registry"
	"github.com/newkub/templates/internal/ui"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// app is what most commands need: where they run, the effective project
// config, and the template registry.
type app struct {
	cwd string
	cfg *config.Resolved
	reg *registry.Registry
}

// loadApp resolves the working directory, the project config file and the
// templates root. A broken project config is reported and ignored.
func loadApp(cmd *cobra.Command) (*app, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	user, source, err := config.LoadProject(cwd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn(fmt.Sprintf("%v; using default configuration", err)))
		user, source = nil, ""
	}
	cfg := config.Resolve(user)
	cfg.Source = source

	root := config.TemplatesRoot(templatesRootFlag, cwd)
	reg := registry.New(root, cfg.TemplateMap, fileset.New(nil))

	return &app{cwd: cwd, cfg: cfg, reg: reg}, nil
}

func checkOutputFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
}

// render writes v as JSON or YAML when --output asks for it, and calls text
// otherwise.
func render(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// confirm asks a yes/no question on stdout and reads the answer from stdin.
// An empty answer means yes.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "? %s (Y/n) ", question)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "" || answer == "y" || answer == "yes"
}
