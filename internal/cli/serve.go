package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/newkub/templates/internal/mcptools"
	"github.com/newkub/templates/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the template API over HTTP",
	Long: `Serve preview, dry-run, validation and health checks as a JSON API.
Stops cleanly on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the template tools over MCP on stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		s := mcptools.NewServer(buildVersion, mcptools.NewServices(a.reg, a.cwd))
		return mcptools.Serve(s)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:8787", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving templates from %s on http://%s\n", a.reg.Root(), serveAddr)
	return server.ListenAndServe(ctx, serveAddr, server.NewRouter(server.New(a.reg, a.cwd)))
}
