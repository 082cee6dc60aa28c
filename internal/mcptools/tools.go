// Package mcptools exposes the template services as MCP tools over stdio, so
// editors and agents can preview, dry-run and check templates.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/newkub/templates/internal/branding"
	"github.com/newkub/templates/internal/dryrun"
	"github.com/newkub/templates/internal/preview"
	"github.com/newkub/templates/internal/registry"
	"github.com/newkub/templates/internal/validation"
)

// Services are the backends the tools call.
type Services struct {
	Registry  *registry.Registry
	Previews  *preview.Service
	DryRuns   *dryrun.Service
	Validator *validation.Validator
}

// NewServices wires the services for templates in reg, resolving project
// names against workDir.
func NewServices(reg *registry.Registry, workDir string) *Services {
	return &Services{
		Registry:  reg,
		Previews:  preview.NewService(reg),
		DryRuns:   dryrun.NewService(reg, workDir),
		Validator: validation.New(reg, workDir),
	}
}

// NewServer returns an MCP server with every tool registered.
func NewServer(version string, svc *Services) *server.MCPServer {
	s := server.NewMCPServer(
		branding.CLIName()+"-mcp",
		version,
		server.WithToolCapabilities(true),
	)
	Register(s, svc)
	return s
}

// Serve runs the MCP server on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("serving MCP over stdio: %w", err)
	}
	return nil
}

// Register adds the template tools to s.
func Register(s *server.MCPServer, svc *Services) {
	s.AddTool(listTool(), listHandler(svc))
	s.AddTool(previewTool(), previewHandler(svc))
	s.AddTool(dryRunTool(), dryRunHandler(svc))
	s.AddTool(validateTool(), validateHandler(svc))
	s.AddTool(healthTool(), healthHandler(svc))
}

// --- list_templates ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_templates",
		mcp.WithDescription("List the available project templates with their manifest metadata."),
	)
}

func listHandler(svc *Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(svc.Registry.List())
	}
}

// --- preview_template ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview_template",
		mcp.WithDescription("Show a template's file tree, dependencies and manifest metadata."),
		mcp.WithString("name",
			mcp.Description("Template name, e.g. next or vite-react"),
			mcp.Required(),
		),
	)
}

func previewHandler(svc *Services) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return toolError(err)
		}
		p, err := svc.Previews.Preview(name)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(p)
	}
}

// --- dry_run_template ---

func dryRunTool() mcp.Tool {
	return mcp.NewTool("dry_run_template",
		mcp.WithDescription("Report which files applying a template to a project would create or overwrite, with conflicts and warnings. Nothing is written."),
		mcp.WithString("name",
			mcp.Description("Template name"),
			mcp.Required(),
		),
		mcp.WithString("project_name",
			mcp.Description("Project directory, relative to the server's working directory or absolute"),
			mcp.Required(),
		),
		mcp.WithBoolean("diff",
			mcp.Description("Include unified diffs for conflicting files"),
		),
	)
}

func dryRunHandler(svc *Services) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return toolError(err)
		}
		project, err := req.RequireString("project_name")
		if err != nil {
			return toolError(err)
		}
		res, err := svc.DryRuns.DryRun(name, project, dryrun.Options{Diffs: req.GetBool("diff", false)})
		if err != nil {
			return toolError(err)
		}
		return jsonResult(res)
	}
}

// --- validate_template ---

func validateTool() mcp.Tool {
	return mcp.NewTool("validate_template",
		mcp.WithDescription("Check a template for required files, folders and config files and for forbidden entries."),
		mcp.WithString("name",
			mcp.Description("Template name"),
			mcp.Required(),
		),
		mcp.WithString("rules",
			mcp.Description(`Optional JSON rules object, e.g. {"requiredFiles":["package.json"],"forbiddenPatterns":["dist"]}. Defaults apply when omitted.`),
		),
	)
}

func validateHandler(svc *Services) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return toolError(err)
		}
		var rules *validation.Rules
		if raw := req.GetString("rules", ""); raw != "" {
			rules = &validation.Rules{}
			if err := json.Unmarshal([]byte(raw), rules); err != nil {
				return toolError(fmt.Errorf("parsing rules: %w", err))
			}
		}
		return jsonResult(svc.Validator.ValidateTemplate(name, rules))
	}
}

// --- check_project_health ---

func healthTool() mcp.Tool {
	return mcp.NewTool("check_project_health",
		mcp.WithDescription("Compare a project with the template it was created from: config drift, missing files and dependency differences."),
		mcp.WithString("name",
			mcp.Description("Template name"),
			mcp.Required(),
		),
		mcp.WithString("project_path",
			mcp.Description("Project directory. Defaults to the server's working directory."),
		),
		mcp.WithBoolean("diff",
			mcp.Description("Include unified diffs for out-of-sync config files"),
		),
	)
}

func healthHandler(svc *Services) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return toolError(err)
		}
		status := svc.Validator.CheckProjectHealth(
			name,
			req.GetString("project_path", ""),
			validation.HealthOptions{Diffs: req.GetBool("diff", false)},
		)
		return jsonResult(status)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Errorf("encoding result: %w", err))
	}
	return mcp.NewToolResultText(string(data)), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
