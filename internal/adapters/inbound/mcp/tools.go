package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	appconfig "github.com/depguard/depguard/internal/adapters/outbound/config"
	"github.com/depguard/depguard/internal/adapters/outbound/gitinfo"
	"github.com/depguard/depguard/internal/adapters/outbound/history"
	"github.com/depguard/depguard/internal/adapters/outbound/manifest"
	"github.com/depguard/depguard/internal/application"
)

// registerTools registers all depguard MCP tools on the given server.
func registerTools(s *server.MCPServer, repoRoot, version string) {
	s.AddTool(
		mcplib.NewTool("depguard_check",
			mcplib.WithDescription("Run dependency policy checks on the workspace and return the full JSON report"),
			mcplib.WithString("profile", mcplib.Description("Policy profile override (strict, warn, compat)")),
			mcplib.WithString("scope", mcplib.Description("Scan scope override (repo, diff)")),
			mcplib.WithString("base", mcplib.Description("Git revision diff scope compares against (default HEAD)")),
		),
		handleCheck(repoRoot, version),
	)

	s.AddTool(
		mcplib.NewTool("depguard_explain",
			mcplib.WithDescription("Explain a check or finding code: what it detects and how to fix violations"),
			mcplib.WithString("identifier",
				mcplib.Required(),
				mcplib.Description("Check id (e.g. deps.no_wildcards) or finding code (e.g. wildcard_version)"),
			),
		),
		handleExplain(),
	)

	s.AddTool(
		mcplib.NewTool("depguard_list_checks",
			mcplib.WithDescription("List every registered check with its title and description"),
		),
		handleListChecks(),
	)
}

func newCheckService(version string) *application.CheckService {
	return application.NewCheckService(
		appconfig.New(),
		manifest.New(),
		gitinfo.New(),
		history.New(),
		application.ToolMeta{Name: "depguard", Version: version},
	)
}

func handleCheck(repoRoot, version string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report := newCheckService(version).Check(application.CheckOptions{
			RepoRoot: repoRoot,
			Profile:  request.GetString("profile", ""),
			Scope:    request.GetString("scope", ""),
			Base:     request.GetString("base", ""),
		})
		return jsonResult(report)
	}
}

func handleExplain() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		identifier, err := request.RequireString("identifier")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		exp, ok := application.NewExplainService().Explain(identifier)
		if !ok {
			return errorResult(fmt.Sprintf("unknown check or code %q", identifier)), nil
		}
		return jsonResult(exp)
	}
}

func handleListChecks() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(application.NewExplainService().ListChecks())
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
