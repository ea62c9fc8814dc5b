package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/assetkraft/internal/domain"
)

// registerTools registers all assetkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, sess *Session) {
	// 1. assetkraft_list_validators
	s.AddTool(
		mcplib.NewTool("assetkraft_list_validators",
			mcplib.WithDescription("Lists every validator with its category, description and whether it can be fixed automatically"),
		),
		handleListValidators(sess),
	)

	// 2. assetkraft_validate
	s.AddTool(
		mcplib.NewTool("assetkraft_validate",
			append([]mcplib.ToolOption{
				mcplib.WithDescription("Validates the loaded scene and returns the report as JSON. Export fields default to the ones stored with the scene."),
				mcplib.WithString("validator", mcplib.Description("Validator name, or \"all\" (default)")),
			}, exportParams()...)...,
		),
		handleValidate(sess),
	)

	// 3. assetkraft_fix
	s.AddTool(
		mcplib.NewTool("assetkraft_fix",
			append([]mcplib.ToolOption{
				mcplib.WithDescription("Applies automatic fixes, re-validates and returns the outcomes. Changes stay in memory until assetkraft_save_scene."),
				mcplib.WithString("validator", mcplib.Description("Fix only this validator (default: all fixable)")),
				mcplib.WithBoolean("dry_run", mcplib.Description("Fix a copy of the scene and report the result without changing it")),
			}, exportParams()...)...,
		),
		handleFix(sess),
	)

	// 4. assetkraft_ignore
	s.AddTool(
		mcplib.NewTool("assetkraft_ignore",
			mcplib.WithDescription("Forces a validator to pass until it is run again"),
			mcplib.WithString("validator",
				mcplib.Required(),
				mcplib.Description("Validator name, or \"all\""),
			),
		),
		handleIgnore(sess),
	)

	// 5. assetkraft_results
	s.AddTool(
		mcplib.NewTool("assetkraft_results",
			mcplib.WithDescription("Returns the current result of every validator without running anything"),
		),
		handleResults(sess),
	)

	// 6. assetkraft_save_scene
	s.AddTool(
		mcplib.NewTool("assetkraft_save_scene",
			mcplib.WithDescription("Writes the scene, including applied fixes, back to disk"),
			mcplib.WithString("path", mcplib.Description("Destination path (default: the file the scene was loaded from)")),
		),
		handleSaveScene(sess),
	)
}

func exportParams() []mcplib.ToolOption {
	return []mcplib.ToolOption{
		mcplib.WithString("type", mcplib.Description("Asset type: model, material or scene")),
		mcplib.WithString("models", mcplib.Description("Comma-separated object names for a model export")),
		mcplib.WithString("scene", mcplib.Description("Scene name for a scene export")),
		mcplib.WithString("material", mcplib.Description("Material name for a material export")),
	}
}

// exportFromArgs overlays request arguments on the scene's stored export data.
func exportFromArgs(args map[string]any, base domain.ExportData) domain.ExportData {
	data := base
	if t, ok := args["type"].(string); ok && t != "" {
		data.Type = t
	}
	if models, ok := args["models"].(string); ok && models != "" {
		data.Models = splitAndTrim(models)
	}
	if scene, ok := args["scene"].(string); ok && scene != "" {
		data.Scene = scene
	}
	if material, ok := args["material"].(string); ok && material != "" {
		data.Material = material
	}
	return data
}

func handleListValidators(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		infos, err := sess.listValidators(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("listing validators failed: %v", err)), nil
		}
		return jsonResult(infos)
	}
}

func handleValidate(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		name, _ := args["validator"].(string)
		data := exportFromArgs(args, sess.Export())

		report, err := sess.validate(ctx, name, data)
		if errors.Is(err, domain.ErrUnknownValidator) || report.Results == nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(withErrors(report, err))
	}
}

func handleFix(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		name, _ := args["validator"].(string)
		dryRun, _ := args["dry_run"].(bool)
		data := exportFromArgs(args, sess.Export())

		report, err := sess.fix(ctx, domain.FixOptions{DryRun: dryRun, Only: name}, data)
		if errors.Is(err, domain.ErrUnknownValidator) || report.Outcomes == nil {
			return errorResult(fmt.Sprintf("fix failed: %v", err)), nil
		}
		return jsonResult(withErrors(report, err))
	}
}

func handleIgnore(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("validator")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		report, err := sess.ignore(ctx, name)
		if err != nil {
			return errorResult(fmt.Sprintf("ignore failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleResults(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := sess.results(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("reading results failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSaveScene(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, _ := request.GetArguments()["path"].(string)
		written, err := sess.save(ctx, path)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult("Wrote " + written), nil
	}
}

// withErrors attaches batch errors to a result without failing the call; the
// report still carries every validator that ran.
func withErrors(v any, err error) any {
	if err == nil {
		return v
	}
	return struct {
		Result any    `json:"result"`
		Error  string `json:"error"`
	}{v, err.Error()}
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
