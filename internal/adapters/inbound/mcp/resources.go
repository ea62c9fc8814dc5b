package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	validatorsURI = "assetkraft://validators"
	resultsURI    = "assetkraft://results"
)

// registerResources registers all assetkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, sess *Session) {
	// 1. assetkraft://validators - the validator catalog
	s.AddResource(
		mcplib.NewResource(
			validatorsURI,
			"Validators",
			mcplib.WithResourceDescription("Registered validators with category, description and fixability"),
			mcplib.WithMIMEType("application/json"),
		),
		func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			infos, err := sess.listValidators(ctx)
			if err != nil {
				return nil, fmt.Errorf("listing validators: %w", err)
			}
			return jsonResource(validatorsURI, infos)
		},
	)

	// 2. assetkraft://results - current results
	s.AddResource(
		mcplib.NewResource(
			resultsURI,
			"Validation Results",
			mcplib.WithResourceDescription("Current result of every validator for the loaded scene"),
			mcplib.WithMIMEType("application/json"),
		),
		func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			report, err := sess.results(ctx)
			if err != nil {
				return nil, fmt.Errorf("reading results: %w", err)
			}
			return jsonResource(resultsURI, report)
		},
	)
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
