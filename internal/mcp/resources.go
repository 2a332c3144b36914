package mcp

import (
	"context"
	"encoding/json"
	"fmt"
)

// Resource represents an MCP resource definition
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

// ResourceDefinitions contains all available MCP resources
var ResourceDefinitions = []Resource{
	{
		URI:         "kitdex://taxonomy",
		Name:        "Filter taxonomy",
		Description: "The filterable categories with their types, options, and range bounds",
		MimeType:    "application/json",
	},
	{
		URI:         "kitdex://catalog",
		Name:        "Kit catalog",
		Description: "The full kit index, one entry per kit",
		MimeType:    "application/json",
	},
}

type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

type readResourceParams struct {
	URI string `json:"uri"`
}

type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "kitdex://taxonomy":
		data, err := json.MarshalIndent(s.taxonomy, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode taxonomy: %w", err)
		}
		return string(data), nil
	case "kitdex://catalog":
		data, err := json.MarshalIndent(s.products, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode catalog: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}
