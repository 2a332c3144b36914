package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "search_kits",
		Description: "Search and filter the kit catalog. Results are ranked by weighted match score when any filter is active.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query matched against kit names, ids, model numbers, grades, and series",
				},
				"state": map[string]interface{}{
					"type":        "string",
					"description": "Serialized filter state (same format as a shared kitdex URL query string, e.g. 'grade=HG&mobility=3-5')",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 20)",
				},
			},
		},
	},
	{
		Name:        "get_kit",
		Description: "Get the full detail record for one kit by id.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Kit id, e.g. 'hg-rx-78-2-revive'",
				},
			},
			"required": []string{"id"},
		},
	},
	{
		Name:        "list_categories",
		Description: "List the filterable categories with their types and allowed values.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
	{
		Name:        "get_favorites",
		Description: "List the kits the user has saved as favorites.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
