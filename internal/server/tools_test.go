package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expected := []string{
		"bitmap_outline",
		"bitmap_outline_svg",
		"bitmap_outline_polygons",
		"bitmap_outline_grid",
		"bitmap_components",
	}
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Equal(t, expected, names)
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Description)
			assert.Equal(t, "object", tool.InputSchema["type"])

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			require.True(t, ok, "properties should be a map")
			for _, key := range []string{"width", "height", "data", "rows", "pixels", "background"} {
				assert.Contains(t, props, key)
			}
		})
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	defaults := map[string]map[string]interface{}{
		"bitmap_outline":      {"background": "#ffffff"},
		"bitmap_outline_svg":  {"fill": "#000000", "background": "#ffffff"},
		"bitmap_outline_grid": {"colour": false},
	}
	for _, tool := range GetToolDefinitions() {
		want, ok := defaults[tool.Name]
		if !ok {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		for key, def := range want {
			prop, ok := props[key].(map[string]interface{})
			require.True(t, ok, "%s.%s missing", tool.Name, key)
			assert.Equal(t, def, prop["default"], "%s.%s default", tool.Name, key)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(Config{})
	resp := s.handleToolsList(&MCPRequest{JSONRPC: "2.0", ID: "list-1", Method: "tools/list"})
	require.NotNil(t, resp)
	assert.Equal(t, "list-1", resp.ID)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		Result struct {
			Tools []Tool `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Result.Tools, len(GetToolDefinitions()))
}
