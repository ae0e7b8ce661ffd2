package server

import (
	"context"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expected := []string{
		"vectorize",
		"vectorize_download",
		"vectorize_delete",
		"vectorize_account",
		"image_info",
		"image_suggest_palette",
	}
	if len(tools) != len(expected) {
		t.Fatalf("got %d tools, want %d", len(tools), len(expected))
	}

	for i, name := range expected {
		if tools[i].Name != name {
			t.Errorf("tools[%d]: got %s, want %s", i, tools[i].Name, name)
		}
	}
}

func TestGetToolDefinitions_Schemas(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("missing description")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type: got %v", tool.InputSchema["type"])
			}
			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}
			required, _ := tool.InputSchema["required"].([]string)
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required property %q is not defined", r)
				}
			}
		})
	}
}

func TestGetToolDefinitions_OutputProperties(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "vectorize" && tool.Name != "vectorize_download" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		for name := range outputProperties() {
			if _, ok := props[name]; !ok {
				t.Errorf("%s: missing output property %q", tool.Name, name)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s, _ := newTestServer()
	resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", ID: 7, Method: "tools/list"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be []Tool")
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("got %d tools", len(tools))
	}
}
