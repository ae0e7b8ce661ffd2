// Package server implements an MCP (Model Context Protocol) server that
// exposes the Vectorizer.AI API as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Vectorization:
//   - vectorize: Convert a local file, URL or retained image to a vector file
//   - vectorize_download: Re-render a retained image
//   - vectorize_delete: Delete a retained image
//   - vectorize_account: Subscription state and credits
//
// Local analysis (no API call, no credits):
//   - image_info: Dimensions, pixel count and format of a local file
//   - image_suggest_palette: Propose a palette for processing.palette
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Parameter validation happens before any API call, so a rejected tool call
// never spends credits.
package server
