package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ironsheep/vectorizer-go"
	"github.com/ironsheep/vectorizer-go/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "vectorize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	log := s.logger.With().Str("tool", params.Name).Logger()
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		log.Info().Err(err).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	log.Debug().Msg("tool succeeded")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "vectorize":
		return s.handleVectorize(ctx, args)
	case "vectorize_download":
		return s.handleDownload(ctx, args)
	case "vectorize_delete":
		return s.handleDelete(ctx, args)
	case "vectorize_account":
		return s.api.Account(ctx)

	case "image_info":
		return s.handleImageInfo(args)
	case "image_suggest_palette":
		return s.handleSuggestPalette(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Vectorization Handlers ===

type outputArgs struct {
	OutputPath    string `json:"output_path"`
	FileFormat    string `json:"file_format"`
	SVGVersion    string `json:"svg_version"`
	DrawStyle     string `json:"draw_style"`
	ShapeStacking string `json:"shape_stacking"`
	GroupBy       string `json:"group_by"`
}

func (a outputArgs) options() vectorizer.OutputOptions {
	return vectorizer.OutputOptions{
		FileFormat:    vectorizer.FileFormat(a.FileFormat),
		SVGVersion:    vectorizer.SVGVersion(a.SVGVersion),
		DrawStyle:     vectorizer.DrawStyle(a.DrawStyle),
		ShapeStacking: vectorizer.ShapeStacking(a.ShapeStacking),
		GroupBy:       vectorizer.GroupBy(a.GroupBy),
	}
}

type vectorizeArgs struct {
	outputArgs
	Path             string `json:"path"`
	URL              string `json:"url"`
	ImageToken       string `json:"image_token"`
	Mode             string `json:"mode"`
	MaxColors        *int   `json:"max_colors"`
	Palette          string `json:"palette"`
	RetentionDays    *int   `json:"retention_days"`
	PrepareMaxPixels int    `json:"prepare_max_pixels"`
}

// resultSummary is what vectorize and vectorize_download report back.
type resultSummary struct {
	OutputPath        string  `json:"output_path,omitempty"`
	ContentType       string  `json:"content_type"`
	Bytes             int     `json:"bytes"`
	ImageToken        string  `json:"image_token,omitempty"`
	Receipt           string  `json:"receipt,omitempty"`
	CreditsCalculated float64 `json:"credits_calculated"`
	CreditsCharged    float64 `json:"credits_charged"`
	SVG               string  `json:"svg,omitempty"`
	DataBase64        string  `json:"data_base64,omitempty"`
}

func (s *Server) handleVectorize(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a vectorizeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	req := &vectorizer.VectorizeRequest{
		Image:         vectorizer.Image{URL: a.URL, Token: a.ImageToken},
		Mode:          vectorizer.Mode(a.Mode),
		RetentionDays: a.RetentionDays,
		Processing:    vectorizer.ProcessingOptions{MaxColors: a.MaxColors},
		Output:        a.options(),
	}

	if a.Palette != "" {
		palette, err := vectorizer.ParsePalette(a.Palette)
		if err != nil {
			return nil, err
		}
		req.Processing.Palette = palette
	}

	if a.Path != "" {
		img, err := s.localImage(a.Path, a.PrepareMaxPixels)
		if err != nil {
			return nil, err
		}
		req.Image.Data = img.Data
		req.Image.Filename = img.Filename
	}

	res, err := s.api.Vectorize(ctx, req)
	if err != nil {
		return nil, err
	}
	return summarize(res, a.OutputPath)
}

// localImage reads path for upload, downscaling it first when maxPixels > 0.
func (s *Server) localImage(path string, maxPixels int) (vectorizer.Image, error) {
	if maxPixels <= 0 {
		return vectorizer.ImageFromFile(path)
	}
	p, err := imaging.Prepare(s.cache, path, imaging.PrepareOptions{MaxPixels: maxPixels})
	if err != nil {
		return vectorizer.Image{}, err
	}
	return vectorizer.Image{Data: p.Data, Filename: p.Filename}, nil
}

type downloadArgs struct {
	outputArgs
	ImageToken string `json:"image_token"`
	Receipt    string `json:"receipt"`
}

func (s *Server) handleDownload(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a downloadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	res, err := s.api.Download(ctx, &vectorizer.DownloadRequest{
		ImageToken: a.ImageToken,
		Receipt:    a.Receipt,
		Output:     a.options(),
	})
	if err != nil {
		return nil, err
	}
	return summarize(res, a.OutputPath)
}

type deleteArgs struct {
	ImageToken string `json:"image_token"`
}

func (s *Server) handleDelete(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a deleteArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return s.api.Delete(ctx, a.ImageToken)
}

func summarize(res *vectorizer.Result, outputPath string) (*resultSummary, error) {
	sum := &resultSummary{
		ContentType:       res.ContentType,
		Bytes:             len(res.Data),
		ImageToken:        res.ImageToken,
		Receipt:           res.Receipt,
		CreditsCalculated: res.CreditsCalculated,
		CreditsCharged:    res.CreditsCharged,
	}

	switch {
	case outputPath != "":
		if err := res.WriteFile(outputPath); err != nil {
			return nil, err
		}
		sum.OutputPath = outputPath
	case strings.HasPrefix(res.ContentType, "image/svg+xml"):
		sum.SVG = string(res.Data)
	default:
		sum.DataBase64 = base64.StdEncoding.EncodeToString(res.Data)
	}
	return sum, nil
}

// === Local Analysis Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type suggestPaletteArgs struct {
	Path        string   `json:"path"`
	Count       int      `json:"count"`
	MinDistance *float64 `json:"min_distance"`
}

type suggestPaletteResult struct {
	Colors  []string `json:"colors"`
	Palette string   `json:"palette"`
}

func (s *Server) handleSuggestPalette(args json.RawMessage) (interface{}, error) {
	var a suggestPaletteArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 8
	}
	minDistance := 0.1
	if a.MinDistance != nil {
		minDistance = *a.MinDistance
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	colors, err := imaging.SuggestPalette(img, a.Count, minDistance)
	if err != nil {
		return nil, err
	}

	palette := make(vectorizer.Palette, len(colors))
	for i, c := range colors {
		palette[i] = vectorizer.PaletteEntry{Color: c}
	}
	return &suggestPaletteResult{Colors: colors, Palette: palette.String()}, nil
}
