package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/vectorizer-go"
)

// fakeAPI records calls and returns canned results. Requests are validated
// the way the real client does it, so tests see the same errors.
type fakeAPI struct {
	vectorizeReq *vectorizer.VectorizeRequest
	downloadReq  *vectorizer.DownloadRequest
	deletedToken string
	result       *vectorizer.Result
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		result: &vectorizer.Result{
			Data:              []byte("<svg></svg>"),
			ContentType:       "image/svg+xml",
			ImageToken:        "tok-1",
			CreditsCalculated: 1,
			CreditsCharged:    0,
		},
	}
}

func (f *fakeAPI) Vectorize(_ context.Context, req *vectorizer.VectorizeRequest) (*vectorizer.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.vectorizeReq = req
	return f.result, nil
}

func (f *fakeAPI) Download(_ context.Context, req *vectorizer.DownloadRequest) (*vectorizer.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.downloadReq = req
	return f.result, nil
}

func (f *fakeAPI) Delete(_ context.Context, token string) (*vectorizer.DeleteResult, error) {
	if err := vectorizer.RequireOne([]string{"image_token"}, token); err != nil {
		return nil, err
	}
	f.deletedToken = token
	return &vectorizer.DeleteResult{Success: true}, nil
}

func (f *fakeAPI) Account(context.Context) (*vectorizer.AccountStatus, error) {
	return &vectorizer.AccountStatus{SubscriptionPlan: "none", SubscriptionState: "ended", Credits: 42}, nil
}

func newTestServer() (*Server, *fakeAPI) {
	api := newFakeAPI()
	return New(api, zerolog.Nop()), api
}

func TestNew(t *testing.T) {
	s, _ := newTestServer()
	if s.cache == nil {
		t.Fatal("New() did not initialize cache")
	}
	if s.api == nil {
		t.Fatal("New() did not set api")
	}
}

func TestMCPRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{"string id", `{"jsonrpc":"2.0","id":"test-1","method":"tools/list"}`, "test-1", "tools/list"},
		{"number id", `{"jsonrpc":"2.0","id":42,"method":"ping"}`, float64(42), "ping"},
		{"null id", `{"jsonrpc":"2.0","id":null,"method":"initialize"}`, nil, "initialize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}
			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s, _ := newTestServer()
	resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}
	if serverInfo["name"] != "vectorizer-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != vectorizer.Version {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s, _ := newTestServer()
	resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", ID: "ping-1", Method: "ping"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s, _ := newTestServer()
	if resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", Method: "notifications/initialized"}); resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s, _ := newTestServer()
	resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "nonexistent/method"})

	if resp == nil || resp.Error == nil {
		t.Fatal("Expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("Error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestRun(t *testing.T) {
	s, _ := newTestServer()

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"vectorize_account","arguments":{}}}`,
	}, "\n")

	var out bytes.Buffer
	if err := s.Run(context.Background(), strings.NewReader(in), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d responses, want 2:\n%s", len(lines), out.String())
	}

	var resp struct {
		ID     float64 `json:"id"`
		Result struct {
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &resp); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if resp.ID != 2 {
		t.Errorf("ID: got %v, want 2", resp.ID)
	}
	if len(resp.Result.Content) != 1 || !strings.Contains(resp.Result.Content[0].Text, `"credits": 42`) {
		t.Errorf("unexpected content: %+v", resp.Result.Content)
	}
}

func TestRun_Cancelled(t *testing.T) {
	s, _ := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := s.Run(ctx, strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n"), &out)
	if err != context.Canceled {
		t.Errorf("err: got %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("no response expected after cancel, got %q", out.String())
	}
}

func TestRun_CancelWhileIdle(t *testing.T) {
	s, _ := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, pr, io.Discard)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("err: got %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation with idle input")
	}
}

func TestRun_Pipe(t *testing.T) {
	s, _ := newTestServer()

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(context.Background(), inR, outW)
		outW.Close()
	}()

	go func() {
		_, _ = io.WriteString(inW, `{"jsonrpc":"2.0","id":"p1","method":"ping"}`+"\n")
	}()

	reader := bufio.NewReader(outR)
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	var resp MCPResponse
	if err := json.Unmarshal([]byte(line), &resp); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if resp.ID != "p1" || resp.Error != nil {
		t.Errorf("unexpected response: %+v", resp)
	}

	inW.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run at EOF: got %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return at EOF")
	}
}
