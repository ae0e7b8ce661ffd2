package vectorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.vectorizer.ai/api/v1"

	defaultUserAgent = "vectorizer-go/" + Version
)

// Response headers set by the service.
const (
	HeaderImageToken        = "X-Image-Token"
	HeaderReceipt           = "X-Receipt"
	HeaderCreditsCalculated = "X-Credits-Calculated"
	HeaderCreditsCharged    = "X-Credits-Charged"
)

// Client calls the Vectorizer.AI API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiID      string
	apiSecret  string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials sets the API id and secret used for HTTP basic auth.
func WithCredentials(apiID, apiSecret string) Option {
	return func(c *Client) {
		c.apiID = apiID
		c.apiSecret = apiSecret
	}
}

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every call. It is applied as a context deadline, so it
// also works with a shared client passed to WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client. Credentials are required.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.apiID == "" || c.apiSecret == "" {
		return nil, ErrMissingCredentials
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(DefaultTransportConfig())
	}
	return c, nil
}

// Result is a rendered vector (or PNG) file and its billing metadata.
type Result struct {
	// Data is the output file.
	Data []byte

	// ContentType is the response media type, e.g. "image/svg+xml".
	ContentType string

	// ImageToken is set when the image was retained (policy.retention_days > 0)
	// and can be passed to Download or Delete.
	ImageToken string

	// Receipt is set for preview results and lowers the cost of a later
	// production Download.
	Receipt string

	CreditsCalculated float64
	CreditsCharged    float64
}

// Vectorize converts a raster image into a vector graphic. Parameters are
// validated before any network call.
func (c *Client) Vectorize(ctx context.Context, req *VectorizeRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(encodeForm(req), "image", req.Image.Filename, req.Image.Data)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/vectorize", contentType, body)
	if err != nil {
		return nil, err
	}
	return newResult(resp), nil
}

// Download renders a retained image again, possibly in another format.
func (c *Client) Download(ctx context.Context, req *DownloadRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody(encodeForm(req), "", "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/download", contentType, body)
	if err != nil {
		return nil, err
	}
	return newResult(resp), nil
}

// DeleteResult is the response of Delete.
type DeleteResult struct {
	Success bool `json:"success"`
}

// Delete removes a retained image before its retention period ends.
func (c *Client) Delete(ctx context.Context, imageToken string) (*DeleteResult, error) {
	if err := RequireOne([]string{"image_token"}, imageToken); err != nil {
		return nil, err
	}

	body, contentType, err := multipartBody([]formField{{Name: "image_token", Value: imageToken}}, "", "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/delete", contentType, body)
	if err != nil {
		return nil, err
	}

	var out DeleteResult
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return nil, fmt.Errorf("decode delete response: %w", err)
	}
	return &out, nil
}

// AccountStatus is the response of Account.
type AccountStatus struct {
	SubscriptionPlan  string  `json:"subscriptionPlan"`
	SubscriptionState string  `json:"subscriptionState"`
	Credits           float64 `json:"credits"`
}

// Account returns the subscription status and remaining credits.
func (c *Client) Account(ctx context.Context) (*AccountStatus, error) {
	resp, err := c.do(ctx, http.MethodGet, "/account", "", nil)
	if err != nil {
		return nil, err
	}

	var out AccountStatus
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return nil, fmt.Errorf("decode account response: %w", err)
	}
	return &out, nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

// do sends one authenticated request. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader) (*response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.SetBasicAuth(c.apiID, c.apiSecret)
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log := c.logger.With().Str("method", method).Str("endpoint", endpoint).Logger()
	log.Debug().Msg("sending request")

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	log.Debug().
		Int("status", httpResp.StatusCode).
		Int("bytes", len(respBody)).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, newAPIError(httpResp.StatusCode, respBody)
	}

	return &response{status: httpResp.StatusCode, header: httpResp.Header, body: respBody}, nil
}

func newResult(resp *response) *Result {
	return &Result{
		Data:              resp.body,
		ContentType:       resp.header.Get("Content-Type"),
		ImageToken:        resp.header.Get(HeaderImageToken),
		Receipt:           resp.header.Get(HeaderReceipt),
		CreditsCalculated: headerFloat(resp.header, HeaderCreditsCalculated),
		CreditsCharged:    headerFloat(resp.header, HeaderCreditsCharged),
	}
}

func headerFloat(h http.Header, key string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(h.Get(key)), 64)
	if err != nil {
		return 0
	}
	return f
}
