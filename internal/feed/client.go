package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://www.juvenis.net/tr/jobjson/63kf52ur8x4rw7go"

const invalidRangeMsg = "Missing or invalid startDate/endDate. Expected YYYY-MM-DD or YYYYMMDD."

// Client fetches date-bounded windows of raw applications from the upstream
// feed and reshapes every record into a curated Row.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a feed client with sane defaults.
func NewClient(opts ...func(*Client)) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBaseURL overrides the default feed base URL (useful for tests).
func WithBaseURL(url string) func(*Client) {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient overrides the internal HTTP client.
func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the transport timeout for upstream calls.
func WithTimeout(d time.Duration) func(*Client) {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// FetchRows retrieves all applications between startDate and endDate, both
// inclusive, accepting either YYYY-MM-DD or YYYYMMDD. Failures are typed:
// *ValidationError for bad dates, *UpstreamError for non-2xx responses and
// *TransportError for network or decode faults.
func (c *Client) FetchRows(ctx context.Context, startDate, endDate string) ([]Row, error) {
	start, ok := NormalizeRequestDate(startDate)
	if !ok {
		return nil, &ValidationError{Msg: invalidRangeMsg}
	}
	end, ok := NormalizeRequestDate(endDate)
	if !ok {
		return nil, &ValidationError{Msg: invalidRangeMsg}
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, start, end)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	records, err := decodeRecords(payload)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, Transform(record))
	}
	return rows, nil
}

// decodeRecords unwraps the upstream body, which is either a bare JSON array
// or an object exposing the array under "data". Any other valid-JSON shape
// resolves to an empty batch rather than an error, and non-object array
// elements degrade to empty records.
func decodeRecords(payload []byte) ([]map[string]any, error) {
	var body any
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	var raw []any
	switch v := body.(type) {
	case []any:
		raw = v
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			raw = data
		}
	}

	records := make([]map[string]any, 0, len(raw))
	for _, element := range raw {
		record, ok := element.(map[string]any)
		if !ok {
			record = map[string]any{}
		}
		records = append(records, record)
	}
	return records, nil
}
