package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every round trip to the remote store.
const DefaultTimeout = 30 * time.Second

// RTDB is a Store implementation backed by the Firebase Realtime Database
// REST API. Every node is addressed as <base>/<path>.json.
type RTDB struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// RTDBOption configures an RTDB client.
type RTDBOption func(*RTDB)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) RTDBOption {
	return func(r *RTDB) { r.httpClient = c }
}

// WithAuthToken attaches a database auth token to every request.
func WithAuthToken(token string) RTDBOption {
	return func(r *RTDB) { r.authToken = token }
}

// NewRTDB creates a client for the database rooted at baseURL,
// e.g. "https://myproject-default-rtdb.firebaseio.com".
func NewRTDB(baseURL string, opts ...RTDBOption) (*RTDB, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid database URL %q", baseURL)
	}

	r := &RTDB{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// nodeURL builds the REST endpoint for a record path.
func (r *RTDB) nodeURL(path string) string {
	u := r.baseURL + "/" + strings.Trim(path, "/") + ".json"
	if r.authToken != "" {
		u += "?auth=" + url.QueryEscape(r.authToken)
	}
	return u
}

// do performs one round trip and returns the response body.
// Transport failures and non-2xx statuses map to ErrUnavailable.
func (r *RTDB) do(ctx context.Context, op, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.nodeURL(path), reader)
	if err != nil {
		return nil, &Error{Op: op, Path: path, Kind: ErrUnavailable, Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Path: path, Kind: ErrUnavailable, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, Path: path, Kind: ErrUnavailable, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Op:    op,
			Path:  path,
			Kind:  ErrUnavailable,
			Cause: fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return data, nil
}

// FetchAll returns all children under path. The store answers "null" for
// an empty subtree; that decodes to an empty map here.
func (r *RTDB) FetchAll(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	data, err := r.do(ctx, "fetch", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	records := map[string]json.RawMessage{}
	if isJSONNull(data) {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &Error{Op: "fetch", Path: path, Kind: ErrUnavailable, Cause: err}
	}
	return records, nil
}

// FetchOne returns the record at path, or (nil, nil) when the node is absent.
func (r *RTDB) FetchOne(ctx context.Context, path string) (json.RawMessage, error) {
	data, err := r.do(ctx, "fetch", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if isJSONNull(data) {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// Create pushes record as a new child of path. The store generates the
// child key and returns it as {"name": "<key>"}.
func (r *RTDB) Create(ctx context.Context, path string, record any) (string, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return "", &Error{Op: "create", Path: path, Kind: ErrInvalidRecord, Cause: err}
	}

	data, err := r.do(ctx, "create", http.MethodPost, path, body)
	if err != nil {
		return "", err
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &result); err != nil || result.Name == "" {
		return "", &Error{Op: "create", Path: path, Kind: ErrUnavailable, Cause: err}
	}
	return result.Name, nil
}

// Update merges fields into the record at path. A PATCH against an absent
// node would silently create it, so existence is checked first.
func (r *RTDB) Update(ctx context.Context, path string, fields map[string]any) error {
	existing, err := r.FetchOne(ctx, path)
	if err != nil {
		return err
	}
	if existing == nil {
		return &Error{Op: "update", Path: path, Kind: ErrNotFound}
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return &Error{Op: "update", Path: path, Kind: ErrInvalidRecord, Cause: err}
	}

	_, err = r.do(ctx, "update", http.MethodPatch, path, body)
	return err
}

// Delete removes the subtree at path. The store treats deletion of an
// absent node as success, which gives the idempotence callers rely on.
func (r *RTDB) Delete(ctx context.Context, path string) error {
	_, err := r.do(ctx, "delete", http.MethodDelete, path, nil)
	return err
}

func isJSONNull(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
