package timebank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is a thin wrapper around the TimeBank REST backend. Every method
// performs exactly one HTTP call: no retries, no caching, no request
// deduplication. A zero token means unauthenticated; WithToken derives an
// authenticated client for a session.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// WithToken returns a copy of the client that authenticates every call with
// the given backend token. The receiver is not modified.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnavailable, Message: "Failed to encode request"}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: "Invalid request"}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: "Network error. Please try again later."}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return &Error{Kind: KindUnavailable, Status: res.StatusCode, Message: "Failed to read response"}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &Error{
			Kind:    kindForStatus(res.StatusCode),
			Status:  res.StatusCode,
			Message: errorMessage(res.StatusCode, raw),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindUnavailable, Status: res.StatusCode, Message: "Unexpected response from server"}
	}
	return nil
}

// errorMessage derives a user-presentable message from the backend's
// structured error body. The backend reports field-level validation errors
// as {"field": ["msg", ...]}, plus "detail" and "non_field_errors" keys.
func errorMessage(status int, raw []byte) string {
	var body map[string]json.RawMessage
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		if msg := flattenErrorBody(body); msg != "" {
			return msg
		}
	}

	switch kindForStatus(status) {
	case KindValidation:
		return "Request failed. Please check your information."
	case KindAuth:
		return "Session expired. Please log in again."
	case KindForbidden:
		return "You do not have permission to do that."
	case KindNotFound:
		return "Not found."
	case KindConflict:
		return "This request conflicts with the current state."
	default:
		return "Server error. Please try again later."
	}
}

func flattenErrorBody(body map[string]json.RawMessage) string {
	if detail, ok := body["detail"]; ok {
		var s string
		if json.Unmarshal(detail, &s) == nil && s != "" {
			return s
		}
	}

	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		var msgs []string
		if json.Unmarshal(body[k], &msgs) != nil {
			continue
		}
		for _, m := range msgs {
			if m == "" {
				continue
			}
			if k == "non_field_errors" {
				parts = append(parts, m)
			} else {
				parts = append(parts, fmt.Sprintf("%s: %s", k, m))
			}
		}
	}
	return strings.Join(parts, " ")
}
