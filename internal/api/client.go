// Package api is the HTTP/JSON client for the paybatch backend. Each
// portal builds its own client around its own session store; the store it
// was given is the only place a request ever reads a token from.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client performs authenticated requests against one portal of the backend.
type Client struct {
	baseURL string
	http    *http.Client
	session TokenSource
}

// TokenSource supplies the bearer token for outgoing requests.
// *session.Store satisfies it.
type TokenSource interface {
	Get() (string, bool)
}

// New creates a client for the given base URL and token source.
func New(baseURL string, session TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		session: session,
	}
}

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, "", nil, nil, out)
}

// send issues a request with an optional JSON body.
func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	return c.sendWithHeaders(ctx, method, path, body, nil, out)
}

// sendWithHeaders is send with extra request headers attached.
func (c *Client) sendWithHeaders(ctx context.Context, method, path string, body interface{}, headers http.Header, out interface{}) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, nil, contentType, reader, headers, out)
}

// postForm issues a form-encoded POST, used by the login endpoints.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	reader := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, "application/x-www-form-urlencoded", reader, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, headers http.Header, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if token, ok := c.session.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}
	return nil
}
