// Package api is the HTTP JSON client for the partner REST backend. Every
// call decodes the response and checks it against the expected contract
// before trusting it; a mismatch is reported as a SchemaError rather than a
// raw decode failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the fallback when neither the flag nor the environment
// names a backend.
const DefaultBaseURL = "http://localhost:3000"

var validate = validator.New()

// Client talks to the partner backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a client for the given base URL. An empty baseURL falls
// back to PARTNER_API_BASE_URL, then to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("PARTNER_API_BASE_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do issues a request and decodes the body into out. resource names the
// payload for error messages ("wallet transactions", "profile", ...), and
// failVerb phrases the HTTP-error fallback ("fetch wallet transactions").
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any, resource, failVerb string) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ngrok-skip-browser-warning", "true")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp, failVerb)}
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		log.Printf("api: %s schema validation error: %v", resource, err)
		return &SchemaError{Resource: resource, Err: err}
	}
	if err := validate.Struct(out); err != nil {
		log.Printf("api: %s schema validation error: %v", resource, err)
		return &SchemaError{Resource: resource, Err: err}
	}
	return nil
}

// errorMessage extracts the backend's message field from an error body, or
// falls back to the HTTP status text.
func errorMessage(raw []byte, resp *http.Response, failVerb string) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	statusText := http.StatusText(resp.StatusCode)
	if statusText == "" {
		statusText = resp.Status
	}
	return fmt.Sprintf("Failed to %s: %s", failVerb, statusText)
}

func pageQuery(page int) url.Values {
	if page <= 0 {
		return nil
	}
	return url.Values{"page": []string{fmt.Sprint(page)}}
}
