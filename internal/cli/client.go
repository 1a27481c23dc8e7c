package cli

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/gamemodules/internal/services/auth"
)

// ErrNoKey is returned when a signed request is attempted without a key
var ErrNoKey = errors.New("no signing key; run \"gmod keygen\" or pass --key-file")

// Client is an HTTP client for the API. Requests are signed when a key is set.
type Client struct {
	baseURL    string
	key        ed25519.PrivateKey
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a new API client
func NewClient(baseURL string, key ed25519.PrivateKey) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		key:     key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}
}

// HasKey reports whether requests will be signed
func (c *Client) HasKey() bool {
	return c.key != nil
}

// APIError represents an error response from the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Do performs an HTTP request
func (c *Client) Do(method, path string, body, result any) error {
	url := c.baseURL + path

	var data []byte
	if body != nil {
		var err error
		data, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if c.key != nil {
		c.sign(req, data)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	// Check for error responses
	if resp.StatusCode >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return fmt.Errorf("%s", errResp.Error.String())
		}
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// sign sets the proof headers over the request's method, path, time, a
// fresh nonce and body
func (c *Client) sign(req *http.Request, body []byte) {
	ts := c.now().Truncate(time.Second)
	nonce := uuid.NewString()
	sig := auth.Sign(c.key, req.Method, req.URL.Path, ts, nonce, body)
	req.Header.Set(auth.HeaderSigner, auth.IdentityOf(c.key).String())
	req.Header.Set(auth.HeaderSignature, hex.EncodeToString(sig))
	req.Header.Set(auth.HeaderTimestamp, strconv.FormatInt(ts.Unix(), 10))
	req.Header.Set(auth.HeaderNonce, nonce)
}

// Get performs a GET request
func (c *Client) Get(path string, result any) error {
	return c.Do(http.MethodGet, path, nil, result)
}

// Post performs a POST request
func (c *Client) Post(path string, body, result any) error {
	return c.Do(http.MethodPost, path, body, result)
}

// Put performs a PUT request
func (c *Client) Put(path string, body, result any) error {
	return c.Do(http.MethodPut, path, body, result)
}

// SignedPost performs a POST request that must carry a proof
func (c *Client) SignedPost(path string, body, result any) error {
	if c.key == nil {
		return ErrNoKey
	}
	return c.Post(path, body, result)
}

// SignedPut performs a PUT request that must carry a proof
func (c *Client) SignedPut(path string, body, result any) error {
	if c.key == nil {
		return ErrNoKey
	}
	return c.Put(path, body, result)
}
