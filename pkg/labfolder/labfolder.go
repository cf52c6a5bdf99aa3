// Package labfolder is a client for the labfolder electronic lab notebook
// REST API (v2). It covers session management, group administration, and
// read access to the folders, projects, and entries of a notebook, plus the
// two mutating operations lab admins need most: transferring record
// ownership and queueing PDF exports.
//
// A Client is stateful: Login establishes a bearer-token session that all
// other operations reuse, and Logout invalidates it. The client never
// retries and never issues concurrent requests on its own; callers that
// share a Client across goroutines must serialize access themselves.
package labfolder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultBaseURL is the hosted labfolder service.
	DefaultBaseURL = "https://labfolder.labforward.app/api/v2"

	// DefaultPageSize matches the server-side ceiling on records per page.
	// Asking for more is pointless; the server truncates to this anyway.
	DefaultPageSize = 20

	contentTypeJSON      = "application/json"
	contentTypeJSONPatch = "application/json-patch+json"
)

// Config collects the options for constructing a Client. The zero value
// selects the hosted service, the server's page-size ceiling, a plain HTTP
// client, and a no-echo terminal password prompt.
type Config struct {
	// BaseURL is the API address, without a trailing slash. Point it at a
	// self-hosted instance or an httptest server in tests.
	BaseURL string

	// PageSize is the number of records requested per page during listing.
	// Values above the server's ceiling waste nothing but gain nothing.
	PageSize int

	// HTTPClient performs the requests. The default applies no timeout,
	// matching the transport defaults; callers wanting deadlines should
	// use request contexts or supply their own client.
	HTTPClient *http.Client

	// Logger receives structured request and session logs.
	Logger hclog.Logger

	// PasswordPrompt supplies the secret for Login. The default reads from
	// the controlling terminal without echo.
	PasswordPrompt PasswordPromptFunc
}

func (c *Config) setDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	if c.PasswordPrompt == nil {
		c.PasswordPrompt = TerminalPasswordPrompt
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must use http or https scheme, got %q", u.Scheme)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	return nil
}

// Client is a labfolder API client. Construct one with New, authenticate
// with Login, and release the session with Logout.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	logger     hclog.Logger
	prompt     PasswordPromptFunc

	// Session state. me being non-nil is what "logged in" means.
	me        *User
	group     *Group
	token     string
	userAgent string
}

// New returns a Client ready to Login. A nil cfg selects all defaults.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("labfolder: %w", err)
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
		prompt:     cfg.PasswordPrompt,
	}, nil
}

// BaseURL returns the API address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Me returns a copy of the authenticated user's profile, or nil when the
// client is not logged in. After SelectGroup, the copy carries the user's
// membership id in the active group.
func (c *Client) Me() *User {
	if c.me == nil {
		return nil
	}
	u := *c.me
	return &u
}

// ActiveGroup returns a copy of the group selected with SelectGroup, or nil
// when none is active.
func (c *Client) ActiveGroup() *Group {
	if c.group == nil {
		return nil
	}
	g := *c.group
	g.Members = append([]User(nil), c.group.Members...)
	return &g
}

func (c *Client) checkLoggedIn() error {
	if c.me == nil {
		return ErrNotLoggedIn
	}
	return nil
}

// apiRequest describes a single call to the remote API.
type apiRequest struct {
	method      string
	path        string
	query       url.Values
	body        any
	contentType string // defaults to application/json when body is set
	status      int    // the success status this endpoint answers with
	noAuth      bool   // login is the only call without a bearer token
}

// do performs one API request and decodes the response into out when out is
// non-nil. Any status other than the expected one yields an *APIError built
// from the response body. There are no retries; every call maps to exactly
// one HTTP request.
func (c *Client) do(ctx context.Context, r apiRequest, out any) error {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("labfolder: encoding %s %s request: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("labfolder: building %s %s request: %w", r.method, r.path, err)
	}

	req.Header.Set("Accept", contentTypeJSON)
	if r.body != nil {
		ct := r.contentType
		if ct == "" {
			ct = contentTypeJSON
		}
		req.Header.Set("Content-Type", ct)
	}
	if !r.noAuth {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("labfolder: %s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("labfolder: %s %s: reading response: %w", r.method, r.path, err)
	}

	c.logger.Debug("api request",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode != r.status {
		return newAPIError(r.method, r.path, resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("labfolder: %s %s: decoding response: %w", r.method, r.path, err)
		}
	}
	return nil
}
