package callsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/rshade/callhistory/internal/calls"
	"github.com/rshade/callhistory/internal/logging"
	"github.com/rshade/callhistory/internal/pagination"
)

// DefaultTimeout bounds each HTTP request when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// Client talks to the calls GraphQL API.
type Client struct {
	endpoint   string
	token      string
	httpClient *resty.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.SetTimeout(d)
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logging.ComponentLogger(logger, "callsapi") }
}

// NewClient creates a client for the GraphQL endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	httpClient := resty.New()
	httpClient.SetTimeout(DefaultTimeout)
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader("Accept", "application/json")

	c := &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the GraphQL URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// SetToken replaces the bearer token, for example after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// PaginatedCalls fetches calls [req.Offset, req.Offset+req.Limit).
func (c *Client) PaginatedCalls(ctx context.Context, req pagination.PageRequest) (*calls.PageResult, error) {
	var data struct {
		PaginatedCalls *calls.PageResult `json:"paginatedCalls"`
	}
	vars := map[string]any{"offset": req.Offset, "limit": req.Limit}
	if err := c.do(ctx, "paginatedCalls", paginatedCallsQuery, vars, &data); err != nil {
		return nil, err
	}
	return data.PaginatedCalls, nil
}

// Call fetches a single call by ID.
func (c *Client) Call(ctx context.Context, id string) (*calls.CallRecord, error) {
	var data struct {
		Call *calls.CallRecord `json:"call"`
	}
	if err := c.do(ctx, "call", callQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Call == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return data.Call, nil
}

// Login exchanges credentials for a session and adopts its access token.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var data struct {
		Login *Session `json:"login"`
	}
	vars := map[string]any{"input": map[string]string{"username": username, "password": password}}
	if err := c.do(ctx, "login", loginMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.Login == nil || data.Login.AccessToken == "" {
		return nil, fmt.Errorf("%w: login returned no access token", ErrUnauthorized)
	}
	c.token = data.Login.AccessToken
	return data.Login, nil
}

func (c *Client) do(ctx context.Context, operation, query string, vars map[string]any, out any) error {
	log := c.logger.With().
		Str("operation", operation).
		Logger()
	start := time.Now()

	var envelope graphqlResponse
	r := c.httpClient.R().
		SetContext(ctx).
		SetBody(graphqlRequest{Query: query, Variables: vars}).
		SetResult(&envelope)
	if c.token != "" {
		r.SetAuthToken(c.token)
	}

	resp, err := r.Post(c.endpoint)
	if err != nil {
		log.Debug().Err(err).Msg("graphql request failed")
		return fmt.Errorf("%s request failed: %w", operation, err)
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("graphql request completed")

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return ErrUnauthorized
	case !resp.IsSuccess():
		return fmt.Errorf("%w: %s returned %d: %s", ErrHTTPStatus, operation, resp.StatusCode(), resp.String())
	}

	if len(envelope.Errors) > 0 {
		if envelope.Errors[0].unauthorized() {
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: %s: %s", ErrGraphQL, operation, joinMessages(envelope.Errors))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err = json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", operation, err)
	}
	return nil
}
