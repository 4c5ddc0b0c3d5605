package shelfsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to one bookshelf server. It holds no user state; Register and
// Login return a Session for authenticated calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// APIKey is sent as x-api-key on every request when set.
	APIKey string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// Register creates an account and returns a session for it.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	var resp Response[User]
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token, user: resp.Data}, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var resp Response[User]
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token, user: resp.Data}, nil
}

// NewSession wraps a token obtained elsewhere.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// Welcome calls the public root route and returns its message.
func (c *Client) Welcome(ctx context.Context) (string, error) {
	var resp Response[struct{}]
	if err := c.do(ctx, http.MethodGet, "/", "", nil, &resp, http.StatusOK); err != nil {
		return "", err
	}
	return resp.Message, nil
}
