package edusdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the EduTrack academic records service.
// It provides access to unauthenticated operations and can create
// authenticated Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new EduTrack service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account with the given details.
func (c *Client) Register(ctx context.Context, name, email, password, role string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	var ack MessageResponse
	return decodeJSON(resp, &ack, http.StatusOK)
}

// Login exchanges credentials for a bearer token and returns an
// authenticated Session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{client: c, token: tokenResp.Token}, nil
}

// NewSessionFromToken creates an authenticated session from an existing
// bearer token, for example one stored from a previous login.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// ListCourses fetches the public course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]CourseInfo, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/api/courses", "", nil)
	if err != nil {
		return nil, err
	}

	var list ListCoursesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Courses, nil
}

// Livez checks the liveness probe endpoint.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz checks the readiness probe endpoint. A degraded service yields
// an *APIError with StatusCode 503.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/readyz", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
