// Package githubapi is a minimal GitHub client covering the single
// operation the bootstrap pipeline uses: creating a repository for the
// authenticated user.
package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/utkarshg1/pycargo/internal/logger"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// userAgent identifies this tool to the GitHub API, which rejects
// requests without a User-Agent header.
const userAgent = "pycargo"

var (
	// ErrAuthFailed indicates the credential was rejected (invalid or
	// expired token, or one missing the repo scope).
	ErrAuthFailed = errors.New("github authentication failed")

	// ErrNameConflict indicates the repository name is already taken.
	ErrNameConflict = errors.New("github repository name already exists")

	// ErrNetwork indicates the request could not complete (transport
	// failure, timeout, or an unexpected response).
	ErrNetwork = errors.New("github request failed")
)

// RepoCreator is the remote-hosting capability the pipeline depends on.
// Production code uses Client; tests substitute fakes.
type RepoCreator interface {
	// CreateRepository creates a repository with the given name and
	// visibility and returns its clone URL. It is called exactly once per
	// bootstrap run and must never retry internally: it is the only
	// operation that mutates state outside the local machine.
	CreateRepository(ctx context.Context, name string, private bool) (string, error)
}

// Client talks to the GitHub REST API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client for the public GitHub API using the given
// bearer token.
func NewClient(token string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		HTTPClient: http.DefaultClient,
	}
}

// createRequest is the POST /user/repos request body.
type createRequest struct {
	Name    string `json:"name"`
	Private bool   `json:"private"`
}

// createResponse is the subset of the create-repository response the
// pipeline consumes.
type createResponse struct {
	CloneURL string `json:"clone_url"`
}

// apiError is the standard GitHub error response body.
type apiError struct {
	Message string `json:"message"`
}

// CreateRepository performs one POST /user/repos call and maps the
// response onto the pipeline's error kinds: 401/403 to ErrAuthFailed,
// 422 to ErrNameConflict, everything else unexpected to ErrNetwork.
func (c *Client) CreateRepository(ctx context.Context, name string, private bool) (string, error) {
	body, err := json.Marshal(createRequest{Name: name, Private: private})
	if err != nil {
		return "", fmt.Errorf("failed to encode create-repository request: %w", err)
	}

	url := c.BaseURL + "/user/repos"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build create-repository request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	logger.Debug("[DEBUG] POST %s (name=%s, private=%t)\n", url, name, private)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	switch resp.StatusCode {
	case http.StatusCreated:
		var created createResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return "", fmt.Errorf("%w: failed to decode create-repository response: %v", ErrNetwork, err)
		}
		if created.CloneURL == "" {
			return "", fmt.Errorf("%w: create-repository response has no clone_url", ErrNetwork)
		}
		return created.CloneURL, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", fmt.Errorf("%w: %s", ErrAuthFailed, errMessage(resp))
	case http.StatusUnprocessableEntity:
		return "", fmt.Errorf("%w: %q", ErrNameConflict, name)
	default:
		return "", fmt.Errorf("%w: HTTP status %d: %s", ErrNetwork, resp.StatusCode, errMessage(resp))
	}
}

// errMessage extracts the message field from a GitHub error body.
func errMessage(resp *http.Response) string {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
		return "no error detail"
	}
	return apiErr.Message
}
