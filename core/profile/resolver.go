package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	profilePath    = "/auth/me"
)

// Resolver translates a bearer token into a UserProfile via the service's
// profile endpoint.
type Resolver struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithHTTPClient replaces the default http.Client. Useful for tests and for
// sharing a transport with the rest of the application.
func WithHTTPClient(client *http.Client) ResolverOption {
	return func(r *Resolver) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// WithTimeout caps how long a single resolution may take. A hung profile
// endpoint surfaces as ErrTransientFailure instead of blocking forever.
// Default is 15s.
func WithTimeout(timeout time.Duration) ResolverOption {
	return func(r *Resolver) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with resolution requests.
func WithUserAgent(ua string) ResolverOption {
	return func(r *Resolver) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// NewResolver creates a resolver for the service rooted at baseURL.
func NewResolver(baseURL string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    defaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// profileResponse mirrors the profile endpoint's JSON body.
type profileResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Username  *string    `json:"username"`
	IsAdmin   bool       `json:"is_admin"`
	CreatedAt *time.Time `json:"created_at"`
}

// Resolve performs a single request to the profile endpoint with the token as
// a bearer credential. It returns ErrAuthenticationFailed on 401/403,
// ErrTransientFailure on network errors and any other non-2xx status.
func (r *Resolver) Resolve(ctx context.Context, token string) (*UserProfile, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+profilePath, nil)
	if err != nil {
		return nil, errors.Join(ErrTransientFailure, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransientFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: profile endpoint returned %d", ErrAuthenticationFailed, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: profile endpoint returned %d", ErrTransientFailure, resp.StatusCode)
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Join(ErrTransientFailure, err)
	}

	return body.toProfile(), nil
}

func (p profileResponse) toProfile() *UserProfile {
	prof := &UserProfile{
		ID:    p.ID,
		Email: p.Email,
		Role:  RoleUser,
	}
	if p.Username != nil {
		prof.Username = *p.Username
	}
	if p.IsAdmin {
		prof.Role = RoleAdmin
	}
	if p.CreatedAt != nil {
		prof.CreatedAt = *p.CreatedAt
	}
	return prof
}
