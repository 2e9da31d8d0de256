package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// tokenResponse mirrors the login endpoint's body.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PasswordLogin exchanges an email and password for an access token. The
// token is returned, not stored: pass it to the session store's Login.
func (c *Client) PasswordLogin(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email) // The API uses the email as the login name.
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body tokenResponse
	if err := c.send(req, &body); err != nil {
		if isUnauthorized(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return body.AccessToken, nil
}

// SignupParams are the fields required to create an account.
type SignupParams struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// Signup creates a new account and returns it.
func (c *Client) Signup(ctx context.Context, params SignupParams) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/auth/signup", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Users lists all accounts. Admin only.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/auth/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
