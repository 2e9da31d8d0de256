package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// WaitlistParams are the fields for joining the waitlist.
type WaitlistParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Reason   string `json:"reason,omitempty"`
}

// JoinWaitlist submits a waitlist entry. Public endpoint.
func (c *Client) JoinWaitlist(ctx context.Context, params WaitlistParams) error {
	return c.do(ctx, http.MethodPost, "/auth/waitlist", params, nil)
}

// Waitlist lists all pending entries. Admin only.
func (c *Client) Waitlist(ctx context.Context) ([]WaitlistEntry, error) {
	var entries []WaitlistEntry
	if err := c.do(ctx, http.MethodGet, "/auth/waitlist", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ApproveWaitlistEntry approves an entry, creating the account. Admin only.
func (c *Client) ApproveWaitlistEntry(ctx context.Context, entryID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/auth/waitlist/%d/approve", entryID), nil, nil)
}

// DeleteWaitlistEntry removes an entry. Admin only.
func (c *Client) DeleteWaitlistEntry(ctx context.Context, entryID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/auth/waitlist/%d", entryID), nil, nil)
}

// WaitlistStatus reports whether the entry for an email has been approved.
// Public endpoint.
func (c *Client) WaitlistStatus(ctx context.Context, email string) (bool, error) {
	var body struct {
		Email    string `json:"email"`
		Approved bool   `json:"approved"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/waitlist/status/"+email, nil, &body); err != nil {
		return false, err
	}
	return body.Approved, nil
}
