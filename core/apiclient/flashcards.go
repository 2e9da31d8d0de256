package apiclient

import (
	"context"
	"net/http"
)

// Flashcards returns every card the user has access to, owned and shared.
func (c *Client) Flashcards(ctx context.Context) ([]Flashcard, error) {
	var body struct {
		Flashcards []Flashcard `json:"flashcards"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/flashcards/all", nil, &body); err != nil {
		return nil, err
	}
	return body.Flashcards, nil
}

// Stats returns the user's study statistics.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/flashcards/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ShareFlashcards shares the given cards with other users by email.
func (c *Client) ShareFlashcards(ctx context.Context, flashcardIDs, emails []string) error {
	payload := map[string]any{
		"flashcardIds": flashcardIDs,
		"emails":       emails,
	}
	return c.do(ctx, http.MethodPost, "/api/flashcards/share", payload, nil)
}

// DeleteFlashcards removes the given cards.
func (c *Client) DeleteFlashcards(ctx context.Context, flashcardIDs []string) error {
	payload := map[string]any{
		"flashcardIds": flashcardIDs,
	}
	return c.do(ctx, http.MethodPost, "/api/flashcards/delete", payload, nil)
}
