package apiclient

import (
	"context"
	"net/http"
)

// OwnedCatalogs returns the catalogs the user owns.
func (c *Client) OwnedCatalogs(ctx context.Context) ([]Catalog, error) {
	var catalogs []Catalog
	if err := c.do(ctx, http.MethodGet, "/api/catalogs/owned", nil, &catalogs); err != nil {
		return nil, err
	}
	return catalogs, nil
}

// CreateCatalogParams carries the fields for creating a catalog. The API
// requires a name and at least one flashcard.
type CreateCatalogParams struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	TargetLanguageID int64    `json:"target_language_id"`
	FlashcardIDs     []string `json:"flashcard_ids"`
	Visibility       string   `json:"visibility"`
}

// CreateCatalog creates a named catalog from existing cards and returns it.
// Visibility defaults to private when unset.
func (c *Client) CreateCatalog(ctx context.Context, params CreateCatalogParams) (*Catalog, error) {
	if params.Visibility == "" {
		params.Visibility = "private"
	}
	var catalog Catalog
	if err := c.do(ctx, http.MethodPost, "/api/catalogs/create", params, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}
