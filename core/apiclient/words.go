package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ExtractWords uploads a .txt file and returns the unique words it contains.
func (c *Client) ExtractWords(ctx context.Context, filename string, file io.Reader) ([]string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/words/txt/extract", &buf)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var body struct {
		Words []string `json:"words"`
	}
	if err := c.send(req, &body); err != nil {
		return nil, err
	}
	return body.Words, nil
}

// CheckDuplicates reports which of the candidate words already exist among
// the user's cards.
func (c *Client) CheckDuplicates(ctx context.Context, words []string) (*DuplicateCheck, error) {
	var result DuplicateCheck
	if err := c.do(ctx, http.MethodPost, "/api/words/check-duplicates", words, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ImportWords creates a flashcard for every word, optionally attaching each
// card to the given catalogs.
func (c *Client) ImportWords(ctx context.Context, words []string, catalogIDs []int64) (*ImportResult, error) {
	payload := map[string]any{
		"words":       words,
		"catalog_ids": catalogIDs,
	}
	var result ImportResult
	if err := c.do(ctx, http.MethodPost, "/api/words/import", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
