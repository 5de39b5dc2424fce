// Package translate calls the MyMemory translation API (free, keyless) for
// the "ترجمه فارسی" / "ترجمه انگلیسی" commands.
// client.go is the HTTP collaborator; failures and unusable responses are
// both recoverable at the handler.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Client talks to the MyMemory GET endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a translation client. baseURL points at the MyMemory
// /get endpoint (overridable for tests).
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// myMemoryResponse mirrors the part of the API answer the bot reads.
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate translates text between the detected source language and
// target. When the detected source already equals the target the text is
// returned untouched without a network call.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	source := DetectSource(text)
	if source == target {
		return text, nil
	}

	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", source+"|"+target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate API returned status %d", resp.StatusCode)
	}

	var body myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}
	if body.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("translate response has no translation")
	}

	return body.ResponseData.TranslatedText, nil
}
