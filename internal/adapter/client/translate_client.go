package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TranslateRequest represents a request to the translation service
type TranslateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format,omitempty"`
	APIKey string `json:"api_key,omitempty"`
}

// DetectedLanguage reports the source language the service detected
type DetectedLanguage struct {
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

// TranslateResponse represents the response from the translation service
type TranslateResponse struct {
	TranslatedText   string            `json:"translatedText"`
	DetectedLanguage *DetectedLanguage `json:"detectedLanguage,omitempty"`
}

// LanguageInfo describes one language supported by the translation service
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranslateClient is an HTTP client for a LibreTranslate-compatible service
type TranslateClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewTranslateClient creates a new translation service client
func NewTranslateClient(baseURL, apiKey string, timeout time.Duration) *TranslateClient {
	return &TranslateClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate sends a single translation request. Source may be an ISO code
// or "auto".
func (c *TranslateClient) Translate(ctx context.Context, text, source, target string) (*TranslateResponse, error) {
	reqBody := TranslateRequest{
		Query:  text,
		Source: source,
		Target: target,
		Format: "text",
		APIKey: c.apiKey,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("translation service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("translation service returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result TranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Ping reports whether the translation service is reachable
func (c *TranslateClient) Ping(ctx context.Context) error {
	_, err := c.Languages(ctx)
	return err
}

// Languages fetches the languages the translation service supports
func (c *TranslateClient) Languages(ctx context.Context) ([]LanguageInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/languages", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var result []LanguageInfo
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}
