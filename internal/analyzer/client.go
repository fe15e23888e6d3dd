// Package analyzer is the HTTP adapter for the external document-analysis
// service. It submits a stored document's URL with a type hint and decodes
// the structured extraction result.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dossier/internal/extraction"
	dErrors "dossier/pkg/domain-errors"
)

// Client calls the analysis service. Failures are coded so the handler
// reports them to the operator before any merge is attempted.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New constructs a client. timeout bounds the whole analysis call; extraction
// backends are slow, so callers should allow for tens of seconds.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type analyzeRequest struct {
	DocumentURL  string `json:"document_url"`
	DocumentType string `json:"document_type"`
}

type analyzeResponse struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Result extraction.Result `json:"result"`
}

// Analyze submits the document and returns the typed extraction result.
func (c *Client) Analyze(ctx context.Context, documentURL string, hint extraction.DocumentType) (extraction.Result, error) {
	body, err := json.Marshal(analyzeRequest{
		DocumentURL:  documentURL,
		DocumentType: string(hint),
	})
	if err != nil {
		return extraction.Result{}, dErrors.Wrap(err, dErrors.CodeInternal, "encode analyze request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/analyze", bytes.NewReader(body))
	if err != nil {
		return extraction.Result{}, dErrors.Wrap(err, dErrors.CodeInternal, "build analyze request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return extraction.Result{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "document analysis service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return extraction.Result{}, dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("document analysis failed with status %d: %s", resp.StatusCode, detail))
	}

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return extraction.Result{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "decode analysis response")
	}
	if decoded.Status != "" && decoded.Status != "done" {
		return extraction.Result{}, dErrors.New(dErrors.CodeUnavailable,
			fmt.Sprintf("document analysis did not complete: %s", firstNonEmpty(decoded.Error, decoded.Status)))
	}

	result := decoded.Result
	// The hint is authoritative for routing when the backend omits a type.
	if result.Type == "" {
		result.Type = hint
	}
	result.Type = extraction.ParseDocumentType(string(result.Type))
	return result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
