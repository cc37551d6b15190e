package prizeconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultHTTPTimeout = 10 * time.Second

	// maxDocumentSize bounds how much of a response body is read
	maxDocumentSize = 1 << 20
)

// HTTPConfig holds configuration for an HTTP-backed source
type HTTPConfig struct {
	// URL of the document
	URL string

	// Optional client; defaults to one with a 10s timeout
	Client *http.Client
}

type httpSource struct {
	url    string
	client *http.Client
}

// NewHTTP creates a source that GETs the document from a URL
func NewHTTP(cfg *HTTPConfig) (*httpSource, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.URL == "" {
		return nil, errors.New("url cannot be empty")
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &httpSource{
		url:    cfg.URL,
		client: client,
	}, nil
}

// Fetch performs a GET and returns the body
func (h *httpSource) Fetch(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", h.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, h.url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, h.url, resp.StatusCode)
	}

	// one byte past the limit tells a full document from a cut-off one
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", h.url, err)
	}
	if len(data) > maxDocumentSize {
		return nil, fmt.Errorf("%w: %s is over %d bytes", ErrDocumentTooLarge, h.url, maxDocumentSize)
	}

	format, ok := FormatFromContentType(resp.Header.Get("Content-Type"))
	if !ok {
		format = FormatFromExtension(req.URL.Path)
	}

	return &Payload{
		Data:   data,
		Format: format,
		Origin: h.url,
	}, nil
}

// Describe returns the URL
func (h *httpSource) Describe() string {
	return "http:" + h.url
}
