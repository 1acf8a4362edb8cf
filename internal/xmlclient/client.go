// Package xmlclient talks to the XML invoice parser service over HTTP.
package xmlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"time"

	"solarops/internal/config"
	"solarops/internal/domain"
	"solarops/internal/port"
)

// Client posts XML documents to the parser service's /parse endpoint and
// translates transport failures into domain errors.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a Client from the parser service configuration.
func New(cfg *config.XMLParserConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.URL,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

var _ port.XMLInvoiceParser = (*Client)(nil)

// ParseXML sends the document as a multipart upload and decodes the parsed
// invoice data.
func (c *Client) ParseXML(ctx context.Context, filename string, content []byte) (*domain.InvoiceData, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("xmlclient: build request: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("xmlclient: build request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("xmlclient: build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", &body)
	if err != nil {
		return nil, fmt.Errorf("xmlclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		req.Header.Set("X-API-Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, domain.ErrParserTimeout
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrParserTimeout
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrParserUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrParserAuthFailed
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s", domain.ErrParserFailed, readErrorMessage(resp.Body))
	}

	var parsed domain.InvoiceData
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", domain.ErrParserFailed, err)
	}
	return &parsed, nil
}

// Health reports whether the parser service answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrParserUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", domain.ErrParserUnavailable, resp.StatusCode)
	}
	return nil
}

// readErrorMessage pulls the message out of an {"error": "..."} payload,
// falling back to a generic description.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "failed to parse XML invoice"
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "failed to parse XML invoice"
}
