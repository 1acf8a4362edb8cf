package xmlclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solarops/internal/config"
	"solarops/internal/domain"
)

func newTestClient(url string) *Client {
	return New(&config.XMLParserConfig{URL: url, Token: "secret", TimeoutSecs: 2})
}

func TestParseXML_Success(t *testing.T) {
	var gotToken, gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-API-Token")
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		body, _ := io.ReadAll(file)
		assert.Equal(t, "<Invoice/>", string(body))

		json.NewEncoder(w).Encode(domain.InvoiceData{
			InvoiceNumber: "EF-1",
			Currency:      "RON",
			TotalAmount:   100,
		})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	parsed, err := client.ParseXML(context.Background(), "factura.xml", []byte("<Invoice/>"))

	require.NoError(t, err)
	assert.Equal(t, "EF-1", parsed.InvoiceNumber)
	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "factura.xml", gotFilename)
}

func TestParseXML_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Unauthorized"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ParseXML(context.Background(), "factura.xml", []byte("<Invoice/>"))

	assert.ErrorIs(t, err, domain.ErrParserAuthFailed)
}

func TestParseXML_ParserError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to parse XML invoice: bad xml"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ParseXML(context.Background(), "factura.xml", []byte("not xml"))

	require.ErrorIs(t, err, domain.ErrParserFailed)
	assert.Contains(t, err.Error(), "bad xml")
}

func TestParseXML_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).ParseXML(context.Background(), "factura.xml", []byte("<Invoice/>"))

	assert.ErrorIs(t, err, domain.ErrParserUnavailable)
}

func TestParseXML_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ParseXML(ctx, "factura.xml", []byte("<Invoice/>"))

	assert.ErrorIs(t, err, domain.ErrParserTimeout)
}

func TestParseXML_NoTokenHeaderWhenUnset(t *testing.T) {
	var tokenPresent bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, tokenPresent = r.Header["X-Api-Token"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(&config.XMLParserConfig{URL: srv.URL})
	_, err := client.ParseXML(context.Background(), "factura.xml", []byte("<Invoice/>"))

	require.NoError(t, err)
	assert.False(t, tokenPresent)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status": "healthy", "service": "xml-parser"}`))
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(srv.URL).Health(context.Background()))
}

func TestHealth_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Health(context.Background())

	assert.ErrorIs(t, err, domain.ErrParserUnavailable)
}
