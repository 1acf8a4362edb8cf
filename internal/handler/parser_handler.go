package handler

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solarops/internal/ubl"
)

// ParserHandler serves the standalone XML parser endpoints. Responses use the
// service's own wire format (bare invoice data, {"error": ...} on failure)
// rather than the main API envelope, so existing callers keep working.
type ParserHandler struct{}

// NewParserHandler creates a new ParserHandler.
func NewParserHandler() *ParserHandler {
	return &ParserHandler{}
}

// Index handles GET /
func (h *ParserHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "XML Invoice Parser",
		"version": "1.0.0",
		"endpoints": gin.H{
			"parse":  "/parse (POST)",
			"health": "/health (GET)",
		},
	})
}

// Health handles GET /health
func (h *ParserHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "xml-parser"})
}

// Parse handles POST /parse
func (h *ParserHandler) Parse(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xml") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only XML files are allowed"})
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return
	}

	invoiceData, err := ubl.Parse(bytes.NewReader(content))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, invoiceData)
}
