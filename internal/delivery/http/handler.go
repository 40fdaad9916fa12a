package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nutriscan/backend/internal/domain"
	"github.com/nutriscan/backend/internal/usecase"
)

// barcodeRegex matches ASCII digits only, 4-14 characters (EAN-8/13, UPC
// and short codes all fit in this range).
var barcodeRegex = regexp.MustCompile(`^\d{4,14}$`)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.ProductService
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.ProductService) *Handler {
	return &Handler{service: service}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "NutriScan API",
	})
}

// coerceString renders a decoded JSON value as a string. Numbers are
// formatted without an exponent so numeric barcodes survive intact.
func coerceString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

// ScanBarcode handles product lookup by barcode.
// Accepts JSON: { "barcode": "1234567890123" }
func (h *Handler) ScanBarcode(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'barcode' field in request body"})
		return
	}

	raw, exists := body["barcode"]
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'barcode' field in request body"})
		return
	}

	value, ok := coerceString(raw)
	barcode := strings.TrimSpace(value)
	if !ok || barcode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode cannot be empty"})
		return
	}

	if !barcodeRegex.MatchString(barcode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid barcode format. Must be 4-14 digits."})
		return
	}

	result, err := h.service.LookupBarcode(c.Request.Context(), barcode)
	if err != nil {
		status, message := mapLookupError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchProduct handles product lookup by name.
// Accepts JSON: { "name": "chocolate" }
func (h *Handler) SearchProduct(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'name' field in request body"})
		return
	}

	raw, exists := body["name"]
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'name' field in request body"})
		return
	}

	value, ok := coerceString(raw)
	name := strings.TrimSpace(value)
	if !ok || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name cannot be empty"})
		return
	}

	result, err := h.service.SearchByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search API failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// mapLookupError translates barcode-lookup failures into HTTP status codes.
// Timeout, unreachable, and generic upstream failures get distinct codes so
// callers can tell a slow upstream from a dead one.
func mapLookupError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, domain.ErrEmptyProduct):
		return http.StatusNotFound, "Product found but contains no usable data"
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return http.StatusGatewayTimeout, "External API timed out. Please try again."
	case errors.Is(err, domain.ErrUpstreamUnreachable):
		return http.StatusBadGateway, "Unable to reach external API. Check your connection."
	default:
		return http.StatusInternalServerError, "API request failed: " + err.Error()
	}
}
