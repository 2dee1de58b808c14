// Package handlers is the HTTP face of the store: thin gin handlers that
// validate input, call the injected store, and shape JSON responses. All
// business invariants live in the store; everything here is presentation
// glue and request validation.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-retail-pos/internal/auth"
	"go-retail-pos/internal/config"
	"go-retail-pos/internal/export"
	"go-retail-pos/internal/store"
)

type Handler struct {
	store    *store.Store
	auth     *auth.Auth
	cfg      *config.Config
	exporter *export.Exporter
}

func New(s *store.Store, a *auth.Auth, cfg *config.Config) *Handler {
	return &Handler{
		store:    s,
		auth:     a,
		cfg:      cfg,
		exporter: export.New(s),
	}
}

// idParam parses the :id path segment; on failure it writes the 400 and
// the caller just returns.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// intQuery reads an integer query parameter with a fallback.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// hasSuffixFold is a case-insensitive filename extension check.
func hasSuffixFold(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), suffix)
}
