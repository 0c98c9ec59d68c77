package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// GetIDParam parses the :id path parameter
func GetIDParam(c *gin.Context) (uint, error) {
	return GetUintParam(c, "id")
}

// GetUintParam parses a positive integer path parameter
func GetUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter %q: %w", name, raw, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid %s parameter: must be greater than zero", name)
	}
	return uint(id), nil
}

// GetPaginationParams reads page and limit query params with defaults.
// limit is capped at MaxLimit.
func GetPaginationParams(c *gin.Context) (int, int) {
	page := DefaultPage
	limit := DefaultLimit

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}
