package helpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit int32 = 20
	MaxPageLimit     int32 = 100
)

// PaginationParams holds the parsed pagination parameters
type PaginationParams struct {
	Limit  int32
	Offset int32
}

// ParsePaginationParams reads ?limit and ?offset, clamping limit to
// MaxPageLimit. ?page is accepted in place of ?offset.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	params := PaginationParams{Limit: DefaultPageLimit}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := SafeParseInt32(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter: %w", err)
		}
		if limit > 0 {
			params.Limit = min(limit, MaxPageLimit)
		}
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := SafeParseInt32(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %w", err)
		}
		if page > 1 {
			params.Offset = (page - 1) * params.Limit
		}
	} else if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := SafeParseInt32(offsetStr)
		if err != nil {
			return params, fmt.Errorf("invalid offset parameter: %w", err)
		}
		if offset < 0 {
			return params, fmt.Errorf("invalid offset parameter: must not be negative")
		}
		params.Offset = offset
	}

	return params, nil
}

// SafeParseInt32 safely parses a string to int32, checking for overflow
func SafeParseInt32(s string) (int32, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, fmt.Errorf("value %d overflows int32", val)
	}
	return int32(val), nil
}
