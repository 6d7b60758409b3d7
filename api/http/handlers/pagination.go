package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

var errBadPage = errors.New("limit and offset must be non-negative integers")

// pageParams reads ?limit= and ?offset=. A limit above maxPageSize is clamped, zero
// falls back to the default; anything that is not a non-negative integer is rejected.
func pageParams(c *fiber.Ctx) (limit, offset int, err error) {
	limit, offset = defaultPageSize, 0
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return 0, 0, errBadPage
		}
		if n > 0 {
			limit = min(n, maxPageSize)
		}
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return 0, 0, errBadPage
		}
		offset = n
	}
	return limit, offset, nil
}
