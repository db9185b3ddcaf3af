package utils

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrInvalidID is returned when an id is not a positive integer
var ErrInvalidID = errors.New("invalid id")

// GetIDParam reads the ":id" path parameter as a positive integer
func GetIDParam(c *gin.Context) (uint, error) {
	return ParseID(c.Param("id"))
}

// ParseID parses a decimal id; only plain digits are accepted
func ParseID(raw string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidID
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, ErrInvalidID
		}
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
