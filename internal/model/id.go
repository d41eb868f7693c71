package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID coerces caller input into an id.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, value)
	}
	return id, nil
}
