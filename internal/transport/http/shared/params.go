package shared

import (
	"strconv"

	dErrors "growthsphere/pkg/domain-errors"
)

// ParseLimit parses an optional ?limit= query value; empty means "use the
// store default". Non-integer values are a client error.
func ParseLimit(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
	}
	return limit, nil
}
