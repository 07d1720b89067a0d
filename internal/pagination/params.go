package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParsePage reads the 1-based "page" query parameter. A missing parameter
// means page 1.
func ParsePage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: page must be a positive integer", ErrInvalidArgument)
	}
	return page, nil
}
