// Package pagination clamps offset/limit query values and describes the
// resulting page through response headers.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit applies when the caller sends no limit or a non-positive one.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 100
)

// Clamp normalizes the requested offset and limit into effective values:
// offsets below zero floor at zero, limits outside (0, MaxLimit] fall back
// to DefaultLimit or MaxLimit respectively.
func Clamp(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return offset, limit
}

// SetHeaders describes the page on the response. total is the full filtered
// count before offset/limit were applied; scopeID carries the access the
// listing was filtered by, empty when the listing is unscoped.
func SetHeaders(w http.ResponseWriter, total, offset, limit int, scopeID string) {
	h := w.Header()
	h.Set("X-Total", strconv.Itoa(total))
	h.Set("X-Offset", strconv.Itoa(offset))
	h.Set("X-Limit", strconv.Itoa(limit))
	h.Set("X-Acesso-ID", scopeID)
}

// QueryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func QueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return v
}
