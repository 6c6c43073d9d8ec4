package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/contas/internal/pagination"
)

func TestClamp(t *testing.T) {
	type testCase struct {
		name       string
		offset     int
		limit      int
		wantOffset int
		wantLimit  int
	}

	tests := []testCase{
		{name: "Passthrough", offset: 20, limit: 50, wantOffset: 20, wantLimit: 50},
		{name: "LimitCapped", offset: 0, limit: 500, wantOffset: 0, wantLimit: 100},
		{name: "LimitAtCap", offset: 0, limit: 100, wantOffset: 0, wantLimit: 100},
		{name: "ZeroLimitDefaults", offset: 0, limit: 0, wantOffset: 0, wantLimit: 10},
		{name: "NegativeLimitDefaults", offset: 0, limit: -5, wantOffset: 0, wantLimit: 10},
		{name: "NegativeOffsetFloored", offset: -3, limit: 10, wantOffset: 0, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := pagination.Clamp(tt.offset, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestSetHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	pagination.SetHeaders(rec, 42, 10, 20, "b71f3d9a-0000-0000-0000-000000000001")

	assert.Equal(t, "42", rec.Header().Get("X-Total"))
	assert.Equal(t, "10", rec.Header().Get("X-Offset"))
	assert.Equal(t, "20", rec.Header().Get("X-Limit"))
	assert.Equal(t, "b71f3d9a-0000-0000-0000-000000000001", rec.Header().Get("X-Acesso-ID"))
}

func TestSetHeaders_UnscopedListing(t *testing.T) {
	rec := httptest.NewRecorder()
	pagination.SetHeaders(rec, 3, 0, 10, "")

	assert.Equal(t, "", rec.Header().Get("X-Acesso-ID"))
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/acessos?offset=7&limit=abc", nil)

	assert.Equal(t, 7, pagination.QueryInt(req, "offset", 0))
	assert.Equal(t, 10, pagination.QueryInt(req, "limit", 10))
	assert.Equal(t, 10, pagination.QueryInt(req, "missing", 10))
}
