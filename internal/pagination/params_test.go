package pagination_test

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyjsx/blogapi/internal/pagination"
)

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{name: "absent defaults to one", query: "", want: 1},
		{name: "explicit", query: "?page=4", want: 4},
		{name: "zero", query: "?page=0", wantErr: true},
		{name: "negative", query: "?page=-2", wantErr: true},
		{name: "not a number", query: "?page=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/posts"+tt.query, nil)
			got, err := pagination.ParsePage(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, pagination.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
