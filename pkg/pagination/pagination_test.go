package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		size       int
		wantTotal  int
	}{
		{name: "exact multiple", totalItems: 20, page: 1, size: 5, wantTotal: 4},
		{name: "rounds up on remainder", totalItems: 21, page: 1, size: 5, wantTotal: 5},
		{name: "single partial page", totalItems: 3, page: 1, size: 10, wantTotal: 1},
		{name: "empty result set", totalItems: 0, page: 1, size: 10, wantTotal: 0},
		{name: "past the last page", totalItems: 10, page: 3, size: 10, wantTotal: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paging := New(tt.totalItems, tt.page, tt.size)
			assert.Equal(t, tt.wantTotal, paging.TotalPage)
			assert.Equal(t, tt.page, paging.CurrentPage)
			assert.Equal(t, tt.size, paging.Size)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 45, Offset(10, 5))
}
