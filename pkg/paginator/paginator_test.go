package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateQuery_Adjust(t *testing.T) {
	tests := []struct {
		name       string
		in         PaginateQuery
		wantPage   int
		wantLimit  int64
		wantOffset int64
	}{
		{name: "defaults", in: PaginateQuery{}, wantPage: 1, wantLimit: DefaultLimit, wantOffset: 0},
		{name: "clamped", in: PaginateQuery{Page: 3, Limit: 1000}, wantPage: 3, wantLimit: MaxLimit, wantOffset: 200},
		{name: "as is", in: PaginateQuery{Page: 2, Limit: 10}, wantPage: 2, wantLimit: 10, wantOffset: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
			assert.Equal(t, tt.wantOffset, q.Offset())
		})
	}
}

func TestPaginator_ToResponse(t *testing.T) {
	p := Paginator{Total: 31, Count: 15, PerPage: 15, CurrentPage: 2}
	r := p.ToResponse()
	assert.Equal(t, 3, r.TotalPages)
	assert.True(t, r.HasNext)
	assert.True(t, r.HasPrev)

	last := Paginator{Total: 31, Count: 1, PerPage: 15, CurrentPage: 3}
	assert.False(t, last.HasNextPage())
	assert.Equal(t, 0, Paginator{}.TotalPages())
}
