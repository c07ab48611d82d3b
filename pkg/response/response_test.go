package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedMetadata(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"beyond last page", 4, 10, 25, 3, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty result", 1, 10, 0, 0, false, false},
		{"page two of empty result", 2, 10, 0, 0, false, false},
		{"single row", 1, 1, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginated([]string{}, tt.page, tt.size, tt.total, "ok")
			assert.True(t, p.Success)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.size, p.Size)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.False(t, p.Timestamp.IsZero())
		})
	}
}

func TestNewPaginatedNilDataBecomesEmptySlice(t *testing.T) {
	p := NewPaginated[int](nil, 1, 10, 0, "ok")
	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
}

func TestNewPaginatedKeepsRowOrder(t *testing.T) {
	p := NewPaginated([]string{"c", "a", "b"}, 1, 10, 3, "ok")
	assert.Equal(t, []string{"c", "a", "b"}, p.Data)
}

func TestSingleAndEmpty(t *testing.T) {
	single := Single(map[string]string{"id": "x"}, "created")
	assert.True(t, single.Success)
	assert.Equal(t, "created", single.Message)
	assert.NotNil(t, single.Data)
	assert.Nil(t, single.Error)

	empty := Empty("deleted")
	assert.True(t, empty.Success)
	assert.Nil(t, empty.Data)
}
