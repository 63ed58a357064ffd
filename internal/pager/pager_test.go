package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		size       int
		expected   Page
	}{
		{
			name:       "first page of exact multiple",
			totalItems: 30,
			page:       1,
			size:       10,
			expected:   Page{Start: 0, End: 10, CurrentPage: 1, TotalPages: 3, TotalItems: 30, PageSize: 10},
		},
		{
			name:       "last partial page",
			totalItems: 25,
			page:       3,
			size:       10,
			expected:   Page{Start: 20, End: 25, CurrentPage: 3, TotalPages: 3, TotalItems: 25, PageSize: 10},
		},
		{
			name:       "page beyond end clamps to last",
			totalItems: 25,
			page:       7,
			size:       10,
			expected:   Page{Start: 20, End: 25, CurrentPage: 3, TotalPages: 3, TotalItems: 25, PageSize: 10},
		},
		{
			name:       "page below one clamps to first",
			totalItems: 25,
			page:       0,
			size:       10,
			expected:   Page{Start: 0, End: 10, CurrentPage: 1, TotalPages: 3, TotalItems: 25, PageSize: 10},
		},
		{
			name:       "negative page clamps to first",
			totalItems: 25,
			page:       -3,
			size:       10,
			expected:   Page{Start: 0, End: 10, CurrentPage: 1, TotalPages: 3, TotalItems: 25, PageSize: 10},
		},
		{
			name:       "empty collection yields single empty page",
			totalItems: 0,
			page:       5,
			size:       10,
			expected:   Page{Start: 0, End: 0, CurrentPage: 1, TotalPages: 1, TotalItems: 0, PageSize: 10},
		},
		{
			name:       "fewer items than page size",
			totalItems: 3,
			page:       1,
			size:       10,
			expected:   Page{Start: 0, End: 3, CurrentPage: 1, TotalPages: 1, TotalItems: 3, PageSize: 10},
		},
		{
			name:       "non-positive size falls back to one",
			totalItems: 3,
			page:       2,
			size:       0,
			expected:   Page{Start: 1, End: 2, CurrentPage: 2, TotalPages: 3, TotalItems: 3, PageSize: 1},
		},
		{
			name:       "negative total treated as empty",
			totalItems: -5,
			page:       1,
			size:       10,
			expected:   Page{Start: 0, End: 0, CurrentPage: 1, TotalPages: 1, TotalItems: 0, PageSize: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Paginate(tt.totalItems, tt.page, tt.size))
		})
	}
}

func TestPageNavigation(t *testing.T) {
	first := Paginate(30, 1, 10)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	middle := Paginate(30, 2, 10)
	assert.True(t, middle.HasPrev())
	assert.True(t, middle.HasNext())

	last := Paginate(30, 3, 10)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())

	only := Paginate(5, 1, 10)
	assert.False(t, only.HasPrev())
	assert.False(t, only.HasNext())
}

func TestState_SetPageSize(t *testing.T) {
	allowed := []int{10, 25, 50}

	t.Run("allowed size resets page to first", func(t *testing.T) {
		s := NewState(10, allowed)
		s.SetPage(3)

		s.SetPageSize(25)

		page := s.Paginate(100)
		assert.Equal(t, 25, page.PageSize)
		assert.Equal(t, 1, page.CurrentPage)
	})

	t.Run("disallowed size is ignored", func(t *testing.T) {
		s := NewState(10, allowed)
		s.SetPage(2)

		s.SetPageSize(7)

		page := s.Paginate(100)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, 2, page.CurrentPage)
	})

	t.Run("non-positive size is ignored", func(t *testing.T) {
		s := NewState(10, allowed)
		s.SetPageSize(0)
		s.SetPageSize(-5)

		assert.Equal(t, 10, s.PageSize())
	})

	t.Run("empty allowed list permits any positive size", func(t *testing.T) {
		s := NewState(10, nil)
		s.SetPageSize(7)

		assert.Equal(t, 7, s.PageSize())
	})
}

func TestState_StalePageSelfHeals(t *testing.T) {
	s := NewState(10, []int{10, 25, 50})
	s.SetPage(5)

	// collection shrank from 50 items down to 12
	page := s.Paginate(12)

	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 10, page.Start)
	assert.Equal(t, 12, page.End)
}
