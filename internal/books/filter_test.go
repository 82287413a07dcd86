package books_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/bookshelf/internal/books"
)

func TestFilter(t *testing.T) {
	list := books.DefaultSeed()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty returns all", "", []int{1, 2, 3, 4, 5}},
		{"blank returns all", "   ", []int{1, 2, 3, 4, 5}},
		{"name match", "lord", []int{2}},
		{"author match", "orwell", []int{3}},
		{"case insensitive", "HUXLEY", []int{4}},
		{"trimmed", "  quixote ", []int{5}},
		{"matches name or author", "or", []int{2, 3, 4}},
		{"no match", "zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(books.Filter(list, tt.query)))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	list := books.DefaultSeed()
	_ = books.Filter(list, "orwell")
	assert.Len(t, list, 5)
	assert.Equal(t, 1, list[0].ID)
}
