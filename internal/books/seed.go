package books

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultSeed returns the five books the store starts with when no seed file
// is configured.
func DefaultSeed() []Book {
	return []Book{
		{ID: 1, Name: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", Pages: 417, PublishDate: "1967-05-30"},
		{ID: 2, Name: "The Lord of the Rings", Author: "J.R.R. Tolkien", Pages: 1178, PublishDate: "1954-07-29"},
		{ID: 3, Name: "1984", Author: "George Orwell", Pages: 328, PublishDate: "1949-06-08"},
		{ID: 4, Name: "Brave New World", Author: "Aldous Huxley", Pages: 288, PublishDate: "1932-01-01"},
		{ID: 5, Name: "Don Quixote", Author: "Miguel de Cervantes", Pages: 863, PublishDate: "1605-01-16"},
	}
}

type seedFile struct {
	Books []seedBook `toml:"book"`
}

type seedBook struct {
	ID          int    `toml:"id"`
	Name        string `toml:"name"`
	Author      string `toml:"author"`
	Pages       int    `toml:"pages"`
	PublishDate string `toml:"publish_date"`
}

// LoadSeed reads an initial collection from a TOML file of [[book]] tables.
// The file is only read, never written back.
func LoadSeed(path string) ([]Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var raw seedFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[int]struct{}, len(raw.Books))
	out := make([]Book, 0, len(raw.Books))
	for i, sb := range raw.Books {
		if sb.ID <= 0 {
			return nil, fmt.Errorf("seed book %d: id must be positive, got %d", i+1, sb.ID)
		}
		if sb.ID > maxSeedID {
			return nil, fmt.Errorf("seed book %d: id must be at most %d, got %d", i+1, maxSeedID, sb.ID)
		}
		if _, dup := seen[sb.ID]; dup {
			return nil, fmt.Errorf("seed book %d: %w: %d", i+1, errDuplicateID, sb.ID)
		}
		seen[sb.ID] = struct{}{}
		out = append(out, Book{
			ID:          sb.ID,
			Name:        strings.TrimSpace(sb.Name),
			Author:      strings.TrimSpace(sb.Author),
			Pages:       sb.Pages,
			PublishDate: strings.TrimSpace(sb.PublishDate),
		})
	}
	return out, nil
}

var errDuplicateID = errors.New("duplicate id")

// maxSeedID leaves room for new ids above the largest seeded one.
const maxSeedID = math.MaxInt32
