package books

import "strings"

// Filter keeps the books whose name or author contains query, ignoring case.
// A blank query returns list unchanged.
func Filter(list []Book, query string) []Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]Book, 0, len(list))
	for _, b := range list {
		if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.Author), q) {
			out = append(out, b)
		}
	}
	return out
}
