package books

// Book is a single record in the collection.
type Book struct {
	ID          int
	Name        string
	Author      string
	Pages       int
	PublishDate string // YYYY-MM-DD
}

// Fields carries everything needed to create a book. The id is always
// assigned by the store.
type Fields struct {
	Name        string
	Author      string
	Pages       int
	PublishDate string
}

// Patch describes a partial update. Nil fields are left untouched.
type Patch struct {
	ID          int
	Name        *string
	Author      *string
	Pages       *int
	PublishDate *string
}

// PatchFrom builds a patch that overwrites every field of the book with id.
func PatchFrom(id int, f Fields) Patch {
	return Patch{
		ID:          id,
		Name:        &f.Name,
		Author:      &f.Author,
		Pages:       &f.Pages,
		PublishDate: &f.PublishDate,
	}
}

func (p Patch) apply(b Book) Book {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.PublishDate != nil {
		b.PublishDate = *p.PublishDate
	}
	return b
}
