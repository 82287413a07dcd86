// Package form validates the book form before anything reaches the store.
// Validation is a presentation concern: the store itself accepts any fields.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/five82/bookshelf/internal/books"
)

// Field keys, in form order.
const (
	FieldName        = "name"
	FieldAuthor      = "author"
	FieldPages       = "pages"
	FieldPublishDate = "publishDate"
)

// Order lists the form fields top to bottom.
var Order = []string{FieldName, FieldAuthor, FieldPages, FieldPublishDate}

// Bounds shared by the validator tags and the messages.
const (
	MinPages   = 1
	MaxPages   = 9999
	DateLayout = "2006-01-02"
)

// Input is the raw text typed into the form.
type Input struct {
	Name        string `validate:"required,min=3"`
	Author      string `validate:"required,min=2"`
	Pages       string `validate:"required,number"`
	PublishDate string `validate:"required,datetime=2006-01-02"`
}

// Errors maps a field key to its first validation message.
type Errors map[string]string

// Empty reports whether there are no messages.
func (e Errors) Empty() bool {
	return len(e) == 0
}

var validate = validator.New()

var labels = map[string]string{
	"Name":        "Name",
	"Author":      "Author",
	"Pages":       "Pages",
	"PublishDate": "Publish date",
}

var keys = map[string]string{
	"Name":        FieldName,
	"Author":      FieldAuthor,
	"Pages":       FieldPages,
	"PublishDate": FieldPublishDate,
}

// FromBook fills the form for editing b.
func FromBook(b books.Book) Input {
	return Input{
		Name:        b.Name,
		Author:      b.Author,
		Pages:       strconv.Itoa(b.Pages),
		PublishDate: b.PublishDate,
	}
}

// Validate trims the input and checks it. When the returned Errors is empty
// the Fields are ready to hand to the store.
func (in Input) Validate() (books.Fields, Errors) {
	in = in.trimmed()
	errs := Errors{}

	var verrs validator.ValidationErrors
	if err := validate.Struct(in); errors.As(err, &verrs) {
		for _, fe := range verrs {
			key := keys[fe.StructField()]
			if _, seen := errs[key]; !seen {
				errs[key] = message(fe.StructField(), fe.Tag(), fe.Param())
			}
		}
	}

	var pages int
	if _, bad := errs[FieldPages]; !bad {
		n, err := strconv.Atoi(in.Pages)
		switch {
		case err != nil:
			// number already matched, so this can only be overflow.
			errs[FieldPages] = message("Pages", "max", strconv.Itoa(MaxPages))
		default:
			err := validate.Var(n, fmt.Sprintf("min=%d,max=%d", MinPages, MaxPages))
			if errors.As(err, &verrs) && len(verrs) > 0 {
				errs[FieldPages] = message("Pages", verrs[0].Tag(), verrs[0].Param())
			}
			pages = n
		}
	}

	if !errs.Empty() {
		return books.Fields{}, errs
	}
	return books.Fields{
		Name:        in.Name,
		Author:      in.Author,
		Pages:       pages,
		PublishDate: in.PublishDate,
	}, nil
}

func (in Input) trimmed() Input {
	return Input{
		Name:        strings.TrimSpace(in.Name),
		Author:      strings.TrimSpace(in.Author),
		Pages:       strings.TrimSpace(in.Pages),
		PublishDate: strings.TrimSpace(in.PublishDate),
	}
}

func message(field, tag, param string) string {
	label := labels[field]
	switch tag {
	case "required":
		return label + " is required"
	case "min":
		if field == "Pages" {
			return fmt.Sprintf("%s must be at least %s", label, param)
		}
		return fmt.Sprintf("%s must have at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "number":
		return label + " must be a whole number"
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	default:
		return label + " is invalid"
	}
}
