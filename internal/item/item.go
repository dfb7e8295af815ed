package item

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-sql/civil"
)

// Kind identifies which variant an Item is.
type Kind int

const (
	KindBook Kind = iota + 1
	KindJournal
	KindMagazine
)

func (k Kind) String() string {
	switch k {
	case KindBook:
		return "Book"
	case KindJournal:
		return "Journal"
	case KindMagazine:
		return "Magazine"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Item is one catalog entry. Only the payload field matching Kind is set:
// Author for books, Volume for journals, Issue for magazines.
type Item struct {
	Kind      Kind
	ID        int
	Title     string
	Publisher string
	Published civil.Date

	Author string
	Volume string
	Issue  int
}

// NewBook builds a book entry. Values are taken as given.
func NewBook(id int, title, publisher string, published civil.Date, author string) Item {
	return Item{Kind: KindBook, ID: id, Title: title, Publisher: publisher, Published: published, Author: author}
}

// NewJournal builds a journal entry. Values are taken as given.
func NewJournal(id int, title, publisher string, published civil.Date, volume string) Item {
	return Item{Kind: KindJournal, ID: id, Title: title, Publisher: publisher, Published: published, Volume: volume}
}

// NewMagazine builds a magazine entry. Values are taken as given.
func NewMagazine(id int, title, publisher string, published civil.Date, issue int) Item {
	return Item{Kind: KindMagazine, ID: id, Title: title, Publisher: publisher, Published: published, Issue: issue}
}

// String renders the item the way the console prints it.
func (it Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d, Title: %s, Publisher: %s, Published: %s", it.ID, it.Title, it.Publisher, it.Published)

	switch it.Kind {
	case KindBook:
		b.WriteString(", Author: " + it.Author)
	case KindJournal:
		b.WriteString(", Volume: " + it.Volume)
	case KindMagazine:
		b.WriteString(", Issue: " + strconv.Itoa(it.Issue))
	}
	return b.String()
}
