package item

import (
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
)

func TestItem_String(t *testing.T) {
	date := civil.Date{Year: 2024, Month: time.January, Day: 1}

	t.Run("book", func(t *testing.T) {
		b := NewBook(1, "T", "P", date, "A")
		assert.Equal(t, "ID: 1, Title: T, Publisher: P, Published: 2024-01-01, Author: A", b.String())
	})

	t.Run("journal", func(t *testing.T) {
		j := NewJournal(2, "Nature", "Springer", date, "XII")
		assert.Equal(t, "ID: 2, Title: Nature, Publisher: Springer, Published: 2024-01-01, Volume: XII", j.String())
	})

	t.Run("magazine", func(t *testing.T) {
		m := NewMagazine(3, "Wired", "Conde", date, 42)
		assert.Equal(t, "ID: 3, Title: Wired, Publisher: Conde, Published: 2024-01-01, Issue: 42", m.String())
	})

	t.Run("accepts values as given", func(t *testing.T) {
		m := NewMagazine(-7, "X", "Y", civil.Date{Year: 999, Month: time.March, Day: 4}, -1)
		assert.Equal(t, -7, m.ID)
		assert.Equal(t, "ID: -7, Title: X, Publisher: Y, Published: 0999-03-04, Issue: -1", m.String())
	})
}

func TestConstructors_SetKind(t *testing.T) {
	var d civil.Date
	assert.Equal(t, KindBook, NewBook(1, "a", "b", d, "c").Kind)
	assert.Equal(t, KindJournal, NewJournal(1, "a", "b", d, "c").Kind)
	assert.Equal(t, KindMagazine, NewMagazine(1, "a", "b", d, 3).Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Book", KindBook.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
