package testutil

import (
	"io"
	"log/slog"
	"time"

	"librarycatalog/internal/item"

	"github.com/golang-sql/civil"
)

// Date is shorthand for a civil.Date literal.
func Date(year int, month time.Month, day int) civil.Date {
	return civil.Date{Year: year, Month: month, Day: day}
}

// TestBook is a book fixture for testing
var TestBook = item.NewBook(1, "Dune", "Chilton", Date(1965, time.August, 1), "Herbert")

// TestJournal is a journal fixture for testing
var TestJournal = item.NewJournal(2, "Nature", "Springer", Date(2024, time.March, 14), "626")

// TestMagazine is a magazine fixture for testing
var TestMagazine = item.NewMagazine(3, "Wired", "Conde", Date(2023, time.December, 5), 12)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
