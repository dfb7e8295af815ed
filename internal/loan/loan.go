package loan

import (
	"errors"
	"time"

	"librarycatalog/internal/item"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// DefaultPeriodDays is the loan length used when none is configured.
const DefaultPeriodDays = 7

// ErrOverdue is reported when a transaction is past its due date and not returned.
var ErrOverdue = errors.New("item is overdue")

//go:generate mockgen -destination=mocks/mock_clock.go -package=mocks librarycatalog/internal/loan Clock

// Clock supplies the current calendar date.
type Clock interface {
	Today() civil.Date
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Today() civil.Date {
	return civil.DateOf(time.Now())
}

// Transaction is a single simulated loan of one catalog item.
type Transaction struct {
	ID         uuid.UUID
	Item       item.Item
	BorrowDate civil.Date
	DueDate    civil.Date
	Returned   bool
}

func newTransaction(it item.Item, borrowed civil.Date, periodDays int) *Transaction {
	return &Transaction{
		ID:         uuid.New(),
		Item:       it,
		BorrowDate: borrowed,
		DueDate:    borrowed.AddDays(periodDays),
	}
}

// CheckOverdue reports ErrOverdue when today is strictly after the due date
// and the item has not been returned.
func (t *Transaction) CheckOverdue(today civil.Date) error {
	if today.After(t.DueDate) && !t.Returned {
		return ErrOverdue
	}
	return nil
}

func (t *Transaction) Return() {
	t.Returned = true
}
