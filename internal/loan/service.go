package loan

import (
	"fmt"
	"log/slog"

	"librarycatalog/internal/item"
)

// Finder looks up catalog items by id.
type Finder interface {
	FindByID(id int) (item.Item, error)
}

// Result is the outcome of a borrow. Overdue holds ErrOverdue when the
// overdue check fired; the transaction is returned either way.
type Result struct {
	Transaction *Transaction
	Overdue     error
}

type Service struct {
	items      Finder
	clock      Clock
	periodDays int
	logger     *slog.Logger
}

func NewService(items Finder, clock Clock, periodDays int, logger *slog.Logger) *Service {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{items: items, clock: clock, periodDays: periodDays, logger: logger}
}

// Borrow runs a complete loan cycle for the item with the given id: the
// transaction is opened, checked for overdue and returned in one call.
// A missing item yields the finder's error and no transaction.
func (s *Service) Borrow(id int) (Result, error) {
	it, err := s.items.FindByID(id)
	if err != nil {
		return Result{}, fmt.Errorf("borrow item %d: %w", id, err)
	}

	tx := newTransaction(it, s.clock.Today(), s.periodDays)
	s.logger.Debug("loan opened", "tx", tx.ID.String(), "item", it.ID, "due", tx.DueDate.String())

	res := Result{Transaction: tx}
	if err := tx.CheckOverdue(s.clock.Today()); err != nil {
		s.logger.Warn("loan overdue", "tx", tx.ID.String(), "item", it.ID, "due", tx.DueDate.String())
		res.Overdue = err
	}

	tx.Return()
	s.logger.Debug("loan returned", "tx", tx.ID.String(), "item", it.ID)
	return res, nil
}
