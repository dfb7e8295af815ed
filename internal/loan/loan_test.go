package loan

import (
	"testing"
	"time"

	"librarycatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_DueDate(t *testing.T) {
	tx := newTransaction(testutil.TestBook, testutil.Date(2024, time.February, 25), DefaultPeriodDays)

	assert.Equal(t, testutil.Date(2024, time.March, 3), tx.DueDate)
	assert.False(t, tx.Returned)
	assert.NotEqual(t, tx.ID, newTransaction(testutil.TestBook, tx.BorrowDate, 7).ID)
}

func TestTransaction_CheckOverdue(t *testing.T) {
	borrowed := testutil.Date(2024, time.January, 1)

	t.Run("on due date", func(t *testing.T) {
		tx := newTransaction(testutil.TestBook, borrowed, 7)
		assert.NoError(t, tx.CheckOverdue(testutil.Date(2024, time.January, 8)))
	})

	t.Run("day after due date", func(t *testing.T) {
		tx := newTransaction(testutil.TestBook, borrowed, 7)
		assert.ErrorIs(t, tx.CheckOverdue(testutil.Date(2024, time.January, 9)), ErrOverdue)
	})

	t.Run("returned is never overdue", func(t *testing.T) {
		tx := newTransaction(testutil.TestBook, borrowed, 7)
		tx.Return()
		assert.NoError(t, tx.CheckOverdue(testutil.Date(2025, time.January, 1)))
	})
}

func TestSystemClock_Today(t *testing.T) {
	today := SystemClock{}.Today()
	assert.True(t, today.IsValid())
}
