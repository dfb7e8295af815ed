package loan_test

import (
	"testing"
	"time"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/loan"
	"librarycatalog/internal/loan/mocks"
	"librarycatalog/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() *catalog.Service {
	svc := catalog.NewService(catalog.NewMemoryRepo(), testutil.DiscardLogger())
	svc.Add(testutil.TestBook)
	svc.Add(testutil.TestJournal)
	return svc
}

func TestService_Borrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	clock := mocks.NewMockClock(ctrl)
	today := testutil.Date(2024, time.June, 1)

	t.Run("existing item ends returned", func(t *testing.T) {
		clock.EXPECT().Today().Return(today).Times(2)
		svc := loan.NewService(newCatalog(), clock, 0, testutil.DiscardLogger())

		res, err := svc.Borrow(2)

		require.NoError(t, err)
		require.NotNil(t, res.Transaction)
		assert.NoError(t, res.Overdue)
		assert.True(t, res.Transaction.Returned)
		assert.Equal(t, testutil.TestJournal, res.Transaction.Item)
		assert.Equal(t, today, res.Transaction.BorrowDate)
		assert.Equal(t, testutil.Date(2024, time.June, 8), res.Transaction.DueDate)
	})

	t.Run("missing item creates no transaction", func(t *testing.T) {
		svc := loan.NewService(newCatalog(), clock, 7, testutil.DiscardLogger())

		res, err := svc.Borrow(404)

		assert.ErrorIs(t, err, catalog.ErrNotFound)
		assert.Nil(t, res.Transaction)
	})

	t.Run("overdue signal does not stop the return", func(t *testing.T) {
		gomock.InOrder(
			clock.EXPECT().Today().Return(today),
			clock.EXPECT().Today().Return(testutil.Date(2024, time.June, 9)),
		)
		svc := loan.NewService(newCatalog(), clock, 7, testutil.DiscardLogger())

		res, err := svc.Borrow(1)

		require.NoError(t, err)
		assert.ErrorIs(t, res.Overdue, loan.ErrOverdue)
		assert.True(t, res.Transaction.Returned)
	})

	t.Run("configured period", func(t *testing.T) {
		clock.EXPECT().Today().Return(today).Times(2)
		svc := loan.NewService(newCatalog(), clock, 14, testutil.DiscardLogger())

		res, err := svc.Borrow(1)

		require.NoError(t, err)
		assert.Equal(t, testutil.Date(2024, time.June, 15), res.Transaction.DueDate)
	})
}
