package operator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lakefield-systems/sales-server/internal/operator/actions"
	"github.com/lakefield-systems/sales-server/internal/storage"
	"github.com/lakefield-systems/sales-server/internal/storage/transaction"
)

func newTestDelegator(t *testing.T) (*OperatorDelegator, *transaction.MockICollection) {
	t.Helper()
	mockCollection := transaction.NewMockICollection(t)
	store := &storage.Storage{Transactions: mockCollection}
	delegator := NewOperatorDelegator(store, 1)
	return delegator, mockCollection
}

func TestProcess_ReplaceTransactions(t *testing.T) {
	delegator, mockCollection := newTestDelegator(t)
	delegator.Start()
	defer delegator.Stop()

	records := []*transaction.Transaction{
		{Title: "Item", Price: 10, DateOfSale: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	mockCollection.EXPECT().ReplaceAll(mock.Anything, records).Return(int64(1), nil)

	action := &actions.ReplaceTransactions{Records: records}
	err := delegator.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), action.Inserted)
}

func TestProcess_ActionError(t *testing.T) {
	delegator, mockCollection := newTestDelegator(t)
	delegator.Start()
	defer delegator.Stop()

	mockCollection.EXPECT().ReplaceAll(mock.Anything, mock.Anything).
		Return(int64(0), errors.New("insert failed"))

	err := delegator.Process(context.Background(), &actions.ReplaceTransactions{})

	assert.Error(t, err)
	assert.Equal(t, "insert failed", err.Error())
}

func TestProcess_ContextCanceled(t *testing.T) {
	delegator, _ := newTestDelegator(t)
	// no workers started, so the item sits on the queue

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &actions.ReplaceTransactions{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestStop_Idempotent(t *testing.T) {
	delegator, _ := newTestDelegator(t)
	delegator.Start()

	delegator.Stop()
	delegator.Stop()
}
