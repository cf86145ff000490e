package actions

import (
	"context"

	"github.com/lakefield-systems/sales-server/internal/storage"
	"github.com/lakefield-systems/sales-server/internal/storage/transaction"
)

// ReplaceTransactions swaps the store's entire contents for Records.
// Inserted is populated once the action has run.
type ReplaceTransactions struct {
	Records  []*transaction.Transaction
	Inserted int64

	IAction
}

func (r *ReplaceTransactions) Perform(ctx context.Context, store *storage.Storage) error {
	inserted, err := store.Transactions.ReplaceAll(ctx, r.Records)
	if err != nil {
		return err
	}

	r.Inserted = inserted
	return nil
}
