package service

import (
	"context"
	"fmt"

	"github.com/lakefield-systems/sales-server/internal/operator/actions"
	"github.com/lakefield-systems/sales-server/internal/storage/transaction"
)

// seedFetcher is the interface for downloading the seed data set.
type seedFetcher interface {
	FetchTransactions(ctx context.Context) ([]*transaction.Transaction, error)
}

// actionProcessor is the interface for running actions on the operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SeedService replaces the store's contents with the external data set.
type SeedService struct {
	source   seedFetcher
	operator actionProcessor
}

// NewSeedService creates a new SeedService.
func NewSeedService(source seedFetcher, op actionProcessor) *SeedService {
	return &SeedService{
		source:   source,
		operator: op,
	}
}

// Initialize fetches the seed data set, validates every record, and swaps the
// store's contents for it. Nothing is cleared until the whole fetched set has
// validated, so a bad fetch never empties the store. Returns the number of
// records inserted.
func (s *SeedService) Initialize(ctx context.Context) (int64, error) {
	records, err := s.source.FetchTransactions(ctx)
	if err != nil {
		return 0, err
	}

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return 0, fmt.Errorf("seed record %d: %w", i, err)
		}
	}

	action := &actions.ReplaceTransactions{Records: records}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}

	return action.Inserted, nil
}
