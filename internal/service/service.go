package service

import (
	"github.com/lakefield-systems/sales-server/internal/operator"
	"github.com/lakefield-systems/sales-server/internal/seedsource"
	"github.com/lakefield-systems/sales-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Seed        *SeedService
}

// NewService creates a new Service over the given storage, seed source, and
// operator queue.
func NewService(store *storage.Storage, source *seedsource.Client, op *operator.OperatorDelegator) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Seed:        NewSeedService(source, op),
	}
}
