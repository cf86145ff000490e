package actions

import (
	"context"

	"github.com/lakefield-systems/sales-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
