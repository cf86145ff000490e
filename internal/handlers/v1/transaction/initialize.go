package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/logging"
)

// InitializeInput is the Huma input for seeding the store.
type InitializeInput struct{}

// InitializeResponseBody is the response body for seeding the store.
type InitializeResponseBody struct {
	Message      string `json:"message" doc:"Outcome description"`
	TotalRecords int64  `json:"totalRecords" doc:"Number of records now in the store"`
}

// InitializeOutput is the Huma output for seeding the store.
type InitializeOutput struct {
	Body InitializeResponseBody
}

// seedInitializer is the interface for replacing the store's contents with
// the external data set.
type seedInitializer interface {
	Initialize(ctx context.Context) (int64, error)
}

// InitializeHandler handles GET /v1/transactions/initialize.
type InitializeHandler struct {
	SeedService seedInitializer
}

// NewInitializeHandler creates a new InitializeHandler.
func NewInitializeHandler(svc seedInitializer) *InitializeHandler {
	return &InitializeHandler{SeedService: svc}
}

// Register registers the initialize endpoint with the Huma API.
func (h *InitializeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "initialize-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/initialize",
		Summary:     "Seed the store",
		Description: "Replaces the store's entire contents with the external seed data set.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *InitializeHandler) handle(ctx context.Context, input *InitializeInput) (*InitializeOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("initializeMs")
	}
	inserted, err := h.SeedService.Initialize(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to initialize transactions", err)
	}

	if logData != nil {
		logData.AddData("insertedRecords", inserted)
	}

	return &InitializeOutput{Body: InitializeResponseBody{
		Message:      "transactions initialized",
		TotalRecords: inserted,
	}}, nil
}
