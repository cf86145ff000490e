package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/service"
)

// GetStatisticsInput is the Huma input for the statistics view.
type GetStatisticsInput struct {
	Month int `query:"month" doc:"Calendar month 1-12 to summarize"`
}

// Statistics is the API response model for a month's sale totals.
type Statistics struct {
	TotalSaleAmount  float64 `json:"totalSaleAmount" doc:"Sum of prices over sold records"`
	TotalSoldItems   int64   `json:"totalSoldItems" doc:"Number of sold records"`
	TotalUnsoldItems int64   `json:"totalUnsoldItems" doc:"Number of unsold records"`
}

// GetStatisticsOutput is the Huma output for the statistics view.
type GetStatisticsOutput struct {
	Body Statistics
}

// statisticsFetcher is the interface for the statistics view.
type statisticsFetcher interface {
	GetStatistics(ctx context.Context, month int) (*service.Statistics, error)
}

// GetStatisticsHandler handles GET /v1/transactions/statistics.
type GetStatisticsHandler struct {
	TransactionService statisticsFetcher
}

// NewGetStatisticsHandler creates a new GetStatisticsHandler.
func NewGetStatisticsHandler(svc statisticsFetcher) *GetStatisticsHandler {
	return &GetStatisticsHandler{TransactionService: svc}
}

// Register registers the statistics endpoint with the Huma API.
func (h *GetStatisticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statistics",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/statistics",
		Summary:     "Get sale statistics",
		Description: "Returns the month's total sale amount plus sold and unsold record counts.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetStatisticsHandler) handle(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getStatisticsMs")
	}
	statistics, err := h.TransactionService.GetStatistics(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to get statistics")
	}

	return &GetStatisticsOutput{Body: Statistics{
		TotalSaleAmount:  statistics.TotalSaleAmount,
		TotalSoldItems:   statistics.TotalSoldItems,
		TotalUnsoldItems: statistics.TotalUnsoldItems,
	}}, nil
}
