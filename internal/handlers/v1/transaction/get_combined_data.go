package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/service"
)

// GetCombinedDataInput is the Huma input for the combined view.
type GetCombinedDataInput struct {
	Month int `query:"month" doc:"Calendar month 1-12 to report on"`
}

// GetCombinedDataResponseBody is the response body for the combined view.
type GetCombinedDataResponseBody struct {
	Statistics Statistics      `json:"statistics" doc:"Sale totals for the month"`
	BarChart   []RangeCount    `json:"barChart" doc:"All ten price bands in display order"`
	PieChart   []CategoryCount `json:"pieChart" doc:"Categories in first-seen order"`
}

// GetCombinedDataOutput is the Huma output for the combined view.
type GetCombinedDataOutput struct {
	Body GetCombinedDataResponseBody
}

// combinedDataFetcher is the interface for the combined view.
type combinedDataFetcher interface {
	GetCombinedData(ctx context.Context, month int) (*service.CombinedData, error)
}

// GetCombinedDataHandler handles GET /v1/transactions/combined-data.
type GetCombinedDataHandler struct {
	TransactionService combinedDataFetcher
}

// NewGetCombinedDataHandler creates a new GetCombinedDataHandler.
func NewGetCombinedDataHandler(svc combinedDataFetcher) *GetCombinedDataHandler {
	return &GetCombinedDataHandler{TransactionService: svc}
}

// Register registers the combined data endpoint with the Huma API.
func (h *GetCombinedDataHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-combined-data",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/combined-data",
		Summary:     "Get combined month data",
		Description: "Returns the statistics, bar chart, and pie chart views for one month in a single response.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetCombinedDataHandler) handle(ctx context.Context, input *GetCombinedDataInput) (*GetCombinedDataOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getCombinedDataMs")
	}
	combined, err := h.TransactionService.GetCombinedData(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to get combined data")
	}

	resp := GetCombinedDataResponseBody{
		Statistics: Statistics{
			TotalSaleAmount:  combined.Statistics.TotalSaleAmount,
			TotalSoldItems:   combined.Statistics.TotalSoldItems,
			TotalUnsoldItems: combined.Statistics.TotalUnsoldItems,
		},
		BarChart: make([]RangeCount, len(combined.BarChart)),
		PieChart: make([]CategoryCount, len(combined.PieChart)),
	}

	for i, band := range combined.BarChart {
		resp.BarChart[i] = RangeCount{
			Range: band.Range,
			Count: band.Count,
		}
	}

	for i, count := range combined.PieChart {
		resp.PieChart[i] = CategoryCount{
			Category: count.Category,
			Count:    count.Count,
		}
	}

	return &GetCombinedDataOutput{Body: resp}, nil
}
