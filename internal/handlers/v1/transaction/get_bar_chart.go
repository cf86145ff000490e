package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/service"
)

// GetBarChartInput is the Huma input for the bar chart view.
type GetBarChartInput struct {
	Month int `query:"month" doc:"Calendar month 1-12 to chart"`
}

// RangeCount is the API response model for one price band.
type RangeCount struct {
	Range string `json:"range" doc:"Price band, e.g. 101-200"`
	Count int64  `json:"count" doc:"Number of sold records in the band"`
}

// GetBarChartResponseBody is the response body for the bar chart view.
type GetBarChartResponseBody struct {
	RangeCounts []RangeCount `json:"rangeCounts" doc:"All ten price bands in display order"`
}

// GetBarChartOutput is the Huma output for the bar chart view.
type GetBarChartOutput struct {
	Body GetBarChartResponseBody
}

// barChartFetcher is the interface for the bar chart view.
type barChartFetcher interface {
	GetBarChart(ctx context.Context, month int) ([]service.RangeCount, error)
}

// GetBarChartHandler handles GET /v1/transactions/bar-chart.
type GetBarChartHandler struct {
	TransactionService barChartFetcher
}

// NewGetBarChartHandler creates a new GetBarChartHandler.
func NewGetBarChartHandler(svc barChartFetcher) *GetBarChartHandler {
	return &GetBarChartHandler{TransactionService: svc}
}

// Register registers the bar chart endpoint with the Huma API.
func (h *GetBarChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-bar-chart",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/bar-chart",
		Summary:     "Get price band counts",
		Description: "Returns the month's sold record count for each of the ten price bands, zero-filled.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetBarChartHandler) handle(ctx context.Context, input *GetBarChartInput) (*GetBarChartOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getBarChartMs")
	}
	bands, err := h.TransactionService.GetBarChart(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to get bar chart")
	}

	resp := GetBarChartResponseBody{
		RangeCounts: make([]RangeCount, len(bands)),
	}
	for i, band := range bands {
		resp.RangeCounts[i] = RangeCount{
			Range: band.Range,
			Count: band.Count,
		}
	}

	return &GetBarChartOutput{Body: resp}, nil
}
