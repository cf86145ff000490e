package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/service"
)

// GetPieChartInput is the Huma input for the pie chart view.
type GetPieChartInput struct {
	Month int `query:"month" doc:"Calendar month 1-12 to chart"`
}

// CategoryCount is the API response model for one category slice.
type CategoryCount struct {
	Category string `json:"category" doc:"Category label, Uncategorized when the record has none"`
	Count    int64  `json:"count" doc:"Number of records in the category"`
}

// GetPieChartResponseBody is the response body for the pie chart view.
type GetPieChartResponseBody struct {
	CategoryCounts []CategoryCount `json:"categoryCounts" doc:"Categories in first-seen order"`
}

// GetPieChartOutput is the Huma output for the pie chart view.
type GetPieChartOutput struct {
	Body GetPieChartResponseBody
}

// pieChartFetcher is the interface for the pie chart view.
type pieChartFetcher interface {
	GetPieChart(ctx context.Context, month int) ([]service.CategoryCount, error)
}

// GetPieChartHandler handles GET /v1/transactions/pie-chart.
type GetPieChartHandler struct {
	TransactionService pieChartFetcher
}

// NewGetPieChartHandler creates a new GetPieChartHandler.
func NewGetPieChartHandler(svc pieChartFetcher) *GetPieChartHandler {
	return &GetPieChartHandler{TransactionService: svc}
}

// Register registers the pie chart endpoint with the Huma API.
func (h *GetPieChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-pie-chart",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/pie-chart",
		Summary:     "Get category counts",
		Description: "Returns the month's record count per category, sold or not.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetPieChartHandler) handle(ctx context.Context, input *GetPieChartInput) (*GetPieChartOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getPieChartMs")
	}
	counts, err := h.TransactionService.GetPieChart(ctx, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to get pie chart")
	}

	resp := GetPieChartResponseBody{
		CategoryCounts: make([]CategoryCount, len(counts)),
	}
	for i, count := range counts {
		resp.CategoryCounts[i] = CategoryCount{
			Category: count.Category,
			Count:    count.Count,
		}
	}

	return &GetPieChartOutput{Body: resp}, nil
}
