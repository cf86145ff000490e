package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakefield-systems/sales-server/internal/logging"
	"github.com/lakefield-systems/sales-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// Month is validated by the service so that absent and out-of-range values
// share one error path.
type ListTransactionsInput struct {
	Month   int    `query:"month" doc:"Calendar month 1-12 whose sale records to list"`
	Search  string `query:"search" doc:"Case-insensitive substring match on title or description, or an exact price"`
	Page    int    `query:"page" doc:"Page number, starting at 1"`
	PerPage int    `query:"perPage" doc:"Page size, defaults to 10"`
}

// Pagination describes the page window of a listing response.
type Pagination struct {
	TotalRecords int64 `json:"totalRecords" doc:"Number of records matching the filter"`
	CurrentPage  int   `json:"currentPage" doc:"Page number of this response"`
	PerPage      int   `json:"perPage" doc:"Page size used"`
	TotalPages   int64 `json:"totalPages" doc:"Number of pages available"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of matching records"`
	Pagination   Pagination    `json:"pagination" doc:"Pagination metadata"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing sale records.
type transactionLister interface {
	ListTransactions(ctx context.Context, query service.ListQuery) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns one month's sale records, optionally narrowed by a search term, with page-number pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	query := service.ListQuery{
		Month:   input.Month,
		Search:  input.Search,
		Page:    input.Page,
		PerPage: input.PerPage,
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, serviceError(err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
		logData.AddData("totalRecords", page.Pagination.TotalRecords)
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		Pagination: Pagination{
			TotalRecords: page.Pagination.TotalRecords,
			CurrentPage:  page.Pagination.CurrentPage,
			PerPage:      page.Pagination.PerPage,
			TotalPages:   page.Pagination.TotalPages,
		},
	}

	for i, record := range page.Transactions {
		resp.Transactions[i] = Transaction{
			Title:       record.Title,
			Description: record.Description,
			Price:       record.Price,
			Category:    record.Category,
			DateOfSale:  record.DateOfSale.Format(time.RFC3339),
			Sold:        record.Sold,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
