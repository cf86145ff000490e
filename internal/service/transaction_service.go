package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/lakefield-systems/sales-server/internal/storage"
	"github.com/lakefield-systems/sales-server/internal/storage/transaction"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// ErrInvalidMonth reports a month outside 1-12, including the zero value an
// absent parameter decodes to. Callers can tell it apart from store failures.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// TransactionService handles sale record queries.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// ListTransactions returns the query's page of records with pagination
// metadata. Page and per-page sizes below 1 fall back to the defaults.
func (s *TransactionService) ListTransactions(ctx context.Context, query ListQuery) (*TransactionPage, error) {
	if err := validateMonth(query.Month); err != nil {
		return nil, err
	}

	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	filter := &transaction.ListFilter{
		Month:  query.Month,
		Search: query.Search,
		Skip:   int64(page-1) * int64(perPage),
		Limit:  int64(perPage),
	}

	result, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(result.Transactions))
	for i, row := range result.Transactions {
		convertedTransactions[i] = Transaction{
			Title:       row.Title,
			Description: row.Description,
			Price:       row.Price,
			Category:    row.Category,
			DateOfSale:  row.DateOfSale,
			Sold:        row.Sold,
		}
	}

	totalPages := result.TotalRecords / int64(perPage)
	if result.TotalRecords%int64(perPage) != 0 {
		totalPages++
	}

	return &TransactionPage{
		Transactions: convertedTransactions,
		Pagination: Pagination{
			TotalRecords: result.TotalRecords,
			CurrentPage:  page,
			PerPage:      perPage,
			TotalPages:   totalPages,
		},
	}, nil
}

// GetStatistics returns the month's sale totals. A month with no records
// yields zero totals, not an error.
func (s *TransactionService) GetStatistics(ctx context.Context, month int) (*Statistics, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	totals, err := s.storage.Transactions.Totals(ctx, month)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		TotalSaleAmount:  totals.TotalSaleAmount,
		TotalSoldItems:   totals.TotalSoldItems,
		TotalUnsoldItems: totals.TotalItems - totals.TotalSoldItems,
	}, nil
}

// GetBarChart returns the month's sold record count per price band, always
// all ten bands in display order.
func (s *TransactionService) GetBarChart(ctx context.Context, month int) ([]RangeCount, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	bands, err := s.storage.Transactions.PriceBandCounts(ctx, month)
	if err != nil {
		return nil, err
	}

	convertedBands := make([]RangeCount, len(bands))
	for i, band := range bands {
		convertedBands[i] = RangeCount{
			Range: band.Range,
			Count: band.Count,
		}
	}

	return convertedBands, nil
}

// GetPieChart returns the month's record count per category, sold or not,
// in first-seen order.
func (s *TransactionService) GetPieChart(ctx context.Context, month int) ([]CategoryCount, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	counts, err := s.storage.Transactions.CategoryCounts(ctx, month)
	if err != nil {
		return nil, err
	}

	convertedCounts := make([]CategoryCount, len(counts))
	for i, count := range counts {
		convertedCounts[i] = CategoryCount{
			Category: count.Category,
			Count:    count.Count,
		}
	}

	return convertedCounts, nil
}

// GetCombinedData fetches the three month views concurrently. If any view
// fails the combined call fails as a whole.
func (s *TransactionService) GetCombinedData(ctx context.Context, month int) (*CombinedData, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	combined := &CombinedData{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		statistics, err := s.GetStatistics(groupCtx, month)
		if err != nil {
			return err
		}
		combined.Statistics = *statistics
		return nil
	})

	group.Go(func() error {
		barChart, err := s.GetBarChart(groupCtx, month)
		if err != nil {
			return err
		}
		combined.BarChart = barChart
		return nil
	})

	group.Go(func() error {
		pieChart, err := s.GetPieChart(groupCtx, month)
		if err != nil {
			return err
		}
		combined.PieChart = pieChart
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return combined, nil
}
