package service

import (
	"time"
)

// Transaction represents a sale record in the service layer.
type Transaction struct {
	Title       string
	Description string
	Price       float64
	Category    string
	DateOfSale  time.Time
	Sold        bool
}

// ListQuery selects one month's records, optionally narrowed by a search
// term, windowed by page number.
type ListQuery struct {
	Month   int
	Search  string
	Page    int
	PerPage int
}

// Pagination describes the page window of a listing result.
type Pagination struct {
	TotalRecords int64
	CurrentPage  int
	PerPage      int
	TotalPages   int64
}

// TransactionPage is one page of records plus its pagination metadata.
type TransactionPage struct {
	Transactions []Transaction
	Pagination   Pagination
}

// Statistics summarizes one month's sales.
type Statistics struct {
	TotalSaleAmount  float64
	TotalSoldItems   int64
	TotalUnsoldItems int64
}

// RangeCount is the number of sold records priced within one band.
type RangeCount struct {
	Range string
	Count int64
}

// CategoryCount is the number of records labelled with one category.
type CategoryCount struct {
	Category string
	Count    int64
}

// CombinedData bundles the three month views fetched together.
type CombinedData struct {
	Statistics Statistics
	BarChart   []RangeCount
	PieChart   []CategoryCount
}
