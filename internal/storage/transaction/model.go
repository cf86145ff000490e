package transaction

import (
	"context"
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction represents one product sale record in the transactions
// collection. JSON tags follow the seed source's field names so fetched
// records decode directly; the object id never leaves the storage layer.
type Transaction struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	DateOfSale  time.Time          `bson:"dateOfSale" json:"dateOfSale"`
	Sold        bool               `bson:"sold" json:"sold"`
}

// Validate reports whether the record is storable.
func (t *Transaction) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}

	if t.DateOfSale.IsZero() {
		return errors.New("dateOfSale is required")
	}

	if math.IsNaN(t.Price) || math.IsInf(t.Price, 0) || t.Price < 0 {
		return errors.New("price must be a non-negative number")
	}

	return nil
}

// ListFilter narrows a listing to a sale month, an optional search term,
// and a page window.
type ListFilter struct {
	Month  int
	Search string
	Skip   int64
	Limit  int64
}

// ListResult contains one page of records plus the unpaginated match count.
type ListResult struct {
	Transactions []*Transaction
	TotalRecords int64
}

// MonthTotals holds the aggregate sale figures for one calendar month.
type MonthTotals struct {
	TotalSaleAmount float64 `bson:"totalSaleAmount"`
	TotalSoldItems  int64   `bson:"totalSoldItems"`
	TotalItems      int64   `bson:"totalItems"`
}

// RangeCount is the number of sold records whose price falls in one band.
type RangeCount struct {
	Range string
	Count int64
}

// CategoryCount is the number of records labelled with one category.
type CategoryCount struct {
	Category string
	Count    int64
}

// ICollection defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
//
//go:generate mockery --name ICollection --output mock_ICollection.go
type ICollection interface {
	ReplaceAll(ctx context.Context, records []*Transaction) (int64, error)
	List(ctx context.Context, filter *ListFilter) (*ListResult, error)
	Totals(ctx context.Context, month int) (*MonthTotals, error)
	PriceBandCounts(ctx context.Context, month int) ([]RangeCount, error)
	CategoryCounts(ctx context.Context, month int) ([]CategoryCount, error)
}
