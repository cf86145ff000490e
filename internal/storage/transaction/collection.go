package transaction

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "transactions"

var _ ICollection = (*Collection)(nil)

type Collection struct {
	collection *mongo.Collection
}

func NewCollection(database *mongo.Database) *Collection {
	return &Collection{collection: database.Collection(collectionName)}
}

// ReplaceAll clears the collection and inserts the given records in order.
// A failure between the clear and the insert leaves the collection empty.
func (c *Collection) ReplaceAll(ctx context.Context, records []*Transaction) (int64, error) {
	if _, err := c.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, err
	}

	if len(records) == 0 {
		return 0, nil
	}

	documents := make([]interface{}, len(records))
	for i, record := range records {
		documents[i] = record
	}

	result, err := c.collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, err
	}

	return int64(len(result.InsertedIDs)), nil
}

// List returns the filter's page of records together with the total number
// of records matching the filter without the page window.
func (c *Collection) List(ctx context.Context, filter *ListFilter) (*ListResult, error) {
	match := listMatch(filter)

	totalRecords, err := c.collection.CountDocuments(ctx, match)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(filter.Skip).
		SetLimit(filter.Limit).
		SetProjection(bson.D{
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "price", Value: 1},
			{Key: "category", Value: 1},
			{Key: "dateOfSale", Value: 1},
			{Key: "sold", Value: 1},
		})

	cursor, err := c.collection.Find(ctx, match, opts)
	if err != nil {
		return nil, err
	}

	var records []*Transaction
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return &ListResult{
		Transactions: records,
		TotalRecords: totalRecords,
	}, nil
}

// Totals aggregates the month's sale figures. A month with no records
// yields zero totals, not an error.
func (c *Collection) Totals(ctx context.Context, month int) (*MonthTotals, error) {
	cursor, err := c.collection.Aggregate(ctx, totalsPipeline(month))
	if err != nil {
		return nil, err
	}

	var rows []MonthTotals
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &MonthTotals{}, nil
	}

	return &rows[0], nil
}

// PriceBandCounts buckets the month's sold records by price and returns all
// ten bands in order, zero-filled where the bucket stage produced no row.
func (c *Collection) PriceBandCounts(ctx context.Context, month int) ([]RangeCount, error) {
	cursor, err := c.collection.Aggregate(ctx, priceBandPipeline(month))
	if err != nil {
		return nil, err
	}

	var rows []priceBandRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return fillPriceBands(rows), nil
}

// CategoryCounts counts the month's records per category, sold or not.
func (c *Collection) CategoryCounts(ctx context.Context, month int) ([]CategoryCount, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "category", Value: 1}})

	cursor, err := c.collection.Find(ctx, monthMatch(month), opts)
	if err != nil {
		return nil, err
	}

	var rows []categoryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return groupCategories(rows), nil
}

type priceBandRow struct {
	ID    int   `bson:"_id"`
	Count int64 `bson:"count"`
}

type categoryRow struct {
	Category string `bson:"category"`
}

// fillPriceBands maps sparse bucket rows onto the full ordered band list,
// zero-filling bands the pipeline produced no row for.
func fillPriceBands(rows []priceBandRow) []RangeCount {
	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.ID] = row.Count
	}

	bands := make([]RangeCount, len(priceBandLowers))
	for i, lower := range priceBandLowers {
		bands[i] = RangeCount{
			Range: bandLabel(lower),
			Count: counts[lower],
		}
	}

	return bands
}

// groupCategories counts rows per category, labelling blank categories
// Uncategorized and preserving first-occurrence order.
func groupCategories(rows []categoryRow) []CategoryCount {
	positions := make(map[string]int, len(rows))
	counts := make([]CategoryCount, 0)

	for _, row := range rows {
		category := row.Category
		if category == "" {
			category = "Uncategorized"
		}

		position, seen := positions[category]
		if !seen {
			position = len(counts)
			positions[category] = position
			counts = append(counts, CategoryCount{Category: category})
		}
		counts[position].Count++
	}

	return counts
}
