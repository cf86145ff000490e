package transaction

import (
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// priceBandLowers are the lower bounds of the ten reporting bands. The last
// entry doubles as the $bucket default id, so prices from 901 up (and any
// value below zero) land in the open-ended top band.
var priceBandLowers = []int{0, 101, 201, 301, 401, 501, 601, 701, 801, 901}

// monthMatch filters documents to those whose dateOfSale falls in the given
// calendar month, regardless of year.
func monthMatch(month int) bson.D {
	return bson.D{{Key: "$expr", Value: bson.D{
		{Key: "$eq", Value: bson.A{
			bson.D{{Key: "$month", Value: "$dateOfSale"}},
			month,
		}},
	}}}
}

// listMatch extends the month filter with the optional search term: a
// case-insensitive substring match on title or description, plus an exact
// price match when the term parses as a number.
func listMatch(filter *ListFilter) bson.D {
	match := monthMatch(filter.Month)
	if filter.Search == "" {
		return match
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	clauses := bson.A{
		bson.D{{Key: "title", Value: pattern}},
		bson.D{{Key: "description", Value: pattern}},
	}

	if price, err := strconv.ParseFloat(filter.Search, 64); err == nil {
		clauses = append(clauses, bson.D{{Key: "price", Value: price}})
	}

	return append(match, bson.E{Key: "$or", Value: clauses})
}

// totalsPipeline folds the month's records into a single totals document.
// Unsold records contribute zero to the sale amount and sold count.
func totalsPipeline(month int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: monthMatch(month)}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSaleAmount", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$sold", "$price", 0}},
			}}}},
			{Key: "totalSoldItems", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$sold", 1, 0}},
			}}}},
			{Key: "totalItems", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// priceBandPipeline buckets the month's sold records by price.
func priceBandPipeline(month int) mongo.Pipeline {
	boundaries := make(bson.A, len(priceBandLowers))
	for i, lower := range priceBandLowers {
		boundaries[i] = lower
	}

	match := monthMatch(month)
	match = append(match, bson.E{Key: "sold", Value: true})

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$bucket", Value: bson.D{
			{Key: "groupBy", Value: "$price"},
			{Key: "boundaries", Value: boundaries},
			{Key: "default", Value: priceBandLowers[len(priceBandLowers)-1]},
			{Key: "output", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}},
		}}},
	}
}

// bandLabel maps a band's lower bound to its display range. The first band
// spans 0-100, so later bands start at x01.
func bandLabel(lower int) string {
	if lower >= priceBandLowers[len(priceBandLowers)-1] {
		return fmt.Sprintf("%d-above", lower)
	}

	upper := lower + 99
	if lower == 0 {
		upper = 100
	}

	return fmt.Sprintf("%d-%d", lower, upper)
}
