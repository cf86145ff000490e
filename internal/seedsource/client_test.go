package seedsource

import (
	"context"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
)

const testSourceURL = "https://seed.example.com/products.json"

func newTestClient() *Client {
	client := NewClient(testSourceURL)
	httpmock.ActivateNonDefault(client.HTTPClient)
	return client
}

func TestFetchTransactions_Success(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testSourceURL,
		httpmock.NewStringResponder(200, `[
			{"title":"Laptop","description":"Refurbished","price":499.99,"category":"Electronics","dateOfSale":"2024-03-15T10:30:00Z","sold":true},
			{"title":"Mug","description":"","price":7.5,"category":"","dateOfSale":"2024-03-02T08:00:00Z","sold":false}
		]`))

	records, err := client.FetchTransactions(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Laptop", records[0].Title)
	assert.Equal(t, "Refurbished", records[0].Description)
	assert.Equal(t, 499.99, records[0].Price)
	assert.Equal(t, "Electronics", records[0].Category)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), records[0].DateOfSale.UTC())
	assert.True(t, records[0].Sold)

	assert.Equal(t, "", records[1].Category, "missing category stays blank until reporting")
	assert.False(t, records[1].Sold)
}

func TestFetchTransactions_EmptyDataSet(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testSourceURL,
		httpmock.NewStringResponder(200, `[]`))

	records, err := client.FetchTransactions(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchTransactions_ServerError(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testSourceURL,
		httpmock.NewStringResponder(503, "Service Error"))

	records, err := client.FetchTransactions(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Nil(t, records)
}

func TestFetchTransactions_NonJSONBody(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testSourceURL,
		httpmock.NewStringResponder(200, "<html>not json</html>"))

	records, err := client.FetchTransactions(context.Background())

	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestFetchTransactions_UnconfiguredURL(t *testing.T) {
	client := NewClient("")
	httpmock.ActivateNonDefault(client.HTTPClient)
	defer httpmock.DeactivateAndReset()

	records, err := client.FetchTransactions(context.Background())

	assert.Error(t, err)
	assert.Nil(t, records)
	assert.Zero(t, httpmock.GetTotalCallCount(), "no request leaves the process")
}
