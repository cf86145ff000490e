package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lakefield-systems/sales-server/internal/service"
)

type mockCombinedDataFetcher struct {
	mock.Mock
}

func (m *mockCombinedDataFetcher) GetCombinedData(ctx context.Context, month int) (*service.CombinedData, error) {
	args := m.Called(ctx, month)
	combined, _ := args.Get(0).(*service.CombinedData)
	return combined, args.Error(1)
}

func newCombinedDataTestAPI(t *testing.T, svc combinedDataFetcher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetCombinedDataHandler(svc).Register(api)
	return api
}

// -- HTTP integration tests --

func TestHTTP_GetCombinedData_Success(t *testing.T) {
	mockSvc := new(mockCombinedDataFetcher)
	mockSvc.On("GetCombinedData", mock.Anything, 3).
		Return(&service.CombinedData{
			Statistics: service.Statistics{
				TotalSaleAmount:  150,
				TotalSoldItems:   1,
				TotalUnsoldItems: 1,
			},
			BarChart: []service.RangeCount{
				{Range: "0-100", Count: 1},
				{Range: "101-200", Count: 1},
			},
			PieChart: []service.CategoryCount{
				{Category: "Electronics", Count: 2},
			},
		}, nil)

	resp := newCombinedDataTestAPI(t, mockSvc).Get("/v1/transactions/combined-data?month=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetCombinedDataResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Statistics{
		TotalSaleAmount:  150,
		TotalSoldItems:   1,
		TotalUnsoldItems: 1,
	}, body.Statistics)
	assert.Equal(t, []RangeCount{
		{Range: "0-100", Count: 1},
		{Range: "101-200", Count: 1},
	}, body.BarChart)
	assert.Equal(t, []CategoryCount{
		{Category: "Electronics", Count: 2},
	}, body.PieChart)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetCombinedData_MissingMonth(t *testing.T) {
	mockSvc := new(mockCombinedDataFetcher)
	mockSvc.On("GetCombinedData", mock.Anything, 0).
		Return(nil, service.ErrInvalidMonth)

	resp := newCombinedDataTestAPI(t, mockSvc).Get("/v1/transactions/combined-data")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetCombinedData_ServiceError(t *testing.T) {
	mockSvc := new(mockCombinedDataFetcher)
	mockSvc.On("GetCombinedData", mock.Anything, 3).
		Return(nil, errors.New("aggregation timed out"))

	resp := newCombinedDataTestAPI(t, mockSvc).Get("/v1/transactions/combined-data?month=3")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
