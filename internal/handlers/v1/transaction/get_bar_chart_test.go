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

type mockBarChartFetcher struct {
	mock.Mock
}

func (m *mockBarChartFetcher) GetBarChart(ctx context.Context, month int) ([]service.RangeCount, error) {
	args := m.Called(ctx, month)
	bands, _ := args.Get(0).([]service.RangeCount)
	return bands, args.Error(1)
}

func newBarChartTestAPI(t *testing.T, svc barChartFetcher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetBarChartHandler(svc).Register(api)
	return api
}

func makeServiceBands(countByRange map[string]int64) []service.RangeCount {
	ranges := []string{
		"0-100", "101-200", "201-300", "301-400", "401-500",
		"501-600", "601-700", "701-800", "801-900", "901-above",
	}
	bands := make([]service.RangeCount, len(ranges))
	for i, r := range ranges {
		bands[i] = service.RangeCount{Range: r, Count: countByRange[r]}
	}
	return bands
}

// -- HTTP integration tests --

func TestHTTP_GetBarChart_Success(t *testing.T) {
	mockSvc := new(mockBarChartFetcher)
	mockSvc.On("GetBarChart", mock.Anything, 3).
		Return(makeServiceBands(map[string]int64{"101-200": 1}), nil)

	resp := newBarChartTestAPI(t, mockSvc).Get("/v1/transactions/bar-chart?month=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body GetBarChartResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.RangeCounts, 10)
	assert.Equal(t, RangeCount{Range: "0-100", Count: 0}, body.RangeCounts[0])
	assert.Equal(t, RangeCount{Range: "101-200", Count: 1}, body.RangeCounts[1])
	assert.Equal(t, RangeCount{Range: "901-above", Count: 0}, body.RangeCounts[9])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBarChart_MissingMonth(t *testing.T) {
	mockSvc := new(mockBarChartFetcher)
	mockSvc.On("GetBarChart", mock.Anything, 0).
		Return(nil, service.ErrInvalidMonth)

	resp := newBarChartTestAPI(t, mockSvc).Get("/v1/transactions/bar-chart")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetBarChart_ServiceError(t *testing.T) {
	mockSvc := new(mockBarChartFetcher)
	mockSvc.On("GetBarChart", mock.Anything, 3).
		Return(nil, errors.New("aggregation failed"))

	resp := newBarChartTestAPI(t, mockSvc).Get("/v1/transactions/bar-chart?month=3")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
