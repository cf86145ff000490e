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
)

type mockSeedInitializer struct {
	mock.Mock
}

func (m *mockSeedInitializer) Initialize(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newInitializeTestAPI(t *testing.T, svc seedInitializer) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewInitializeHandler(svc).Register(api)
	return api
}

// -- HTTP integration tests --

func TestHTTP_Initialize_Success(t *testing.T) {
	mockSvc := new(mockSeedInitializer)
	mockSvc.On("Initialize", mock.Anything).Return(int64(60), nil)

	resp := newInitializeTestAPI(t, mockSvc).Get("/v1/transactions/initialize")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body InitializeResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "transactions initialized", body.Message)
	assert.Equal(t, int64(60), body.TotalRecords)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Initialize_EmptyDataSet(t *testing.T) {
	mockSvc := new(mockSeedInitializer)
	mockSvc.On("Initialize", mock.Anything).Return(int64(0), nil)

	resp := newInitializeTestAPI(t, mockSvc).Get("/v1/transactions/initialize")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body InitializeResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(0), body.TotalRecords)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Initialize_SeedError(t *testing.T) {
	mockSvc := new(mockSeedInitializer)
	mockSvc.On("Initialize", mock.Anything).
		Return(int64(0), errors.New("seed source returned status 503"))

	resp := newInitializeTestAPI(t, mockSvc).Get("/v1/transactions/initialize")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
