package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"moving-estimate-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEstimateService is a mock implementation of the EstimateService interface
type MockEstimateService struct {
	mock.Mock
}

func (m *MockEstimateService) Quote(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Estimate), args.Error(1)
}

func (m *MockEstimateService) Register(ctx context.Context, req models.EstimateRequest) (models.Estimate, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Estimate), args.Error(1)
}

const validBody = `{
	"customer_name": "山田太郎",
	"tel": "0312345678",
	"email": "taro@example.com",
	"old_prefecture_id": "13",
	"new_prefecture_id": "27",
	"old_address": "千代田区丸の内1-1",
	"new_address": "北区梅田3-1",
	"planned_date": "2026-03-15",
	"packages": [{"package_id": 1, "quantity": 3}],
	"option_service_ids": [2]
}`

func expectedRequest() models.EstimateRequest {
	return models.EstimateRequest{
		CustomerName:     "山田太郎",
		Tel:              "0312345678",
		Email:            "taro@example.com",
		OldPrefectureID:  "13",
		NewPrefectureID:  "27",
		OldAddress:       "千代田区丸の内1-1",
		NewAddress:       "北区梅田3-1",
		PlannedDate:      time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		Packages:         []models.PackageLine{{PackageID: 1, Quantity: 3}},
		OptionServiceIDs: []int{2},
	}
}

func TestEstimateHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		callService    bool
		mockEstimate   models.Estimate
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "successful quote",
			body:           validBody,
			callService:    true,
			mockEstimate:   models.Estimate{Boxes: 30, TruckPrice: 30000, SeasonFactor: 1.5, TotalPrice: 147950},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed json",
			body:           `{"old_prefecture_id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing prefecture",
			body:           strings.Replace(validBody, `"old_prefecture_id": "13",`, "", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad planned date",
			body:           strings.Replace(validBody, "2026-03-15", "15/03/2026", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero quantity",
			body:           strings.Replace(validBody, `"quantity": 3`, `"quantity": 0`, 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "quantity above bound",
			body:           strings.Replace(validBody, `"quantity": 3`, `"quantity": 9223372036854775807`, 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing package id",
			body:           strings.Replace(validBody, `"package_id": 1, `, "", 1),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no truck large enough",
			body:           validBody,
			callService:    true,
			mockError:      fmt.Errorf("service: 500 boxes: %w", models.ErrNoTruckCapacity),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "service: 500 boxes: pricing lookup failed: no truck capacity tier covers the requested boxes",
		},
		{
			name:           "routing failure",
			body:           validBody,
			callService:    true,
			mockError:      fmt.Errorf("%w: geo: upstream", models.ErrRouting),
			expectedStatus: http.StatusBadGateway,
			expectedError:  "route could not be resolved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockEstimateService)
			if tt.callService {
				mockSvc.On("Quote", mock.Anything, expectedRequest()).Return(tt.mockEstimate, tt.mockError)
			}
			handler := NewEstimateHandler(mockSvc)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/estimates/quote", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.Quote(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got models.Estimate
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.mockEstimate, got)
			} else {
				var got map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.NotEmpty(t, got["error"])
				if tt.expectedError != "" {
					assert.Equal(t, tt.expectedError, got["error"])
				}
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestEstimateHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockEstimateService)
	mockSvc.On("Register", mock.Anything, expectedRequest()).
		Return(models.Estimate{CustomerID: 42, TotalPrice: 147950}, nil)
	handler := NewEstimateHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader(validBody))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.Estimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 42, got.CustomerID)
	assert.Equal(t, 147950, got.TotalPrice)
	mockSvc.AssertExpectations(t)
}

func TestEstimateHandler_Quote_PackageIDZero(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := expectedRequest()
	req.Packages = []models.PackageLine{{PackageID: 0, Quantity: 3}}
	mockSvc := new(MockEstimateService)
	mockSvc.On("Quote", mock.Anything, req).Return(models.Estimate{Boxes: 3}, nil)
	handler := NewEstimateHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := strings.Replace(validBody, `"package_id": 1`, `"package_id": 0`, 1)
	c.Request = httptest.NewRequest(http.MethodPost, "/estimates/quote", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Quote(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}
