package service

import (
	"context"

	"moving-estimate-api/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPrefectureRepository is a mock implementation of the PrefectureRepository interface
type MockPrefectureRepository struct {
	mock.Mock
}

func (m *MockPrefectureRepository) ListPrefectures(ctx context.Context) ([]models.Prefecture, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Prefecture), args.Error(1)
}

func (m *MockPrefectureRepository) GetPrefectureName(ctx context.Context, prefectureID string) (string, error) {
	args := m.Called(ctx, prefectureID)
	return args.String(0), args.Error(1)
}

func (m *MockPrefectureRepository) FindPrefectureDistance(ctx context.Context, fromID, toID string) (float64, bool, error) {
	args := m.Called(ctx, fromID, toID)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

// MockGeocoder is a mock implementation of the Geocoder interface
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (models.Coordinate, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.Coordinate), args.Error(1)
}

// MockRouter is a mock implementation of the Router interface
type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Distance(ctx context.Context, from, to models.Coordinate) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

// MockPricingRepository is a mock implementation of the PricingRepository interface
type MockPricingRepository struct {
	mock.Mock
}

func (m *MockPricingRepository) GetBoxPerPackage(ctx context.Context, packageID int) (int, error) {
	args := m.Called(ctx, packageID)
	return args.Int(0), args.Error(1)
}

func (m *MockPricingRepository) ListTruckCapacities(ctx context.Context) ([]models.TruckCapacity, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.TruckCapacity), args.Error(1)
}

func (m *MockPricingRepository) GetPricePerOptionalService(ctx context.Context, serviceID int) (int, error) {
	args := m.Called(ctx, serviceID)
	return args.Int(0), args.Error(1)
}

// MockOrderRepository is a mock implementation of the OrderRepository interface
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order models.Order) (int, error) {
	args := m.Called(ctx, order)
	return args.Int(0), args.Error(1)
}

// MockDistanceResolver is a mock implementation of the DistanceResolver interface
type MockDistanceResolver struct {
	mock.Mock
}

func (m *MockDistanceResolver) RealDistance(ctx context.Context, fromPrefectureID, toPrefectureID, fromAddress, toAddress string) (float64, error) {
	args := m.Called(ctx, fromPrefectureID, toPrefectureID, fromAddress, toAddress)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockDistanceResolver) PrefectureDistance(ctx context.Context, fromID, toID string) (float64, error) {
	args := m.Called(ctx, fromID, toID)
	return args.Get(0).(float64), args.Error(1)
}
