package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"storeapi.app/models"
)

type mockGeoRepo struct {
	mock.Mock
}

func (m *mockGeoRepo) ListStates(ctx context.Context) ([]models.State, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.State), args.Error(1)
}

func (m *mockGeoRepo) ListStores(ctx context.Context) ([]models.Store, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *mockGeoRepo) FindCitiesByState(ctx context.Context, stateID uint) ([]models.City, error) {
	args := m.Called(stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *mockGeoRepo) FindStoresByCity(ctx context.Context, cityID uint) ([]models.Store, error) {
	args := m.Called(cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *mockGeoRepo) FindStoresByCityName(ctx context.Context, cityName string) ([]models.Store, error) {
	args := m.Called(cityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *mockGeoRepo) FindStoresByStateID(ctx context.Context, stateID uint) ([]models.Store, error) {
	args := m.Called(stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *mockGeoRepo) FindStoresByStateName(ctx context.Context, stateName string) ([]models.Store, error) {
	args := m.Called(stateName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *mockGeoRepo) FindStateByID(ctx context.Context, stateID uint) (*models.State, error) {
	args := m.Called(stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

func (m *mockGeoRepo) FindStateByName(ctx context.Context, name string) (*models.State, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

func (m *mockGeoRepo) FindStateByCityName(ctx context.Context, cityName string) (*models.State, error) {
	args := m.Called(cityName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.State), args.Error(1)
}

type mockTimingRepo struct {
	mock.Mock
}

func (m *mockTimingRepo) FindByStore(ctx context.Context, storeID uint) (*models.StoreTiming, error) {
	args := m.Called(storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoreTiming), args.Error(1)
}

type mockOTPRepo struct {
	mock.Mock
}

func (m *mockOTPRepo) Upsert(ctx context.Context, otp *models.OTPVerification) error {
	args := m.Called(otp)
	return args.Error(0)
}

func (m *mockOTPRepo) FindByEmail(ctx context.Context, email string) (*models.OTPVerification, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OTPVerification), args.Error(1)
}

func (m *mockOTPRepo) MarkUsed(ctx context.Context, otp *models.OTPVerification) error {
	args := m.Called(otp)
	return args.Error(0)
}

func (m *mockOTPRepo) DeleteExpired(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(rating)
	return args.Error(0)
}

func (m *mockRatingRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockRatingRepo) Aggregate(ctx context.Context, storeID uint) (float64, int64, error) {
	args := m.Called(storeID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockRatingRepo) ListByStore(ctx context.Context, storeID uint, page, limit int) ([]models.Rating, int64, error) {
	args := m.Called(storeID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Rating), args.Get(1).(int64), args.Error(2)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendOTPEmail(email, code string, expiresIn time.Duration) error {
	args := m.Called(email, code, expiresIn)
	return args.Error(0)
}

type mockEmailProvider struct {
	mock.Mock
}

func (m *mockEmailProvider) SendEmail(to, subject, body string, isHTML bool) error {
	args := m.Called(to, subject, body, isHTML)
	return args.Error(0)
}
