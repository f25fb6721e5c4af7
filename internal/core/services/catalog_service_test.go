package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/core/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockServiceRepo *MockServiceRepository
	service         portssvc.CatalogSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockServiceRepo = new(MockServiceRepository)
	suite.service = services.NewCatalogService(suite.mockServiceRepo)
}

func (suite *CatalogServiceTestSuite) TestCreateService_Success() {
	ctx := context.Background()
	req := dto.CreateServiceRequest{
		Name:        "Lavado Premium",
		Description: "Lavado completo con encerado",
		BasePrice:   decimal.NewFromInt(30000),
	}

	var saved domain.Service
	suite.mockServiceRepo.SaveServiceFn = func(ctx context.Context, service domain.Service) error {
		saved = service
		return nil
	}

	created, err := suite.service.CreateService(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotEmpty(created.ServiceID)
	suite.Equal(saved.ServiceID, created.ServiceID)
	suite.Equal("Lavado Premium", created.Name)
}

func (suite *CatalogServiceTestSuite) TestPriceFor_ReturnsActivePrice() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	want := decimal.NewFromInt(35000)

	suite.mockServiceRepo.FindActivePriceFn = func(ctx context.Context, sid string, vt domain.VehicleType) (*domain.ServicePrice, error) {
		suite.Equal(serviceID, sid)
		suite.Equal(domain.VehicleSUV, vt)
		return &domain.ServicePrice{ServiceID: sid, VehicleType: vt, Price: want, Active: true}, nil
	}

	price, err := suite.service.PriceFor(ctx, serviceID, domain.VehicleSUV)

	suite.Require().NoError(err)
	suite.True(price.Equal(want))
}

func (suite *CatalogServiceTestSuite) TestPriceFor_NoPriceDefined() {
	ctx := context.Background()
	suite.mockServiceRepo.FindActivePriceFn = func(ctx context.Context, sid string, vt domain.VehicleType) (*domain.ServicePrice, error) {
		return nil, apperrors.ErrNoPriceDefined
	}

	price, err := suite.service.PriceFor(ctx, uuid.NewString(), domain.VehicleTruck)

	suite.Require().Error(err)
	// A missing entry is an error, never a zero price.
	suite.ErrorIs(err, apperrors.ErrNoPriceDefined)
	suite.True(price.IsZero())
}

func (suite *CatalogServiceTestSuite) TestPriceFor_InvalidVehicleType() {
	ctx := context.Background()

	_, err := suite.service.PriceFor(ctx, uuid.NewString(), domain.VehicleType("submarine"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestSetPrice_RejectsNonPositive() {
	ctx := context.Background()

	entry, err := suite.service.SetPrice(ctx, uuid.NewString(), domain.VehicleCar, decimal.Zero, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CatalogServiceTestSuite) TestSetPrice_UnknownService() {
	ctx := context.Background()
	suite.mockServiceRepo.FindServiceByIDFn = func(ctx context.Context, serviceID string) (*domain.Service, error) {
		return nil, apperrors.ErrNotFound
	}

	entry, err := suite.service.SetPrice(ctx, uuid.NewString(), domain.VehicleCar, decimal.NewFromInt(20000), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestSetPrice_Upserts() {
	ctx := context.Background()
	serviceID := uuid.NewString()
	updaterID := uuid.NewString()

	suite.mockServiceRepo.FindServiceByIDFn = func(ctx context.Context, sid string) (*domain.Service, error) {
		return &domain.Service{ServiceID: sid}, nil
	}
	var upserted domain.ServicePrice
	suite.mockServiceRepo.UpsertPriceFn = func(ctx context.Context, price domain.ServicePrice) error {
		upserted = price
		return nil
	}

	entry, err := suite.service.SetPrice(ctx, serviceID, domain.VehicleMotorcycle, decimal.NewFromInt(12000), updaterID)

	suite.Require().NoError(err)
	suite.True(entry.Active)
	suite.Equal(domain.VehicleMotorcycle, upserted.VehicleType)
	suite.True(upserted.Price.Equal(decimal.NewFromInt(12000)))
	suite.Equal(updaterID, upserted.CreatedBy)
}

func (suite *CatalogServiceTestSuite) TestPopularServices_DefaultsWindowAndLimit() {
	ctx := context.Background()

	var gotSince time.Time
	var gotLimit int
	suite.mockServiceRepo.FindPopularServicesFn = func(ctx context.Context, vt *domain.VehicleType, since time.Time, limit int) ([]domain.PopularService, error) {
		gotSince = since
		gotLimit = limit
		return []domain.PopularService{{ServiceID: uuid.NewString(), Name: "Lavado Básico", UsageCnt: 12}}, nil
	}

	rows, err := suite.service.PopularServices(ctx, nil, 0, 0)

	suite.Require().NoError(err)
	suite.Len(rows, 1)
	suite.Equal(5, gotLimit)
	// Default trailing window is 30 days.
	suite.WithinDuration(time.Now().AddDate(0, 0, -30), gotSince, time.Minute)
}

func (suite *CatalogServiceTestSuite) TestPopularServices_InvalidVehicleType() {
	ctx := context.Background()
	bad := domain.VehicleType("hovercraft")

	rows, err := suite.service.PopularServices(ctx, &bad, 7, 3)

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
