package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/core/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

type WasherServiceTestSuite struct {
	suite.Suite
	mockWasherRepo *MockWasherRepository
	service        portssvc.WasherSvcFacade
}

func (suite *WasherServiceTestSuite) SetupTest() {
	suite.mockWasherRepo = new(MockWasherRepository)
	suite.service = services.NewWasherService(suite.mockWasherRepo)
}

func (suite *WasherServiceTestSuite) TestCreateWasher_ActiveByDefault() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	var saved domain.Washer
	suite.mockWasherRepo.SaveWasherFn = func(ctx context.Context, washer domain.Washer) error {
		saved = washer
		return nil
	}

	washer, err := suite.service.CreateWasher(ctx, dto.CreateWasherRequest{Name: "Pedro", LastName: "Gómez"}, creatorID)

	suite.Require().NoError(err)
	suite.True(washer.Active)
	suite.Equal("Pedro Gómez", washer.FullName())
	suite.Equal(creatorID, saved.CreatedBy)
	suite.NotEmpty(saved.WasherID)
}

func (suite *WasherServiceTestSuite) TestDeactivateWasher_SoftDelete() {
	ctx := context.Background()
	washerID := uuid.NewString()
	updaterID := uuid.NewString()

	suite.mockWasherRepo.SetWasherActiveFn = func(ctx context.Context, id string, active bool, updatedBy string) error {
		suite.Equal(washerID, id)
		suite.False(active)
		suite.Equal(updaterID, updatedBy)
		return nil
	}

	err := suite.service.DeactivateWasher(ctx, washerID, updaterID)
	suite.Require().NoError(err)
}

func (suite *WasherServiceTestSuite) TestDeactivateWasher_Missing() {
	ctx := context.Background()
	suite.mockWasherRepo.SetWasherActiveFn = func(ctx context.Context, id string, active bool, updatedBy string) error {
		return apperrors.ErrNotFound
	}

	err := suite.service.DeactivateWasher(ctx, uuid.NewString(), uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WasherServiceTestSuite) TestListActiveWashers() {
	ctx := context.Background()
	suite.mockWasherRepo.FindActiveWashersFn = func(ctx context.Context) ([]domain.Washer, error) {
		return []domain.Washer{
			{WasherID: uuid.NewString(), Name: "Ana", Active: true},
			{WasherID: uuid.NewString(), Name: "Pedro", Active: true},
		}, nil
	}

	washers, err := suite.service.ListActiveWashers(ctx)

	suite.Require().NoError(err)
	suite.Len(washers, 2)
}

func TestWasherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WasherServiceTestSuite))
}
