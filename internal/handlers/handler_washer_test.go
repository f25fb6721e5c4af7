package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/dto"
	"github.com/lavadero-app/lavadero-backend/internal/handlers"
	"github.com/lavadero-app/lavadero-backend/internal/platform/config"
	"github.com/lavadero-app/lavadero-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WasherService ---
type MockWasherService struct {
	mock.Mock
}

func (m *MockWasherService) CreateWasher(ctx context.Context, req dto.CreateWasherRequest, creatorUserID string) (*domain.Washer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Washer), args.Error(1)
}

func (m *MockWasherService) ListActiveWashers(ctx context.Context) ([]domain.Washer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Washer), args.Error(1)
}

func (m *MockWasherService) DeactivateWasher(ctx context.Context, washerID string, updaterUserID string) error {
	args := m.Called(ctx, washerID, updaterUserID)
	return args.Error(0)
}

var _ portssvc.WasherSvcFacade = (*MockWasherService)(nil)

// --- Test Suite ---
type WasherHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockWasherService *MockWasherService
	jwtSecret         string
}

func (suite *WasherHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockWasherService = new(MockWasherService)

	cfg := &config.Config{
		JWTSecret:       suite.jwtSecret,
		JWTIssuer:       "lavadero-test",
		IsProduction:    true, // keeps swagger out of the test router
		FrontendBaseURL: "http://localhost:3000",
		DefaultPageSize: 50,
		MaxPageSize:     200,
	}

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Washer: suite.mockWasherService,
	})
}

func (suite *WasherHandlerTestSuite) tokenFor(role domain.UserRole) string {
	token, err := utils.GenerateJWT(uuid.NewString(), "test@lavadero.com", string(role), suite.jwtSecret, time.Hour, "lavadero-test")
	if err != nil {
		suite.FailNow("failed to sign test token", err.Error())
	}
	return token
}

func (suite *WasherHandlerTestSuite) do(method, url, token string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WasherHandlerTestSuite) TestListWashers_Success() {
	suite.mockWasherService.On("ListActiveWashers", mock.Anything).Return([]domain.Washer{
		{WasherID: uuid.NewString(), Name: "Ana", LastName: "Pérez", Active: true},
		{WasherID: uuid.NewString(), Name: "Pedro", LastName: "Gómez", Active: true},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/lavadores", suite.tokenFor(domain.RoleSecretario), nil)

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Success   bool                 `json:"success"`
		Lavadores []dto.WasherResponse `json:"lavadores"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Len(body.Lavadores, 2)
	suite.Equal("Ana", body.Lavadores[0].Name)

	suite.mockWasherService.AssertExpectations(suite.T())
}

func (suite *WasherHandlerTestSuite) TestListWashers_MissingToken() {
	w := suite.do(http.MethodGet, "/api/lavadores", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWasherService.AssertNotCalled(suite.T(), "ListActiveWashers")
}

func (suite *WasherHandlerTestSuite) TestCreateWasher_SecretarioForbidden() {
	payload, _ := json.Marshal(dto.CreateWasherRequest{Name: "Pedro", LastName: "Gómez"})

	w := suite.do(http.MethodPost, "/api/lavadores", suite.tokenFor(domain.RoleSecretario), payload)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockWasherService.AssertNotCalled(suite.T(), "CreateWasher")
}

func (suite *WasherHandlerTestSuite) TestCreateWasher_AdminSuccess() {
	created := &domain.Washer{WasherID: uuid.NewString(), Name: "Pedro", LastName: "Gómez", Active: true}
	suite.mockWasherService.On("CreateWasher", mock.Anything,
		mock.MatchedBy(func(req dto.CreateWasherRequest) bool { return req.Name == "Pedro" }),
		mock.AnythingOfType("string"),
	).Return(created, nil).Once()

	payload, _ := json.Marshal(dto.CreateWasherRequest{Name: "Pedro", LastName: "Gómez"})
	w := suite.do(http.MethodPost, "/api/lavadores", suite.tokenFor(domain.RoleAdmin), payload)

	suite.Equal(http.StatusCreated, w.Code)

	var body struct {
		Success bool               `json:"success"`
		Lavador dto.WasherResponse `json:"lavador"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)
	suite.Equal(created.WasherID, body.Lavador.WasherID)

	suite.mockWasherService.AssertExpectations(suite.T())
}

func (suite *WasherHandlerTestSuite) TestDeactivateWasher_Unknown() {
	washerID := uuid.NewString()
	suite.mockWasherService.On("DeactivateWasher", mock.Anything, washerID, mock.AnythingOfType("string")).
		Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/lavadores/"+washerID, suite.tokenFor(domain.RoleAdmin), nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)

	suite.mockWasherService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestWasherHandler(t *testing.T) {
	suite.Run(t, new(WasherHandlerTestSuite))
}
