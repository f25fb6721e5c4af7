package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lavadero-app/lavadero-backend/internal/core/domain"
	portssvc "github.com/lavadero-app/lavadero-backend/internal/core/ports/services"
	"github.com/lavadero-app/lavadero-backend/internal/handlers"
	"github.com/lavadero-app/lavadero-backend/internal/platform/config"
	"github.com/lavadero-app/lavadero-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// tokenForRole signs a short-lived test token carrying the given role.
func tokenForRole(t *testing.T, role domain.UserRole, secret string) string {
	t.Helper()
	token, err := utils.GenerateJWT(uuid.NewString(), "test@lavadero.com", string(role), secret, time.Hour, "lavadero-test")
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DefaultWindow() (time.Time, time.Time) {
	args := m.Called()
	return args.Get(0).(time.Time), args.Get(1).(time.Time)
}

func (m *MockReportingService) Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockReportingService) Detailed(ctx context.Context, from, to time.Time) (*domain.DetailedReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailedReport), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	jwtSecret            string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockReportingService = new(MockReportingService)

	cfg := &config.Config{
		JWTSecret:       suite.jwtSecret,
		JWTIssuer:       "lavadero-test",
		IsProduction:    true,
		FrontendBaseURL: "http://localhost:3000",
		DefaultPageSize: 50,
		MaxPageSize:     200,
	}

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Reporting: suite.mockReportingService,
	})
}

func (suite *ReportingHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	token := tokenForRole(suite.T(), domain.RoleSecretario, suite.jwtSecret)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestSummary_DefaultWindowWhenNoBounds() {
	from := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	suite.mockReportingService.On("DefaultWindow").Return(from, to).Once()
	suite.mockReportingService.On("Summary", mock.Anything, from, to).Return(&domain.Summary{TotalRecords: 4}, nil).Once()

	w := suite.get("/api/reportes/resumen")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestSummary_ExplicitRangeForwarded() {
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	suite.mockReportingService.On("Summary", mock.Anything, from, to).Return(&domain.Summary{TotalRecords: 2}, nil).Once()

	w := suite.get("/api/reportes/resumen?fecha_desde=2026-07-01&fecha_hasta=2026-07-31")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "DefaultWindow")
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestSummary_MissingUpperBoundRejected() {
	w := suite.get("/api/reportes/resumen?fecha_desde=2026-07-01")

	suite.Equal(http.StatusBadRequest, w.Code)

	var body struct {
		Success bool `json:"success"`
		Errores []struct {
			Field   string `json:"campo"`
			Message string `json:"mensaje"`
		} `json:"errores"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)
	suite.Require().Len(body.Errores, 1)
	suite.Equal("fecha_hasta", body.Errores[0].Field)

	suite.mockReportingService.AssertNotCalled(suite.T(), "Summary")
}

func (suite *ReportingHandlerTestSuite) TestSummary_MissingLowerBoundRejected() {
	w := suite.get("/api/reportes/resumen?fecha_hasta=2026-07-31")

	suite.Equal(http.StatusBadRequest, w.Code)

	var body struct {
		Errores []struct {
			Field string `json:"campo"`
		} `json:"errores"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Errores, 1)
	suite.Equal("fecha_desde", body.Errores[0].Field)

	suite.mockReportingService.AssertNotCalled(suite.T(), "Summary")
}

func (suite *ReportingHandlerTestSuite) TestDetailed_ReversedRangeRejected() {
	w := suite.get("/api/reportes/detallado?fecha_desde=2026-07-31&fecha_hasta=2026-07-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "Detailed")
}

// --- Run Test Suite ---
func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
