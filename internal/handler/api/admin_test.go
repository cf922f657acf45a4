//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"studio-booking/internal/handler/api"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/httptest"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockMaintenance *commandsmock.MockMaintenanceCommands
	mockWatch       *queriesmock.MockWatchQueries
	handler         *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockMaintenance = commandsmock.NewMockMaintenanceCommands(s.mockCtrl)
	s.mockWatch = queriesmock.NewMockWatchQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockMaintenance, s.mockWatch)

	// Mock admin guard for testing
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("admin_subject", "ops@example.com")
		c.Next()
	}

	s.router.POST("/admin/bookings/fix-dates", adminMiddleware, s.handler.FixBookingDates)
	s.router.POST("/admin/calendar/watch", adminMiddleware, s.handler.RegisterWatch)
	s.router.GET("/admin/calendar/watch-status", adminMiddleware, s.handler.WatchStatus)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

// ================================================================================
// TestFixBookingDates
// ================================================================================

func (s *AdminHandlerTestSuite) TestFixBookingDates() {
	url := "/admin/bookings/fix-dates"

	s.Run("success: returns 200 OK with repair report", func() {
		result := &commands.DateRepairResult{
			Processed: 3,
			Fixed:     2,
			Errored:   1,
			Samples: []commands.DateRepairSample{
				{
					BookingID: uuid.New(),
					Before:    time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
					After:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				},
			},
		}
		s.mockMaintenance.EXPECT().ShiftBookingDates(gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var response commands.DateRepairResult
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Processed)
		s.Equal(2, response.Fixed)
		s.Equal(1, response.Errored)
		s.Len(response.Samples, 1)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: returns 500 Internal Server Error on command failure", func() {
		s.mockMaintenance.EXPECT().ShiftBookingDates(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestRegisterWatch
// ================================================================================

func (s *AdminHandlerTestSuite) TestRegisterWatch() {
	url := "/admin/calendar/watch"

	s.Run("success: returns 200 OK with active channel", func() {
		channelID := uuid.New()
		expiration := time.Now().Add(7 * 24 * time.Hour).UTC()
		view := &queries.WatchStatusView{
			Active:     true,
			ChannelID:  &channelID,
			Expiration: &expiration,
		}
		s.mockMaintenance.EXPECT().RegisterCalendarWatch(gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")

		var response resdto.WatchStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Active)
		s.Equal(channelID, *response.ChannelID)
	})

	s.Run("error: 502 Bad Gateway when provider registration fails", func() {
		s.mockMaintenance.EXPECT().RegisterCalendarWatch(gomock.Any()).
			Return(nil, commands.ErrWatchRegistrationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin-token")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusBadGateway, "Calendar watch registration failed")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

// ================================================================================
// TestWatchStatus
// ================================================================================

func (s *AdminHandlerTestSuite) TestWatchStatus() {
	url := "/admin/calendar/watch-status"

	s.Run("success: returns active registration", func() {
		channelID := uuid.New()
		expiration := time.Now().Add(24 * time.Hour).UTC()
		view := &queries.WatchStatusView{
			Active:     true,
			ChannelID:  &channelID,
			Expiration: &expiration,
		}
		s.mockWatch.EXPECT().Status(gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")

		var response resdto.WatchStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Active)
	})

	s.Run("success: no registration reports inactive", func() {
		s.mockWatch.EXPECT().Status(gomock.Any()).
			Return(&queries.WatchStatusView{Active: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")

		var response resdto.WatchStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Active)
		s.Nil(response.ChannelID)
	})

	s.Run("error: returns 500 Internal Server Error on query failure", func() {
		s.mockWatch.EXPECT().Status(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "admin-token")
		httptest.AssertErrorEnvelope(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
