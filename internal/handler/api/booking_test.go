//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/handler/api"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/tests/common/builder"
	"studio-booking/tests/common/httptest"
	commandsmock "studio-booking/tests/mock/commands"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateStudioBooking)
	s.router.GET("/bookings", s.handler.ListStudioBookings)
	s.router.DELETE("/bookings/:id", s.handler.DeleteStudioBooking)
	s.router.POST("/service-bookings", s.handler.CreateServiceBooking)
	s.router.GET("/service-bookings", s.handler.ListServiceBookings)
	s.router.DELETE("/service-bookings/:id", s.handler.DeleteServiceBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateStudioBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateStudioBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with the stored booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), booking.KindStudio, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("studio", response.BookingType)
		s.Equal("pending", response.PaymentStatus)
	})

	s.Run("error: 400 Bad Request when totals disagree with items", func() {
		mismatched := builder.NewBookingBuilder().WithTotals(20000, 19900).BuildCreateRequestDTO()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), booking.KindStudio, mismatched).
			Return(nil, commands.ErrTotalMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, mismatched, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Estimated total")
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"studio": ""}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "total mismatch",
				commandsError:  commands.ErrTotalMismatch,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Estimated total",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), booking.KindStudio, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCreateServiceBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateServiceBooking() {
	url := "/service-bookings"

	reqBody := builder.NewBookingBuilder().AsService().BuildServiceRequestDTO()
	returnView := builder.NewBookingBuilder().AsService().BuildView()

	s.Run("success: returns 201 with bookingType service", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), booking.KindService, reqBody.ToCommon()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("service", response.BookingType)
	})

	s.Run("error: 400 Bad Request when services list is empty", func() {
		empty := builder.NewBookingBuilder().AsService().BuildServiceRequestDTO()
		empty.Services = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, empty, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().AsPaid().WithCalendarEventID("evt_123").BuildView(),
	}

	s.Run("success: returns 200 OK with cache disabled", func() {
		s.mockQueries.EXPECT().ListByKind(gomock.Any(), booking.KindStudio).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, len(views))
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Cache-Control": "no-store",
			"Pragma":        "no-cache",
		})
	})

	s.Run("success: service list uses the service kind", func() {
		serviceViews := []*queries.BookingView{
			builder.NewBookingBuilder().AsService().BuildView(),
		}
		s.mockQueries.EXPECT().ListByKind(gomock.Any(), booking.KindService).
			Return(serviceViews, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/service-bookings", nil, "")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("service", response[0].BookingType)
	})

	s.Run("error: returns 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByKind(gomock.Any(), booking.KindStudio).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestDeleteBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), booking.KindStudio, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: service path passes the service kind", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), booking.KindService, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/service-bookings/"+bookingID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), booking.KindStudio, bookingID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: returns 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), booking.KindStudio, bookingID).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
