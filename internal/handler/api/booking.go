package api

import (
	"errors"
	"net/http"

	"studio-booking/internal/domain/booking"
	reqdto "studio-booking/internal/handler/dto/request"
	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create studio booking
// @Description Create a new studio booking with a pending payment status
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateStudioBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.createBooking(c, booking.KindStudio, req)
}

// @Summary Create service booking
// @Description Create a new service booking with a pending payment status
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateServiceBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /service-bookings [post]
func (h *BookingHandler) CreateServiceBooking(c *gin.Context) {
	var req reqdto.CreateServiceBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.createBooking(c, booking.KindService, req.ToCommon())
}

func (h *BookingHandler) createBooking(c *gin.Context, kind booking.Kind, req reqdto.CreateBookingRequest) {
	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), kind, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTotalMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Estimated total does not match item list",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List studio bookings
// @Description List every studio booking, newest first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListStudioBookings(c *gin.Context) {
	h.listBookings(c, booking.KindStudio)
}

// @Summary List service bookings
// @Description List every service booking, newest first
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /service-bookings [get]
func (h *BookingHandler) ListServiceBookings(c *gin.Context) {
	h.listBookings(c, booking.KindService)
}

func (h *BookingHandler) listBookings(c *gin.Context, kind booking.Kind) {
	views, err := h.bookingQueries.ListByKind(c.Request.Context(), kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromBookingView(view)
	}

	// Admin dashboards poll these lists; stale caches hide fresh bookings.
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel studio booking
// @Description Delete the booking and remove its calendar event if present
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteStudioBooking(c *gin.Context) {
	h.deleteBooking(c, booking.KindStudio)
}

// @Summary Cancel service booking
// @Description Delete the booking and remove its calendar event if present
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /service-bookings/{id} [delete]
func (h *BookingHandler) DeleteServiceBooking(c *gin.Context) {
	h.deleteBooking(c, booking.KindService)
}

func (h *BookingHandler) deleteBooking(c *gin.Context, kind booking.Kind) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), kind, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
