package api

import (
	"errors"
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	paymentQueries  queries.PaymentQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, paymentQueries queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		paymentQueries:  paymentQueries,
	}
}

// @Summary Verify payment
// @Description Verify a checkout session, mark the booking paid and create its calendar event
// @Tags payments
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} commands.ConfirmPaymentResult
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/verify [get]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "session_id is required",
		})
		return
	}

	result, err := h.paymentCommands.ConfirmPayment(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotCompleted):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment has not been completed",
			})
		case errors.Is(err, commands.ErrMissingSessionMetadata):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment session carries no booking reference",
			})
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrPaymentLookupFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider lookup failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get session booking type
// @Description Return the booking category recorded in the session metadata
// @Tags payments
// @Produce json
// @Param session_id query string true "Checkout session ID"
// @Success 200 {object} resdto.SessionTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/session-type [get]
func (h *PaymentHandler) SessionType(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "session_id is required",
		})
		return
	}

	kind, err := h.paymentQueries.SessionKind(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMissingSessionType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment session carries no booking type",
			})
		case errors.Is(err, queries.ErrSessionLookupFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider lookup failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SessionTypeResponse{BookingType: kind})
}
