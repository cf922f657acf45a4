package api

import (
	"errors"
	"log/slog"
	"net/http"

	resdto "studio-booking/internal/handler/dto/response"
	"studio-booking/internal/handler/httperr"
	"studio-booking/internal/handler/middleware"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	maintenanceCommands commands.MaintenanceCommands
	watchQueries        queries.WatchQueries
}

func NewAdminHandler(maintenanceCommands commands.MaintenanceCommands, watchQueries queries.WatchQueries) *AdminHandler {
	return &AdminHandler{
		maintenanceCommands: maintenanceCommands,
		watchQueries:        watchQueries,
	}
}

// @Summary Fix booking dates
// @Description Shift the start date of every calendar-linked booking forward one day. NOT idempotent: each run shifts again.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.DateRepairResult
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/fix-dates [post]
func (h *AdminHandler) FixBookingDates(c *gin.Context) {
	result, err := h.maintenanceCommands.ShiftBookingDates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	subject, _ := middleware.GetAdminSubject(c)
	slog.Info("booking date repair executed",
		"admin", subject, "processed", result.Processed, "fixed", result.Fixed, "errored", result.Errored)

	c.JSON(http.StatusOK, result)
}

// @Summary Register calendar watch
// @Description Open a calendar push channel and persist it, replacing any previous registration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WatchStatusResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 502 {object} httperr.Response
// @Router /admin/calendar/watch [post]
func (h *AdminHandler) RegisterWatch(c *gin.Context) {
	view, err := h.maintenanceCommands.RegisterCalendarWatch(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWatchRegistrationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar watch registration failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	subject, _ := middleware.GetAdminSubject(c)
	slog.Info("calendar watch registered", "admin", subject, "channel_id", view.ChannelID)

	c.JSON(http.StatusOK, resdto.FromWatchStatusView(view))
}

// @Summary Get calendar watch status
// @Description Report whether a calendar push channel is registered and unexpired
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WatchStatusResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/calendar/watch-status [get]
func (h *AdminHandler) WatchStatus(c *gin.Context) {
	view, err := h.watchQueries.Status(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWatchStatusView(view))
}
