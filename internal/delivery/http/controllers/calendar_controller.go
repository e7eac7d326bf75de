package controllers

import (
	"log/slog"
	"net/http"

	h "happenly/internal/delivery/http/helpers"
	"happenly/internal/delivery/http/middleware"
	"happenly/internal/domain"
)

type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTimeBlocks godoc
// @Summary List calendar time blocks
// @Description Returns the authenticated user's events projected into two-hour display blocks with status colors. Events with an unparseable date are skipped.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the time block list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar [get]
func (c *CalendarController) ListTimeBlocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	blocks, err := c.Service.ListTimeBlocks(r.Context(), userID)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, blocks)
}

// ExportICS godoc
// @Summary Export calendar as iCalendar
// @Description Returns the authenticated user's events as an iCalendar (.ics) document.
// @Tags calendar
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string "iCalendar document"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /calendar/ics [get]
func (c *CalendarController) ExportICS(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	ics, err := c.Service.ExportICS(r.Context(), userID)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="happenly.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ics)); err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to write ics response", "err", err)
	}
}
