package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "happenly/internal/delivery/http/helpers"
	"happenly/internal/delivery/http/middleware"
	"happenly/internal/domain"
)

// AddGuestRequest is the request body for POST /events/{eventID}/guests.
type AddGuestRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Contact    *string `json:"contact"`
	RSVPStatus *string `json:"rsvp_status"`
}

// Validate implements Validator.
func (g AddGuestRequest) Validate() []string {
	var errs []string
	if g.Name == "" {
		errs = append(errs, "name is required")
	}
	if g.RSVPStatus != nil && !domain.KnownRSVPStatus(*g.RSVPStatus) {
		errs = append(errs, "rsvp_status must be one of: Pending, Accepted, Declined")
	}
	return errs
}

// UpdateGuestRequest is the request body for PATCH /events/{eventID}/guests/{guestID}.
type UpdateGuestRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Contact    *string `json:"contact"`
	RSVPStatus *string `json:"rsvp_status"`
}

// Validate implements Validator.
func (g UpdateGuestRequest) Validate() []string {
	var errs []string
	if g.Name != nil && *g.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if g.RSVPStatus != nil && !domain.KnownRSVPStatus(*g.RSVPStatus) {
		errs = append(errs, "rsvp_status must be one of: Pending, Accepted, Declined")
	}
	return errs
}

type GuestController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewGuestController(logger *slog.Logger, svc domain.EventService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// AddGuest godoc
// @Summary Add a guest to an event
// @Description Adds a guest. RSVP status defaults to "Pending". Only the event owner can add guests.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body AddGuestRequest true "Guest data"
// @Success 201 {object} helpers.APIResponse "data contains the created guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests [post]
func (c *GuestController) AddGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req AddGuestRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	guest := domain.NewGuest(eventID, req.Name, req.Email, now, now)
	guest.Contact = req.Contact
	if req.RSVPStatus != nil {
		guest.RSVPStatus = *req.RSVPStatus
	}
	if err := c.Service.AddGuest(r.Context(), eventID, userID, guest); err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, guest)
}

// ListGuests godoc
// @Summary List guests of an event
// @Description Returns all guests of the event. Only the event owner can list guests.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the guest list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests [get]
func (c *GuestController) ListGuests(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	guests, err := c.Service.ListGuests(r.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, guests)
}

// UpdateGuest godoc
// @Summary Update a guest
// @Description Updates guest fields, including RSVP status. Only the event owner can update.
// @Tags guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Param body body UpdateGuestRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests/{guestID} [patch]
func (c *GuestController) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	guestID := r.PathValue("guestID")
	var req UpdateGuestRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.GuestUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		RSVPStatus: req.RSVPStatus,
	}
	guest, err := c.Service.UpdateGuest(r.Context(), eventID, guestID, userID, upd)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, guest)
}

// RemoveGuest godoc
// @Summary Remove a guest
// @Description Removes a guest from the event. Only the event owner can remove guests.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param guestID path string true "Guest ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/guests/{guestID} [delete]
func (c *GuestController) RemoveGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	guestID := r.PathValue("guestID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.RemoveGuest(r.Context(), eventID, guestID, userID); err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "guest removed"})
}
