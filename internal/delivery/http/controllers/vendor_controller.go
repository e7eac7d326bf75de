package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "happenly/internal/delivery/http/helpers"
	"happenly/internal/delivery/http/middleware"
	"happenly/internal/domain"
)

// AddVendorRequest is the request body for POST /events/{eventID}/vendors.
type AddVendorRequest struct {
	Name    string   `json:"name"`
	Type    *string  `json:"type"`
	Contact *string  `json:"contact"`
	Cost    *float64 `json:"cost"`
}

// Validate implements Validator.
func (v AddVendorRequest) Validate() []string {
	var errs []string
	if v.Name == "" {
		errs = append(errs, "name is required")
	}
	if v.Cost != nil && *v.Cost < 0 {
		errs = append(errs, "cost must be non-negative")
	}
	return errs
}

// UpdateVendorRequest is the request body for PATCH /events/{eventID}/vendors/{vendorID}.
type UpdateVendorRequest struct {
	Name    *string  `json:"name"`
	Type    *string  `json:"type"`
	Contact *string  `json:"contact"`
	Cost    *float64 `json:"cost"`
}

// Validate implements Validator.
func (v UpdateVendorRequest) Validate() []string {
	var errs []string
	if v.Name != nil && *v.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if v.Cost != nil && *v.Cost < 0 {
		errs = append(errs, "cost must be non-negative")
	}
	return errs
}

type VendorController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewVendorController(logger *slog.Logger, svc domain.EventService) *VendorController {
	return &VendorController{
		Logger:  logger,
		Service: svc,
	}
}

// AddVendor godoc
// @Summary Add a vendor to an event
// @Description Adds a vendor. Cost may be omitted and counts as zero spend. Only the event owner can add vendors.
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body AddVendorRequest true "Vendor data"
// @Success 201 {object} helpers.APIResponse "data contains the created vendor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/vendors [post]
func (c *VendorController) AddVendor(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req AddVendorRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	now := time.Now()
	vendor := domain.NewVendor(eventID, req.Name, now, now)
	vendor.Type = req.Type
	vendor.Contact = req.Contact
	vendor.Cost = req.Cost
	if err := c.Service.AddVendor(r.Context(), eventID, userID, vendor); err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, vendor)
}

// ListVendors godoc
// @Summary List vendors of an event
// @Description Returns all vendors of the event. Only the event owner can list vendors.
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the vendor list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/vendors [get]
func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	vendors, err := c.Service.ListVendors(r.Context(), eventID, userID)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, vendors)
}

// UpdateVendor godoc
// @Summary Update a vendor
// @Description Updates vendor fields. Only the event owner can update.
// @Tags vendors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param vendorID path string true "Vendor ID (UUID)"
// @Param body body UpdateVendorRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated vendor"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/vendors/{vendorID} [patch]
func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	vendorID := r.PathValue("vendorID")
	var req UpdateVendorRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.VendorUpdate{
		Name:    req.Name,
		Type:    req.Type,
		Contact: req.Contact,
		Cost:    req.Cost,
	}
	vendor, err := c.Service.UpdateVendor(r.Context(), eventID, vendorID, userID, upd)
	if err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, vendor)
}

// RemoveVendor godoc
// @Summary Remove a vendor
// @Description Removes a vendor from the event. Only the event owner can remove vendors.
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param vendorID path string true "Vendor ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/vendors/{vendorID} [delete]
func (c *VendorController) RemoveVendor(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	vendorID := r.PathValue("vendorID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.RemoveVendor(r.Context(), eventID, vendorID, userID); err != nil {
		respondServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "vendor removed"})
}
