package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	h "happenly/internal/delivery/http/helpers"
	"happenly/internal/domain"
)

func TestAddGuestHandler(t *testing.T) {
	var captured *domain.Guest
	svc := &stubEventService{
		addGuest: func(ctx context.Context, eventID, callerID string, guest *domain.Guest) error {
			guest.ID = "guest-1"
			captured = guest
			return nil
		},
	}
	ctrl := NewGuestController(testLogger(), svc)

	r := newAuthedRequest(http.MethodPost, "/events/ev-1/guests", "user-1",
		`{"name":"Ada","email":"ada@example.com"}`)
	r.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	ctrl.AddGuest(rec, r)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, "Ada", captured.Name)
	assert.Equal(t, domain.RSVPPending, captured.RSVPStatus)
	assert.Equal(t, "ev-1", captured.EventID)
}

func TestAddGuestHandlerBadRSVP(t *testing.T) {
	ctrl := NewGuestController(testLogger(), &stubEventService{})

	r := newAuthedRequest(http.MethodPost, "/events/ev-1/guests", "user-1",
		`{"name":"Ada","email":"ada@example.com","rsvp_status":"Maybe"}`)
	r.SetPathValue("eventID", "ev-1")
	rec := httptest.NewRecorder()
	ctrl.AddGuest(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, h.ErrCodeBadRequest, resp.Error.Code)
}

func TestUpdateGuestHandlerNotFound(t *testing.T) {
	svc := &stubEventService{
		updateGuest: func(ctx context.Context, eventID, guestID, callerID string, upd domain.GuestUpdate) (*domain.Guest, error) {
			return nil, domain.ErrNotFound
		},
	}
	ctrl := NewGuestController(testLogger(), svc)

	r := newAuthedRequest(http.MethodPatch, "/events/ev-1/guests/guest-9", "user-1",
		`{"rsvp_status":"Accepted"}`)
	r.SetPathValue("eventID", "ev-1")
	r.SetPathValue("guestID", "guest-9")
	rec := httptest.NewRecorder()
	ctrl.UpdateGuest(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveGuestHandlerForbidden(t *testing.T) {
	svc := &stubEventService{
		removeGuest: func(ctx context.Context, eventID, guestID, callerID string) error {
			return domain.ErrForbidden
		},
	}
	ctrl := NewGuestController(testLogger(), svc)

	r := newAuthedRequest(http.MethodDelete, "/events/ev-1/guests/guest-1", "intruder", "")
	r.SetPathValue("eventID", "ev-1")
	r.SetPathValue("guestID", "guest-1")
	rec := httptest.NewRecorder()
	ctrl.RemoveGuest(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
