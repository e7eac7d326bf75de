package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happenly/internal/domain"
)

type stubCalendarService struct {
	blocks []domain.TimeBlock
	ics    string
	err    error
}

func (s *stubCalendarService) ListTimeBlocks(ctx context.Context, ownerID string) ([]domain.TimeBlock, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.blocks, nil
}

func (s *stubCalendarService) ExportICS(ctx context.Context, ownerID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.ics, nil
}

func TestListTimeBlocksHandler(t *testing.T) {
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	svc := &stubCalendarService{
		blocks: []domain.TimeBlock{
			{Title: "Gala", Start: start, End: start.Add(2 * time.Hour), Color: "#3788d8"},
		},
	}
	ctrl := NewCalendarController(testLogger(), svc)

	r := newAuthedRequest(http.MethodGet, "/calendar", "user-1", "")
	rec := httptest.NewRecorder()
	ctrl.ListTimeBlocks(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Contains(t, rec.Body.String(), "#3788d8")
}

func TestExportICSHandler(t *testing.T) {
	svc := &stubCalendarService{ics: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
	ctrl := NewCalendarController(testLogger(), svc)

	r := newAuthedRequest(http.MethodGet, "/calendar/ics", "user-1", "")
	rec := httptest.NewRecorder()
	ctrl.ExportICS(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "happenly.ics")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestCalendarHandlersUnauthenticated(t *testing.T) {
	ctrl := NewCalendarController(testLogger(), &stubCalendarService{})

	r := httptest.NewRequest(http.MethodGet, "/calendar", nil)
	rec := httptest.NewRecorder()
	ctrl.ListTimeBlocks(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	r = httptest.NewRequest(http.MethodGet, "/calendar/ics", nil)
	rec = httptest.NewRecorder()
	ctrl.ExportICS(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
