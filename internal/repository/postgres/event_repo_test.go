package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happenly/internal/domain"
)

var eventCols = []string{"id", "title", "description", "date", "time", "venue", "category", "budget", "status", "owner_id", "created_at", "updated_at"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: &domain.Event{
				Title:     "Gala",
				Date:      "2026-09-01",
				Budget:    1000,
				Status:    domain.EventStatusUpcoming,
				OwnerID:   "user-1",
				CreatedAt: created,
				UpdatedAt: created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, description, date, time, venue, category, budget, status, owner_id, created_at, updated_at\)`).
					WithArgs("Gala", nil, "2026-09-01", nil, nil, nil, 1000.0, "upcoming", "user-1", created, created).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-1"))
			},
			wantID: "ev-1",
		},
		{
			name: "db error",
			event: &domain.Event{
				Title:     "Gala",
				Date:      "2026-09-01",
				Status:    domain.EventStatusUpcoming,
				OwnerID:   "user-1",
				CreatedAt: created,
				UpdatedAt: created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
			require.NoError(t, err)
			defer db.Close()
			tt.mock(mock)

			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, tt.event.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description, date, time, venue, category, budget, status, owner_id, created_at, updated_at FROM events WHERE id = \$1`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("ev-1", "Gala", nil, "2026-09-01", "18:00:00", "Main Hall", nil, 1000.0, "upcoming", "user-1", now, now))

	repo := NewEventRepository(db)
	e, err := repo.GetByID(ctx, "ev-1")
	require.NoError(t, err)

	assert.Equal(t, "Gala", e.Title)
	assert.Nil(t, e.Description)
	require.NotNil(t, e.Time)
	assert.Equal(t, "18:00:00", *e.Time)
	require.NotNil(t, e.Venue)
	assert.Equal(t, "Main Hall", *e.Venue)
	assert.Nil(t, e.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewEventRepository(db)
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListByOwnerID(t *testing.T) {
	now := time.Now()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM events WHERE owner_id = \$1 ORDER BY date ASC`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("ev-1", "Gala", nil, "2026-09-01", nil, nil, nil, 1000.0, "upcoming", "user-1", now, now).
			AddRow("ev-2", "Workshop", "hands-on", "2026-09-05", nil, nil, "training", 0.0, "ongoing", "user-1", now, now))

	repo := NewEventRepository(db)
	events, err := repo.ListByOwnerID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Gala", events[0].Title)
	require.NotNil(t, events[1].Description)
	assert.Equal(t, "hands-on", *events[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	now := time.Now()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`UPDATE events SET updated_at = NOW\(\), title = \$1, status = \$2\s+WHERE id = \$3`).
		WithArgs("Renamed", "completed", "ev-1").
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("ev-1", "Renamed", nil, "2026-09-01", nil, nil, nil, 1000.0, "completed", "user-1", now, now))

	repo := NewEventRepository(db)
	title := "Renamed"
	status := domain.EventStatusCompleted
	e, err := repo.Update(context.Background(), "ev-1", domain.EventUpdate{Title: &title, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", e.Title)
	assert.Equal(t, "completed", e.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update_NoFields(t *testing.T) {
	now := time.Now()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	// With nothing to set, the repo falls back to a plain fetch.
	mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("ev-1", "Gala", nil, "2026-09-01", nil, nil, nil, 1000.0, "upcoming", "user-1", now, now))

	repo := NewEventRepository(db)
	e, err := repo.Update(context.Background(), "ev-1", domain.EventUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Gala", e.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("ev-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewEventRepository(db)
	require.NoError(t, repo.Delete(context.Background(), "ev-1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
