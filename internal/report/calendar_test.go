package report

import (
	"testing"
	"time"

	"happenly/internal/domain"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		event     *domain.Event
		wantStart time.Time
		wantEnd   time.Time
		wantColor string
		wantErr   error
	}{
		{
			name: "date and time",
			event: &domain.Event{
				Title:  "Wedding",
				Date:   "2024-06-01",
				Time:   strPtr("18:00:00"),
				Status: domain.EventStatusUpcoming,
			},
			wantStart: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
			wantColor: ColorUpcoming,
		},
		{
			name: "missing time defaults to 09:00",
			event: &domain.Event{
				Title:  "Brunch",
				Date:   "2024-06-01",
				Status: domain.EventStatusOngoing,
			},
			wantStart: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
			wantColor: ColorOngoing,
		},
		{
			name: "empty time string defaults to 09:00",
			event: &domain.Event{
				Title:  "Brunch",
				Date:   "2024-06-01",
				Time:   strPtr(""),
				Status: domain.EventStatusCompleted,
			},
			wantStart: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC),
			wantColor: ColorCompleted,
		},
		{
			name: "unknown status falls back to upcoming color",
			event: &domain.Event{
				Title:  "Old party",
				Date:   "2023-01-15",
				Time:   strPtr("12:30:00"),
				Status: "archived",
			},
			wantStart: time.Date(2023, 1, 15, 12, 30, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 1, 15, 14, 30, 0, 0, time.UTC),
			wantColor: ColorUpcoming,
		},
		{
			name: "unparsable date",
			event: &domain.Event{
				Title:  "Broken",
				Date:   "not-a-date",
				Status: domain.EventStatusUpcoming,
			},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name: "unparsable time",
			event: &domain.Event{
				Title:  "Broken",
				Date:   "2024-06-01",
				Time:   strPtr("late evening"),
				Status: domain.EventStatusUpcoming,
			},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := Project(tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.event.Title, block.Title)
			require.True(t, block.Start.Equal(tt.wantStart), "start: got %v want %v", block.Start, tt.wantStart)
			require.True(t, block.End.Equal(tt.wantEnd), "end: got %v want %v", block.End, tt.wantEnd)
			require.Equal(t, BlockDuration, block.End.Sub(block.Start))
			require.Equal(t, tt.wantColor, block.Color)
		})
	}
}

func TestStatusColor_Unknown(t *testing.T) {
	require.Equal(t, ColorUpcoming, StatusColor("archived"))
	require.Equal(t, ColorUpcoming, StatusColor(""))
}
