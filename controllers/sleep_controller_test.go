package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LmaoGamer22487/MyWellness-App/models"
)

func TestParseSleepTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "rfc3339 with offset",
			input: "2025-03-10T23:00:00Z",
			want:  time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "naive with seconds is taken as utc",
			input: "2025-03-10T23:00:00",
			want:  time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "naive without seconds",
			input: "2025-03-10T23:00",
			want:  time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date only is rejected",
			input: "2025-03-10",
			ok:    false,
		},
		{
			name:  "garbage is rejected",
			input: "last night",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSleepTimestamp(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestComputeHoursSlept(t *testing.T) {
	tests := []struct {
		name      string
		sleep     time.Time
		wake      time.Time
		wantHours float64
		wantWake  time.Time
	}{
		{
			name:      "overnight with wake already next day",
			sleep:     time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			wake:      time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
			wantHours: 8,
			wantWake:  time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
		},
		{
			name:      "same day wake before sleep rolls forward",
			sleep:     time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			wake:      time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC),
			wantHours: 8,
			wantWake:  time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
		},
		{
			name:      "equal times count as a full day",
			sleep:     time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			wake:      time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			wantHours: 24,
			wantWake:  time.Date(2025, 3, 11, 23, 0, 0, 0, time.UTC),
		},
		{
			name:      "short nap rounds to two decimals",
			sleep:     time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC),
			wake:      time.Date(2025, 3, 10, 13, 50, 0, 0, time.UTC),
			wantHours: 0.83,
			wantWake:  time.Date(2025, 3, 10, 13, 50, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wake, hours := computeHoursSlept(tt.sleep, tt.wake)
			assert.Equal(t, tt.wantHours, hours)
			assert.True(t, wake.Equal(tt.wantWake), "got %v want %v", wake, tt.wantWake)
		})
	}
}

func TestSleepDebtFor(t *testing.T) {
	logs := []models.SleepLog{
		{Date: "2025-03-10", HoursSlept: 7},
		{Date: "2025-03-11", HoursSlept: 6.5},
		{Date: "2025-03-12", HoursSlept: 7.5},
	}

	t.Run("undersleeping accumulates debt", func(t *testing.T) {
		got := sleepDebtFor(7.5, logs)
		assert.Equal(t, 3, got.DaysLogged)
		assert.Equal(t, 21.0, got.TotalSlept)
		assert.Equal(t, 22.5, got.TargetTotal)
		assert.Equal(t, 1.5, got.Debt)
		assert.Equal(t, 0.0, got.Surplus)
	})

	t.Run("oversleeping shows as surplus", func(t *testing.T) {
		got := sleepDebtFor(6, logs)
		assert.Equal(t, 18.0, got.TargetTotal)
		assert.Equal(t, 0.0, got.Debt)
		assert.Equal(t, 3.0, got.Surplus)
	})

	t.Run("no logs means no debt", func(t *testing.T) {
		got := sleepDebtFor(7.5, nil)
		assert.Equal(t, 0, got.DaysLogged)
		assert.Equal(t, 0.0, got.Debt)
		assert.Equal(t, 0.0, got.Surplus)
	})
}

func TestSleepDebtQueryIsCapped(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM `user_preferences`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT (.+) FROM `sleep_logs`(.+)LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "sleep_time", "wake_time", "hours_slept", "date"}))

	gin.SetMode(gin.TestMode)
	c := NewSleepController(db)
	r := gin.New()
	r.Use(asUser("user_abc"))
	r.GET("/sleep/debt", c.Debt)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sleep/debt", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"days_logged":0`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
