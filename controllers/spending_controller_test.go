package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/LmaoGamer22487/MyWellness-App/models"
)

func TestSummarizeSpending(t *testing.T) {
	t.Run("empty month", func(t *testing.T) {
		got := summarizeSpending(nil)
		assert.Equal(t, 0.0, got.Total)
		assert.Empty(t, got.ByCategory)
		assert.Empty(t, got.DailyTotals)
	})

	t.Run("totals split by category and day", func(t *testing.T) {
		logs := []models.SpendingLog{
			{Date: "2025-03-10", Category: "Food", Amount: 12.50},
			{Date: "2025-03-10", Category: "Transport", Amount: 3.20},
			{Date: "2025-03-11", Category: "Food", Amount: 8.30},
		}

		got := summarizeSpending(logs)
		assert.Equal(t, 24.0, got.Total)
		assert.InDelta(t, 20.80, got.ByCategory["Food"], 1e-9)
		assert.InDelta(t, 3.20, got.ByCategory["Transport"], 1e-9)
		assert.InDelta(t, 15.70, got.DailyTotals["2025-03-10"], 1e-9)
		assert.InDelta(t, 8.30, got.DailyTotals["2025-03-11"], 1e-9)
	})

	t.Run("total is rounded to cents", func(t *testing.T) {
		logs := []models.SpendingLog{
			{Date: "2025-03-10", Category: "Other", Amount: 0.1},
			{Date: "2025-03-10", Category: "Other", Amount: 0.2},
		}
		got := summarizeSpending(logs)
		assert.Equal(t, 0.3, got.Total)
	})
}

func spendingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewSpendingController(db)
	r := gin.New()
	r.Use(asUser("user_abc"))
	r.POST("/spending", c.CreateLog)
	return r
}

func TestSpendingCreateLog(t *testing.T) {
	t.Run("explicit zero amount is accepted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO `spending_logs`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		r := spendingRouter(db)

		body := `{"amount": 0, "category": "Other", "date": "2025-03-12"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/spending", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"amount":0`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("omitted amount is rejected", func(t *testing.T) {
		db, _ := newMockDB(t)
		r := spendingRouter(db)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/spending", strings.NewReader(`{"category": "Other", "date": "2025-03-12"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
