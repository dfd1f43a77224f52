package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "bare object",
			input: `{"calories": 500}`,
			want:  `{"calories": 500}`,
			ok:    true,
		},
		{
			name:  "object wrapped in prose",
			input: "Sure! Here is the analysis: {\"calories\": 500, \"protein\": 30} Hope that helps.",
			want:  `{"calories": 500, "protein": 30}`,
			ok:    true,
		},
		{
			name:  "markdown fenced reply",
			input: "```json\n{\"calories\": 650}\n```",
			want:  `{"calories": 650}`,
			ok:    true,
		},
		{
			name:  "no object at all",
			input: "I cannot analyze that meal.",
			ok:    false,
		},
		{
			name:  "opening brace never closed",
			input: `{"calories": 500`,
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONObject(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseMealReply(t *testing.T) {
	t.Run("clean reply", func(t *testing.T) {
		got, err := parseMealReply(`{"calories": 520, "protein": 32.5, "is_healthy": true}`)
		require.NoError(t, err)
		assert.Equal(t, MealNutrition{Calories: 520, Protein: 32.5, IsHealthy: true}, got)
	})

	t.Run("fractional calories truncate", func(t *testing.T) {
		got, err := parseMealReply(`{"calories": 519.9, "protein": 30, "is_healthy": false}`)
		require.NoError(t, err)
		assert.Equal(t, 519, got.Calories)
	})

	t.Run("prose around the object is tolerated", func(t *testing.T) {
		got, err := parseMealReply(`The estimate: {"calories": 400, "protein": 20, "is_healthy": true}.`)
		require.NoError(t, err)
		assert.Equal(t, 400, got.Calories)
	})

	t.Run("reply without an object fails", func(t *testing.T) {
		_, err := parseMealReply("no data")
		assert.Error(t, err)
	})
}

func chatServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "Analyze this meal:")

		w.WriteHeader(status)
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestAnalyzer(srv *httptest.Server) *MealAnalyzer {
	return &MealAnalyzer{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Client:  srv.Client(),
	}
}

func TestMealAnalyzerAnalyze(t *testing.T) {
	t.Run("successful analysis", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, `{"calories": 640, "protein": 42, "is_healthy": true}`)
		defer srv.Close()

		got := newTestAnalyzer(srv).Analyze(context.Background(), "grilled chicken with rice")
		assert.Equal(t, MealNutrition{Calories: 640, Protein: 42, IsHealthy: true}, got)
	})

	t.Run("api error degrades to zeros", func(t *testing.T) {
		srv := chatServer(t, http.StatusInternalServerError, "")
		defer srv.Close()

		got := newTestAnalyzer(srv).Analyze(context.Background(), "pizza")
		assert.Equal(t, MealNutrition{}, got)
	})

	t.Run("unparsable reply degrades to zeros", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, "I could not determine the nutrition.")
		defer srv.Close()

		got := newTestAnalyzer(srv).Analyze(context.Background(), "mystery stew")
		assert.Equal(t, MealNutrition{}, got)
	})

	t.Run("unreachable endpoint degrades to zeros", func(t *testing.T) {
		srv := chatServer(t, http.StatusOK, "")
		srv.Close()

		got := newTestAnalyzer(srv).Analyze(context.Background(), "salad")
		assert.Equal(t, MealNutrition{}, got)
	})
}
