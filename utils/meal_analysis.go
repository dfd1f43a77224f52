package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/LmaoGamer22487/MyWellness-App/config"
)

const mealSystemPrompt = `You are a nutrition expert. Analyze the meal and provide: calories (number), protein in grams (number), and whether it's a healthy choice (true/false). Respond ONLY in JSON format: {"calories": number, "protein": number, "is_healthy": boolean}`

// MealNutrition is the derived nutrition estimate for a meal description.
type MealNutrition struct {
	Calories  int     `json:"calories"`
	Protein   float64 `json:"protein"`
	IsHealthy bool    `json:"is_healthy"`
}

// MealAnalyzer estimates meal macros via an OpenAI-compatible chat endpoint.
type MealAnalyzer struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewMealAnalyzer builds an analyzer from loaded configuration.
func NewMealAnalyzer() *MealAnalyzer {
	cfg := config.Get()
	return &MealAnalyzer{
		BaseURL: strings.TrimRight(cfg.LLMBaseURL, "/"),
		APIKey:  cfg.LLMAPIKey,
		Model:   cfg.LLMModel,
		Client:  &http.Client{Timeout: time.Duration(nz(cfg.LLMTimeoutSec, 30)) * time.Second},
	}
}

// Analyze returns the nutrition estimate for a meal description. Any failure
// (transport, timeout, unparsable reply) degrades to zero values: recording
// the meal matters more than accurate macros.
func (m *MealAnalyzer) Analyze(ctx context.Context, description string) MealNutrition {
	n, err := m.analyze(ctx, description)
	if err != nil {
		Sugar.Errorf("meal analysis failed: %v", err)
		return MealNutrition{}
	}
	return n
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (m *MealAnalyzer) analyze(ctx context.Context, description string) (MealNutrition, error) {
	payload := chatRequest{
		Model: m.Model,
		Messages: []chatMessage{
			{Role: "system", Content: mealSystemPrompt},
			{Role: "user", Content: "Analyze this meal: " + description},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return MealNutrition{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return MealNutrition{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.APIKey)
	}

	resp, err := m.Client.Do(req)
	if err != nil {
		return MealNutrition{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return MealNutrition{}, fmt.Errorf("llm api status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return MealNutrition{}, err
	}
	if len(parsed.Choices) == 0 {
		return MealNutrition{}, errors.New("llm reply has no choices")
	}

	return parseMealReply(parsed.Choices[0].Message.Content)
}

// parseMealReply extracts the first {...} object from the reply text and
// decodes the nutrition fields from it.
func parseMealReply(reply string) (MealNutrition, error) {
	obj, ok := extractJSONObject(reply)
	if !ok {
		return MealNutrition{}, errors.New("no JSON object in llm reply")
	}
	// calories may come back fractional; truncate like the API contract
	// expects an integer.
	var raw struct {
		Calories  float64 `json:"calories"`
		Protein   float64 `json:"protein"`
		IsHealthy bool    `json:"is_healthy"`
	}
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return MealNutrition{}, err
	}
	return MealNutrition{
		Calories:  int(raw.Calories),
		Protein:   raw.Protein,
		IsHealthy: raw.IsHealthy,
	}, nil
}

// extractJSONObject returns the substring from the first '{' to the next '}'.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	end := strings.Index(s[start:], "}")
	if end < 0 {
		return "", false
	}
	return s[start : start+end+1], true
}
