package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/Thrinath17/FitTrack/internal/model"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	historyWindow = 30
)

// The insight call never propagates a fault to the user; it degrades to
// one of these fixed strings.
const (
	FallbackNoKey = "AI Coach is unavailable. Please check your API Key configuration."
	FallbackError = "Great job logging your workouts! Keep it up."
	FallbackEmpty = "Keep pushing! Consistency is key."
)

type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Insight asks the model for a short consistency read on the attendance
// history. It always returns a displayable string.
func (c *Client) Insight(ctx context.Context, records []model.AttendanceRecord) string {
	if strings.TrimSpace(c.APIKey) == "" {
		return FallbackNoKey
	}
	text, err := c.generate(ctx, buildPrompt(records))
	if err != nil {
		return FallbackError
	}
	if strings.TrimSpace(text) == "" {
		return FallbackEmpty
	}
	return text
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	modelName := strings.TrimSpace(c.Model)
	if modelName == "" {
		modelName = defaultModel
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal generate payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, modelName, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute generate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("generate request failed with status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(records []model.AttendanceRecord) string {
	sorted := make([]model.AttendanceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if len(sorted) > historyWindow {
		sorted = sorted[:historyWindow]
	}

	var lines []string
	for _, rec := range sorted {
		status := "Missed"
		if rec.Attended {
			status = "Attended"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Date, status))
	}

	return fmt.Sprintf(`You are a motivational fitness coach.
Analyze the user's gym attendance for the last 30 days provided below.
Give a short, 2-sentence summary of their consistency and 1 actionable tip to improve or maintain momentum.
Keep the tone encouraging but firm.

Data:
%s`, strings.Join(lines, "\n"))
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}
