// Package recommender calls the external course-scoring service.
package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"learning-buddy-backend/pkg/apperr"
)

// RecommendedCourse is one scored course inside an interest area.
type RecommendedCourse struct {
	ID         string  `json:"id"`
	Score      float64 `json:"score"`
	CourseName string  `json:"course_name"`
	Category   string  `json:"category"`
	Text       string  `json:"text"`
}

// AreaRecommendation groups scored courses under one interest area.
type AreaRecommendation struct {
	Area    string              `json:"area"`
	Courses []RecommendedCourse `json:"courses"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RecommendCourses posts the user's interest tags to the scoring service
// and relays its response. Upstream non-2xx codes are surfaced unchanged.
func (c *Client) RecommendCourses(ctx context.Context, interestedAreas []string) ([]AreaRecommendation, error) {
	payload := map[string]any{
		"interestedAreas": interestedAreas,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + "/recommend-courses"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &apperr.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamDetail(respBody),
		}
	}

	var result []AreaRecommendation
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// upstreamDetail extracts the FastAPI {"detail": ...} message when present.
func upstreamDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return "failed to fetch recommended courses"
}
