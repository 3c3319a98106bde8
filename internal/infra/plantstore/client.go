package plantstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/vatisha/water-reminders/internal/domain"
)

// Client talks to the plant-records service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) ListUsers(ctx context.Context) (*UsersResponse, error) {
	u, err := url.JoinPath(c.baseURL, "/api/v1/users")
	if err != nil {
		return nil, fmt.Errorf("failed to build users URL: %w", err)
	}

	var result UsersResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListPlants(ctx context.Context, userID string) (*PlantsResponse, error) {
	u, err := url.JoinPath(c.baseURL, "/api/v1/users", userID, "plants")
	if err != nil {
		return nil, fmt.Errorf("failed to build plants URL: %w", err)
	}

	var result PlantsResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetPlant(ctx context.Context, plantID, userID string) (*PlantResponse, error) {
	base, err := url.JoinPath(c.baseURL, "/api/v1/plants", plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to build plant URL: %w", err)
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plant URL: %w", err)
	}
	q := u.Query()
	q.Set("user_id", userID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrPlantNotFound
	default:
		return nil, fmt.Errorf("unexpected status code from plant store: %d", resp.StatusCode)
	}

	var result PlantResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode plant response: %w", err)
	}
	return &result, nil
}

type markWateredRequest struct {
	UserID         string    `json:"user_id"`
	WateredAt      time.Time `json:"watered_at"`
	WateringStreak int       `json:"watering_streak"`
}

func (c *Client) MarkWatered(ctx context.Context, plantID, userID string, streak int, wateredAt time.Time) error {
	u, err := url.JoinPath(c.baseURL, "/api/v1/plants", plantID, "watered")
	if err != nil {
		return fmt.Errorf("failed to build watered URL: %w", err)
	}

	body, err := json.Marshal(markWateredRequest{
		UserID:         userID,
		WateredAt:      wateredAt,
		WateringStreak: streak,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal watered request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send mark-watered request",
			slog.String("plant_id", plantID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return domain.ErrPlantNotFound
	default:
		return fmt.Errorf("unexpected status code from plant store: %d", resp.StatusCode)
	}
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.DebugContext(ctx, "fetching from plant store",
		slog.String("url", rawURL),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to plant store",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from plant store",
			slog.String("url", rawURL),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code from plant store: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
