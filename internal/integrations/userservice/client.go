package userservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the user/vehicle directory service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a user-directory client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVehicle fetches a vehicle, including its owner
func (c *Client) GetVehicle(ctx context.Context, vehicleID int64) (*Vehicle, error) {
	url := fmt.Sprintf("%s/internal/vehicles/%d", c.baseURL, vehicleID)

	var vehicle Vehicle
	if err := c.getJSON(ctx, url, &vehicle, ErrVehicleNotFound); err != nil {
		return nil, err
	}

	return &vehicle, nil
}

// GetRewardPoints fetches a user's current reward balance
func (c *Client) GetRewardPoints(ctx context.Context, userID int64) (int, error) {
	url := fmt.Sprintf("%s/internal/users/%d/rewards", c.baseURL, userID)

	var balance RewardBalance
	if err := c.getJSON(ctx, url, &balance, ErrUserNotFound); err != nil {
		return 0, err
	}

	return balance.Points, nil
}

// AdjustRewardPoints applies a signed delta to a user's balance and
// returns the new balance
func (c *Client) AdjustRewardPoints(ctx context.Context, userID int64, delta int) (int, error) {
	url := fmt.Sprintf("%s/internal/users/%d/rewards/adjust", c.baseURL, userID)

	body, err := json.Marshal(adjustRequest{Delta: delta})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return 0, ErrUserNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var balance RewardBalance
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Adjusted reward points for user_id=%d delta=%d new_balance=%d", userID, delta, balance.Points)

	return balance.Points, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return notFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
