// Package client implements the polling side of the interview API: derived
// data (questions, feedback) becomes available at some unknown point after
// upload, and the client discovers it by re-requesting on a fixed delay.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"vichaarmanthan/mock-interview/internal/models"
)

// DefaultPollInterval is the fixed delay between retries. There is no
// backoff growth; callers bound total waiting through the context.
const DefaultPollInterval = 2000 * time.Millisecond

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	interval   time.Duration
}

// New creates a polling client for the given API base URL (for example
// "http://localhost:3000/api/v1") and bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
		interval:   DefaultPollInterval,
	}
}

// WithInterval overrides the fixed polling delay.
func (c *Client) WithInterval(interval time.Duration) *Client {
	c.interval = interval
	return c
}

// PollQuestions repeatedly requests the questions for (role, attemptID)
// until they are ready or ctx is done. attemptID may be empty, in which
// case the server selects the current attempt for the role.
func (c *Client) PollQuestions(ctx context.Context, role, attemptID string) (*models.QuestionsData, error) {
	path := fmt.Sprintf("%s/user/questions/%s", c.baseURL, role)
	if attemptID != "" {
		path += "/" + attemptID
	}

	var data models.QuestionsData
	if err := c.pollUntilReady(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// PollFeedback repeatedly requests the feedback for (role, attemptID)
// until it is ready or ctx is done.
func (c *Client) PollFeedback(ctx context.Context, role, attemptID string) (*models.FeedbackData, error) {
	path := fmt.Sprintf("%s/user/questions/%s", c.baseURL, role)
	if attemptID != "" {
		path += "/" + attemptID
	}
	path += "/getFeedback"

	var data models.FeedbackData
	if err := c.pollUntilReady(ctx, path, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// pollUntilReady retries on any non-200 response. The pending and
// not-found shapes are both non-200, so a freshly uploaded attempt and a
// not-yet-visible one are handled the same way: wait and ask again.
func (c *Client) pollUntilReady(ctx context.Context, url string, out interface{}) error {
	for {
		ok, err := c.fetch(ctx, url, out)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.interval):
		}
	}
}

func (c *Client) fetch(ctx context.Context, url string, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	var envelope models.APIResponse
	envelope.Data = out
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return false, fmt.Errorf("failed to decode response: %w", err)
	}

	return true, nil
}
