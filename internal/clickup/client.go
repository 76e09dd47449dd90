// Package clickup wraps the ClickUp HTTP API for the sync engine. The client
// is stateless apart from a workspace-resolution cache: it classifies
// failures into the package error taxonomy and leaves all business decisions
// to its callers.
package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/electronduke5/SalaryCounter/internal/domain"
)

const defaultBaseURL = "https://api.clickup.com/api/v2"

// RawEntry is one provider time entry as fetched, before any ledger
// interpretation. A negative DurationMS means the timer is still running.
type RawEntry struct {
	ID          string
	DurationMS  int64
	StartMS     int64
	TaskName    string
	Description string
}

// Task is one assigned task, used by the browsing commands only.
type Task struct {
	ID     string
	Name   string
	Status string
}

// Config controls client behavior. Zero values fall back to defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   RetryPolicy
	// RequestsPerSecond bounds outbound traffic; ClickUp enforces
	// per-token rate limits.
	RequestsPerSecond float64
}

// Client issues authenticated requests against the ClickUp API.
type Client struct {
	baseURL string
	http    *http.Client
	retry   RetryPolicy
	limiter *rate.Limiter
	scopes  *cache.Cache
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 12 * time.Second
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = DefaultRetryPolicy()
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		retry:   cfg.Retry,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		scopes:  cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

type teamsResponse struct {
	Teams []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"teams"`
}

// ResolveTeamID resolves the user's workspace reference (team name or
// numeric ID) to the provider team ID. Successful resolutions are cached for
// the lifetime of the client.
func (c *Client) ResolveTeamID(ctx context.Context, creds domain.RemoteCredentials) (string, error) {
	cacheKey := creds.APIToken + "|" + creds.Workspace
	if id, ok := c.scopes.Get(cacheKey); ok {
		return id.(string), nil
	}

	var resp teamsResponse
	err := c.retry.Do(ctx, func() error {
		return c.getJSON(ctx, creds.APIToken, "/team", &resp)
	})
	if err != nil {
		return "", err
	}

	for _, team := range resp.Teams {
		if team.ID == creds.Workspace || strings.EqualFold(team.Name, creds.Workspace) {
			c.scopes.Set(cacheKey, team.ID, cache.NoExpiration)
			return team.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrWorkspaceNotFound, creds.Workspace)
}

type timeEntriesResponse struct {
	Data []struct {
		ID   string `json:"id"`
		Task struct {
			Name string `json:"name"`
		} `json:"task"`
		Description string `json:"description"`
		Start       string `json:"start"`
		Duration    string `json:"duration"`
	} `json:"data"`
}

// FetchEntries returns the user's time entries whose start instant falls in
// [start, end]. One request, no pagination; provider timestamps and
// durations are epoch/interval milliseconds carried as decimal strings.
func (c *Client) FetchEntries(ctx context.Context, creds domain.RemoteCredentials, start, end time.Time) ([]RawEntry, error) {
	teamID, err := c.ResolveTeamID(ctx, creds)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/team/%s/time_entries?start_date=%d&end_date=%d",
		teamID, start.UnixMilli(), end.UnixMilli())

	var resp timeEntriesResponse
	err = c.retry.Do(ctx, func() error {
		return c.getJSON(ctx, creds.APIToken, path, &resp)
	})
	if err != nil {
		return nil, err
	}

	entries := make([]RawEntry, 0, len(resp.Data))
	for _, d := range resp.Data {
		durationMS, err := strconv.ParseInt(d.Duration, 10, 64)
		if err != nil {
			return nil, &UnexpectedResponseError{Status: http.StatusOK, Body: "non-numeric duration " + d.Duration}
		}
		startMS, err := strconv.ParseInt(d.Start, 10, 64)
		if err != nil {
			return nil, &UnexpectedResponseError{Status: http.StatusOK, Body: "non-numeric start " + d.Start}
		}
		entries = append(entries, RawEntry{
			ID:          d.ID,
			DurationMS:  durationMS,
			StartMS:     startMS,
			TaskName:    d.Task.Name,
			Description: d.Description,
		})
	}
	return entries, nil
}

type tasksResponse struct {
	Tasks []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status struct {
			Status string `json:"status"`
		} `json:"status"`
	} `json:"tasks"`
}

// FetchAssignedTasks lists open tasks in the user's workspace. Browsing
// surface only; nothing in the ledger depends on it.
func (c *Client) FetchAssignedTasks(ctx context.Context, creds domain.RemoteCredentials) ([]Task, error) {
	teamID, err := c.ResolveTeamID(ctx, creds)
	if err != nil {
		return nil, err
	}

	var resp tasksResponse
	err = c.retry.Do(ctx, func() error {
		return c.getJSON(ctx, creds.APIToken, "/team/"+teamID+"/task", &resp)
	})
	if err != nil {
		return nil, err
	}

	tasks := make([]Task, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		tasks = append(tasks, Task{ID: t.ID, Name: t.Name, Status: t.Status.Status})
	}
	return tasks, nil
}

// getJSON performs one authenticated GET and decodes the body into out,
// classifying any failure into the package error taxonomy.
func (c *Client) getJSON(ctx context.Context, token, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuth
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrTransient, resp.StatusCode)
	default:
		return &UnexpectedResponseError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UnexpectedResponseError{Status: resp.StatusCode, Body: "undecodable body: " + err.Error()}
	}
	return nil
}
