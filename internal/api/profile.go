package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"svw.info/slide/internal/domain"
)

type profileResp struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type updateProfileReq struct {
	DisplayName string `json:"displayName"`
}

type avatarResp struct {
	AvatarURL string `json:"avatarUrl"`
}

type tasksResp struct {
	Tasks []domain.Task `json:"tasks"`
}

// Profile fetches the authenticated account's profile.
func (c *Client) Profile(ctx context.Context) (domain.Profile, error) {
	var resp profileResp
	if err := c.doJSON(ctx, http.MethodGet, "/api/profile", nil, &resp, nil); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile(resp), nil
}

// UpdateProfile changes the display name and returns the stored profile.
func (c *Client) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	var resp profileResp
	req := updateProfileReq{DisplayName: p.DisplayName}
	if err := c.doJSON(ctx, http.MethodPut, "/api/profile", req, &resp, nil); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile(resp), nil
}

// UpdateAvatar uploads raw image bytes and returns the served avatar URL.
// The body is streamed as-is; the service stores it and owns the result.
func (c *Client) UpdateAvatar(ctx context.Context, r io.Reader, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.base.String()+"/api/profile/avatar", r)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("PUT /api/profile/avatar: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}
	var out avatarResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.AvatarURL == "" {
		return "", fmt.Errorf("avatar response missing url")
	}
	return out.AvatarURL, nil
}

// Tasks lists the account's progression tasks.
func (c *Client) Tasks(ctx context.Context) ([]domain.Task, error) {
	var resp tasksResp
	if err := c.doJSON(ctx, http.MethodGet, "/api/tasks", nil, &resp, nil); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// CompleteTask marks a task done and returns its updated state.
func (c *Client) CompleteTask(ctx context.Context, id string) (domain.Task, error) {
	if id == "" {
		return domain.Task{}, fmt.Errorf("task id is empty")
	}
	var out domain.Task
	path := "/api/tasks/" + url.PathEscape(id) + "/complete"
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out, nil); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}
