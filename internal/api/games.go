package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"svw.info/slide/internal/domain"
)

type createSessionReq struct {
	GridSize     int `json:"gridSize"`
	ShuffleMoves int `json:"shuffleMoves"`
}

type createSessionResp struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

type completeSessionReq struct {
	Moves      int   `json:"moves"`
	DurationMs int64 `json:"durationMs"`
}

type completeSessionResp struct {
	OK bool `json:"ok"`
}

// CreateSession registers a new puzzle session and returns its opaque
// identifier. The board itself is generated locally; the service only
// tracks the session.
func (c *Client) CreateSession(ctx context.Context, gridSize, shuffleMoves int) (domain.Session, error) {
	var resp createSessionResp
	req := createSessionReq{GridSize: gridSize, ShuffleMoves: shuffleMoves}
	if err := c.doJSON(ctx, http.MethodPost, "/api/games", req, &resp, nil); err != nil {
		return domain.Session{}, err
	}
	if resp.ID == "" {
		return domain.Session{}, fmt.Errorf("create session response missing id")
	}
	return domain.Session{
		ID:           resp.ID,
		GridSize:     gridSize,
		ShuffleMoves: shuffleMoves,
		CreatedAt:    resp.CreatedAt,
	}, nil
}

// CompleteSession reports a solved board for the session. An Idempotency-Key
// header makes a re-sent report (e.g. after a timeout with an unread ack)
// safe for the service to deduplicate.
func (c *Client) CompleteSession(ctx context.Context, session domain.Session, result domain.Result) error {
	if session.ID == "" {
		return fmt.Errorf("session has no id")
	}
	headers := http.Header{}
	headers.Set("Idempotency-Key", uuid.NewString())
	var resp completeSessionResp
	path := "/api/games/" + url.PathEscape(session.ID) + "/complete"
	req := completeSessionReq{Moves: result.Moves, DurationMs: result.DurationMs}
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp, headers); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("completion not acknowledged for session %s", session.ID)
	}
	return nil
}
