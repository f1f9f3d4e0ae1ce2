package ports

import (
	"context"
	"io"
	"time"

	"svw.info/slide/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Generator creates new shuffled puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Solver computes a move sequence to the solved state.
type Solver interface {
	Solve(ctx context.Context, b domain.Board) ([]int, Stats, error)
}

// GameService is the remote session lifecycle as this client consumes it.
type GameService interface {
	CreateSession(ctx context.Context, gridSize, shuffleMoves int) (domain.Session, error)
	CompleteSession(ctx context.Context, session domain.Session, result domain.Result) error
}

// AccountService handles authentication against the remote service.
type AccountService interface {
	Login(ctx context.Context, username, password string) (domain.Credentials, error)
	Register(ctx context.Context, username, password string) (domain.Credentials, error)
}

// ProfileService covers profile, avatar, and task progression endpoints.
type ProfileService interface {
	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error)
	UpdateAvatar(ctx context.Context, r io.Reader, contentType string) (string, error)
	Tasks(ctx context.Context) ([]domain.Task, error)
	CompleteTask(ctx context.Context, id string) (domain.Task, error)
}

// Storage persists in-flight game snapshots and client settings locally.
type Storage interface {
	SaveSnapshot(ctx context.Context, s *domain.Snapshot) error
	LoadSnapshot(ctx context.Context, sessionID string) (*domain.Snapshot, error)
	DeleteSnapshot(ctx context.Context, sessionID string) error
	ListSnapshots(ctx context.Context) ([]domain.SnapshotMeta, error)
	SaveSettings(ctx context.Context, s domain.Settings) error
	LoadSettings(ctx context.Context) (domain.Settings, error)
}
