package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"svw.info/slide/internal/domain"
	"svw.info/slide/internal/engine"
	"svw.info/slide/internal/ports"
)

// Service wires the engine-side providers to the remote service and local
// storage. The board lives in the Snapshot the caller holds; the service
// never keeps game state of its own.
type Service struct {
	Generator ports.Generator
	Solver    ports.Solver
	Games     ports.GameService
	Accounts  ports.AccountService
	Profiles  ports.ProfileService
	Storage   ports.Storage
}

func NewService(g ports.Generator, s ports.Solver, games ports.GameService, acc ports.AccountService, prof ports.ProfileService, st ports.Storage) *Service {
	return &Service{Generator: g, Solver: s, Games: games, Accounts: acc, Profiles: prof, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// StartGame creates a remote session, generates the board locally, and
// persists an initial snapshot so the game survives an app exit.
func (u *Service) StartGame(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Snapshot, error) {
	if u.Generator == nil || u.Games == nil {
		return nil, errNotConfigured
	}
	p, _, err := u.Generator.Generate(ctx, seed, diff)
	if err != nil {
		return nil, err
	}
	sess, err := u.Games.CreateSession(ctx, p.GridSize, p.ShuffleMoves)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	snap := &domain.Snapshot{
		SessionID: sess.ID,
		Session:   sess,
		Puzzle:    *p,
		StartedAt: time.Now().UnixMilli(),
	}
	if u.Storage != nil {
		if err := u.Storage.SaveSnapshot(ctx, snap); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
	}
	return snap, nil
}

// Move applies a tile selection to the snapshot's board. A non-adjacent
// selection is a silent no-op (moved=false) and is not persisted.
func (u *Service) Move(ctx context.Context, snap *domain.Snapshot, index int) (moved, solved bool, err error) {
	if snap == nil {
		return false, false, fmt.Errorf("nil snapshot")
	}
	if !engine.ApplyMove(&snap.Puzzle.Board, index) {
		return false, engine.IsSolved(snap.Puzzle.Board), nil
	}
	snap.Moves++
	solved = engine.IsSolved(snap.Puzzle.Board)
	if u.Storage != nil {
		if err := u.Storage.SaveSnapshot(ctx, snap); err != nil {
			return true, solved, fmt.Errorf("save snapshot: %w", err)
		}
	}
	return true, solved, nil
}

// FinishGame reports completion for a solved board and drops the local
// snapshot. The report references only the opaque session identifier.
func (u *Service) FinishGame(ctx context.Context, snap *domain.Snapshot) error {
	if u.Games == nil {
		return errNotConfigured
	}
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	if !engine.IsSolved(snap.Puzzle.Board) {
		return fmt.Errorf("board is not solved")
	}
	result := domain.Result{
		Moves:      snap.Moves,
		DurationMs: time.Now().UnixMilli() - snap.StartedAt,
	}
	if err := u.Games.CompleteSession(ctx, snap.Session, result); err != nil {
		return fmt.Errorf("report completion: %w", err)
	}
	if u.Storage != nil {
		if err := u.Storage.DeleteSnapshot(ctx, snap.SessionID); err != nil {
			return fmt.Errorf("drop snapshot: %w", err)
		}
	}
	return nil
}

// Hint returns the next cell to select on the shortest known path to the
// solved state. ok is false when the board is already solved or the search
// budget ran out.
func (u *Service) Hint(ctx context.Context, b domain.Board) (int, bool, error) {
	if u.Solver == nil {
		return 0, false, errNotConfigured
	}
	moves, _, err := u.Solver.Solve(ctx, b)
	if err != nil || len(moves) == 0 {
		return 0, false, err
	}
	return moves[0], true, nil
}

// Resume loads a previously saved in-flight game.
func (u *Service) Resume(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	snap, err := u.Storage.LoadSnapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := engine.CheckBoard(snap.Puzzle.Board); err != nil {
		return nil, fmt.Errorf("corrupt snapshot %s: %w", sessionID, err)
	}
	return snap, nil
}

// Abandon discards a saved game without reporting anything; abandoning a
// session carries no cleanup obligation toward the service.
func (u *Service) Abandon(ctx context.Context, sessionID string) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.DeleteSnapshot(ctx, sessionID)
}

// SavedGames lists resumable snapshots.
func (u *Service) SavedGames(ctx context.Context) ([]domain.SnapshotMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.ListSnapshots(ctx)
}

// Auth and profile passthroughs.

func (u *Service) Login(ctx context.Context, username, password string) (domain.Credentials, error) {
	if u.Accounts == nil {
		return domain.Credentials{}, errNotConfigured
	}
	return u.Accounts.Login(ctx, username, password)
}

func (u *Service) Register(ctx context.Context, username, password string) (domain.Credentials, error) {
	if u.Accounts == nil {
		return domain.Credentials{}, errNotConfigured
	}
	return u.Accounts.Register(ctx, username, password)
}

func (u *Service) Profile(ctx context.Context) (domain.Profile, error) {
	if u.Profiles == nil {
		return domain.Profile{}, errNotConfigured
	}
	return u.Profiles.Profile(ctx)
}

func (u *Service) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if u.Profiles == nil {
		return domain.Profile{}, errNotConfigured
	}
	return u.Profiles.UpdateProfile(ctx, p)
}

func (u *Service) UpdateAvatar(ctx context.Context, r io.Reader, contentType string) (string, error) {
	if u.Profiles == nil {
		return "", errNotConfigured
	}
	return u.Profiles.UpdateAvatar(ctx, r, contentType)
}

func (u *Service) Tasks(ctx context.Context) ([]domain.Task, error) {
	if u.Profiles == nil {
		return nil, errNotConfigured
	}
	return u.Profiles.Tasks(ctx)
}

func (u *Service) CompleteTask(ctx context.Context, id string) (domain.Task, error) {
	if u.Profiles == nil {
		return domain.Task{}, errNotConfigured
	}
	return u.Profiles.CompleteTask(ctx, id)
}

func (u *Service) Settings(ctx context.Context) (domain.Settings, error) {
	if u.Storage == nil {
		return domain.Settings{}, errNotConfigured
	}
	return u.Storage.LoadSettings(ctx)
}

func (u *Service) SaveSettings(ctx context.Context, s domain.Settings) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.SaveSettings(ctx, s)
}
