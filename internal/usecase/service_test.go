package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/slide/internal/domain"
	"svw.info/slide/internal/engine"
	"svw.info/slide/internal/generator"
)

// fakeGames records session lifecycle calls.
type fakeGames struct {
	created   []domain.Session
	completed []domain.Result
	createErr error
	nextID    int
}

func (f *fakeGames) CreateSession(ctx context.Context, gridSize, shuffleMoves int) (domain.Session, error) {
	if f.createErr != nil {
		return domain.Session{}, f.createErr
	}
	f.nextID++
	s := domain.Session{ID: fmt.Sprintf("s-%d", f.nextID), GridSize: gridSize, ShuffleMoves: shuffleMoves}
	f.created = append(f.created, s)
	return s, nil
}

func (f *fakeGames) CompleteSession(ctx context.Context, session domain.Session, result domain.Result) error {
	f.completed = append(f.completed, result)
	return nil
}

// fakeStorage keeps snapshots in a map.
type fakeStorage struct {
	snaps    map[string]domain.Snapshot
	settings domain.Settings
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{snaps: make(map[string]domain.Snapshot)}
}

func (f *fakeStorage) SaveSnapshot(ctx context.Context, s *domain.Snapshot) error {
	cp := *s
	cp.Puzzle.Board = s.Puzzle.Board.Clone()
	f.snaps[s.SessionID] = cp
	return nil
}

func (f *fakeStorage) LoadSnapshot(ctx context.Context, id string) (*domain.Snapshot, error) {
	s, ok := f.snaps[id]
	if !ok {
		return nil, os.ErrNotExist
	}
	cp := s
	cp.Puzzle.Board = s.Puzzle.Board.Clone()
	return &cp, nil
}

func (f *fakeStorage) DeleteSnapshot(ctx context.Context, id string) error {
	if _, ok := f.snaps[id]; !ok {
		return os.ErrNotExist
	}
	delete(f.snaps, id)
	return nil
}

func (f *fakeStorage) ListSnapshots(ctx context.Context) ([]domain.SnapshotMeta, error) {
	var out []domain.SnapshotMeta
	for _, s := range f.snaps {
		out = append(out, domain.SnapshotMeta{SessionID: s.SessionID, Difficulty: s.Puzzle.Difficulty, Moves: s.Moves})
	}
	return out, nil
}

func (f *fakeStorage) SaveSettings(ctx context.Context, s domain.Settings) error {
	f.settings = s
	return nil
}

func (f *fakeStorage) LoadSettings(ctx context.Context) (domain.Settings, error) {
	return f.settings, nil
}

// fakeProfiles records the last avatar upload.
type fakeProfiles struct {
	profile     domain.Profile
	avatarBody  string
	contentType string
}

func (f *fakeProfiles) Profile(ctx context.Context) (domain.Profile, error) {
	return f.profile, nil
}

func (f *fakeProfiles) UpdateProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	f.profile = p
	return p, nil
}

func (f *fakeProfiles) UpdateAvatar(ctx context.Context, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.avatarBody = string(data)
	f.contentType = contentType
	f.profile.AvatarURL = "/avatars/u-1.png"
	return f.profile.AvatarURL, nil
}

func (f *fakeProfiles) Tasks(ctx context.Context) ([]domain.Task, error) {
	return nil, nil
}

func (f *fakeProfiles) CompleteTask(ctx context.Context, id string) (domain.Task, error) {
	return domain.Task{ID: id, Done: true}, nil
}

func newTestService(games *fakeGames, st *fakeStorage) *Service {
	return &Service{
		Generator: generator.New(),
		Solver:    engine.NewAStarSolver(),
		Games:     games,
		Storage:   st,
	}
}

func TestStartGameCreatesSessionAndSnapshot(t *testing.T) {
	games := &fakeGames{}
	st := newFakeStorage()
	svc := newTestService(games, st)

	snap, err := svc.StartGame(context.Background(), 11, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, "s-1", snap.SessionID)
	assert.Equal(t, 3, snap.Puzzle.GridSize)
	require.Len(t, games.created, 1)
	assert.Equal(t, 3, games.created[0].GridSize)
	assert.Equal(t, snap.Puzzle.ShuffleMoves, games.created[0].ShuffleMoves)
	require.NoError(t, engine.CheckBoard(snap.Puzzle.Board))
	_, ok := st.snaps["s-1"]
	assert.True(t, ok, "snapshot must be persisted at start")
}

func TestStartGameSessionFailureSurfaces(t *testing.T) {
	games := &fakeGames{createErr: errors.New("service down")}
	svc := newTestService(games, newFakeStorage())
	_, err := svc.StartGame(context.Background(), 1, domain.Easy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service down")
}

func TestMoveAppliesAndPersists(t *testing.T) {
	games := &fakeGames{}
	st := newFakeStorage()
	svc := newTestService(games, st)

	snap, err := svc.StartGame(context.Background(), 11, domain.Easy)
	require.NoError(t, err)

	empty := engine.EmptyIndex(snap.Puzzle.Board)
	// pick the cell above or below the empty cell
	target := empty - snap.Puzzle.Board.Size
	if target < 0 {
		target = empty + snap.Puzzle.Board.Size
	}
	moved, _, err := svc.Move(context.Background(), snap, target)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 1, snap.Moves)
	assert.Equal(t, 1, st.snaps[snap.SessionID].Moves)

	// a non-adjacent selection is silently ignored and not persisted
	before := st.snaps[snap.SessionID].Moves
	moved, _, err = svc.Move(context.Background(), snap, engine.EmptyIndex(snap.Puzzle.Board))
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, before, st.snaps[snap.SessionID].Moves)
}

func TestFinishGameReportsAndDropsSnapshot(t *testing.T) {
	games := &fakeGames{}
	st := newFakeStorage()
	svc := newTestService(games, st)

	// hand-build a one-move-from-solved snapshot
	b := domain.Board{Size: 3, Cells: []domain.Tile{1, 2, 3, 4, 5, 6, 7, domain.Empty, 8}}
	sess, err := games.CreateSession(context.Background(), 3, 40)
	require.NoError(t, err)
	snap := &domain.Snapshot{
		SessionID: sess.ID,
		Session:   sess,
		Puzzle:    domain.Puzzle{Difficulty: domain.Easy, GridSize: 3, ShuffleMoves: 40, Board: b},
	}
	require.NoError(t, st.SaveSnapshot(context.Background(), snap))

	// finishing an unsolved board is rejected
	require.Error(t, svc.FinishGame(context.Background(), snap))

	moved, solved, err := svc.Move(context.Background(), snap, 8)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.True(t, solved)

	require.NoError(t, svc.FinishGame(context.Background(), snap))
	require.Len(t, games.completed, 1)
	assert.Equal(t, 1, games.completed[0].Moves)
	_, ok := st.snaps[sess.ID]
	assert.False(t, ok, "snapshot must be dropped after completion")
}

func TestResumeRoundTrip(t *testing.T) {
	games := &fakeGames{}
	st := newFakeStorage()
	svc := newTestService(games, st)

	snap, err := svc.StartGame(context.Background(), 3, domain.Easy)
	require.NoError(t, err)

	loaded, err := svc.Resume(context.Background(), snap.SessionID)
	require.NoError(t, err)
	assert.Equal(t, snap.Puzzle.Board.Cells, loaded.Puzzle.Board.Cells)

	require.NoError(t, svc.Abandon(context.Background(), snap.SessionID))
	_, err = svc.Resume(context.Background(), snap.SessionID)
	require.Error(t, err)
}

func TestResumeRejectsCorruptSnapshot(t *testing.T) {
	st := newFakeStorage()
	st.snaps["bad"] = domain.Snapshot{
		SessionID: "bad",
		Puzzle: domain.Puzzle{Board: domain.Board{
			Size: 3, Cells: []domain.Tile{1, 1, 3, 4, 5, 6, 7, 8, domain.Empty},
		}},
	}
	svc := newTestService(&fakeGames{}, st)
	_, err := svc.Resume(context.Background(), "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt snapshot")
}

func TestHintPointsAtSolvingMove(t *testing.T) {
	svc := newTestService(&fakeGames{}, newFakeStorage())
	b := domain.Board{Size: 3, Cells: []domain.Tile{1, 2, 3, 4, 5, 6, 7, domain.Empty, 8}}
	idx, ok, err := svc.Hint(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, idx)

	solved, _ := engine.NewSolved(3)
	_, ok, err = svc.Hint(context.Background(), solved)
	require.NoError(t, err)
	assert.False(t, ok, "solved board has no hint")
}

func TestUpdateAvatarStreamsThroughProfileService(t *testing.T) {
	profiles := &fakeProfiles{profile: domain.Profile{Username: "alice"}}
	svc := &Service{Profiles: profiles}

	url, err := svc.UpdateAvatar(context.Background(), strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/avatars/u-1.png", url)
	assert.Equal(t, "png-bytes", profiles.avatarBody)
	assert.Equal(t, "image/png", profiles.contentType)
}

func TestNilDependenciesAreGuarded(t *testing.T) {
	svc := &Service{}
	ctx := context.Background()
	_, err := svc.StartGame(ctx, 1, domain.Easy)
	assert.Error(t, err)
	_, err = svc.Login(ctx, "a", "b")
	assert.Error(t, err)
	_, err = svc.Profile(ctx)
	assert.Error(t, err)
	_, err = svc.UpdateAvatar(ctx, strings.NewReader(""), "image/png")
	assert.Error(t, err)
	_, _, err = svc.Hint(ctx, domain.Board{})
	assert.Error(t, err)
	assert.Error(t, svc.Abandon(ctx, "x"))
}
