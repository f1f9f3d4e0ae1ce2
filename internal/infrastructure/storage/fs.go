package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/slide/internal/domain"
)

// FS keeps snapshots and settings as JSON files under a data directory,
// snapshots bucketed by difficulty.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

const settingsFile = "settings.json"

func (s *FS) pathFor(sessionID string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(sessionID)+".json")
}

func (s *FS) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil || snap.SessionID == "" {
		return errors.New("invalid snapshot: missing session id")
	}
	target := s.pathFor(snap.SessionID, snap.Puzzle.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func (s *FS) LoadSnapshot(ctx context.Context, sessionID string) (*domain.Snapshot, error) {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		data, err := os.ReadFile(s.pathFor(sessionID, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Snapshot
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) DeleteSnapshot(ctx context.Context, sessionID string) error {
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		err := os.Remove(s.pathFor(sessionID, d))
		if err == nil {
			return nil
		}
		if !os.IsNotExist(err) {
			return err
		}
	}
	return os.ErrNotExist
}

func (s *FS) ListSnapshots(ctx context.Context) ([]domain.SnapshotMeta, error) {
	var out []domain.SnapshotMeta
	for _, d := range []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Expert} {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), e.Name()))
			if err != nil {
				continue
			}
			var snap domain.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil || snap.SessionID == "" {
				// skip unreadable entries rather than failing the listing
				continue
			}
			out = append(out, domain.SnapshotMeta{
				SessionID:  snap.SessionID,
				Difficulty: snap.Puzzle.Difficulty,
				Moves:      snap.Moves,
				StartedAt:  snap.StartedAt,
			})
		}
	}
	return out, nil
}

func (s *FS) SaveSettings(ctx context.Context, set domain.Settings) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, settingsFile))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}

// LoadSettings returns zero-value settings when none were saved yet.
func (s *FS) LoadSettings(ctx context.Context) (domain.Settings, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, settingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, err
	}
	var out domain.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Settings{}, err
	}
	return out, nil
}
