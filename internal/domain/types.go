package domain

// Tile is a single cell value. Labels run 1..Size²−1; Empty marks the hole
// tiles slide into.
type Tile uint8

// Empty is the sentinel for the single open cell on a board.
const Empty Tile = 0

// Board holds the full grid state in row-major order.
// Cell i maps to (row = i / Size, col = i % Size).
type Board struct {
	Size  int    `json:"size"`
	Cells []Tile `json:"cells"`
}

// Clone returns a deep copy so callers can mutate freely.
func (b Board) Clone() Board {
	cells := make([]Tile, len(b.Cells))
	copy(cells, b.Cells)
	return Board{Size: b.Size, Cells: cells}
}

// Puzzle is a generated board with its tuning metadata.
type Puzzle struct {
	Seed         int64      `json:"seed,omitempty"`
	Difficulty   Difficulty `json:"difficulty"`
	GridSize     int        `json:"gridSize"`
	ShuffleMoves int        `json:"shuffleMoves"`
	Board        Board      `json:"board"`
	CreatedAt    int64      `json:"createdAt,omitempty"`
}

// Session identifies a game on the remote service. It is an opaque value
// created at game start and referenced when reporting completion; the
// engine never holds one.
type Session struct {
	ID           string `json:"id"`
	GridSize     int    `json:"gridSize"`
	ShuffleMoves int    `json:"shuffleMoves"`
	CreatedAt    int64  `json:"createdAt,omitempty"`
}

// Result is what gets reported when a session finishes.
type Result struct {
	Moves      int   `json:"moves"`
	DurationMs int64 `json:"durationMs"`
}

// Snapshot is a locally persisted in-flight game, enough to resume after
// the app exits. The remote service stays authoritative for outcomes.
type Snapshot struct {
	SessionID string  `json:"sessionId"`
	Session   Session `json:"session"`
	Puzzle    Puzzle  `json:"puzzle"`
	Moves     int     `json:"moves"`
	StartedAt int64   `json:"startedAt"`
}

// SnapshotMeta is a lightweight listing entry.
type SnapshotMeta struct {
	SessionID  string     `json:"sessionId"`
	Difficulty Difficulty `json:"difficulty"`
	Moves      int        `json:"moves"`
	StartedAt  int64      `json:"startedAt"`
}

// Credentials come back from login/register.
type Credentials struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Profile is the account profile as the service reports it.
type Profile struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// Task is a progression task tracked by the service.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Target int    `json:"target"`
	Count  int    `json:"count"`
	Done   bool   `json:"done"`
}

// Settings are local client preferences.
type Settings struct {
	Username   string     `json:"username,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
}
