package domain

import "errors"

// Difficulty labels target puzzle generation tuning.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// String returns the lowercase label used on the wire and on disk.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ErrInvalidConfiguration rejects degenerate puzzle parameters
// (grid size below 2, negative shuffle count).
var ErrInvalidConfiguration = errors.New("invalid puzzle configuration")
