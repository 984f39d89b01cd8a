package battle

import (
	"time"
)

// Mode names a match mode
type Mode string

// Match modes
const (
	ModeRandomChallenge        Mode = "random_challenge"
	ModeDeterministicChallenge Mode = "deterministic_challenge"
	ModeRandomArena            Mode = "random_arena"
	ModeDeterministicArena     Mode = "deterministic_arena"
)

// MatchInput names the two trainers of a match by ID
type MatchInput struct {
	Trainer1ID string
	Trainer2ID string
}

// MatchOutput is the stored outcome of a match
type MatchOutput struct {
	Result *MatchResult
}

// MatchResult summarises a played match. Winner fields are empty when a single challenge
// ends in a draw.
type MatchResult struct {
	Mode             Mode
	WinnerID         string
	WinnerName       string
	WinnerLevel      int
	WinnerExperience int
	Draw             bool
	Rounds           int
	Log              []string
	PlayedAt         time.Time
}
