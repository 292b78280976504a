package game

// Record is the persistent player profile: the best single-run score, the
// lifetime coin total and the last committed character choice.
type Record struct {
	BestScore         int
	TotalCoins        int
	SelectedCharacter Character
}

// RunResult summarizes one finished run for persistence.
type RunResult struct {
	Score     int
	Coins     int
	Character Character
	Duration  float64 // Run length in seconds
}

// RecordStore persists the profile and run history. The session treats a
// nil store as a no-op and keeps an in-memory record instead.
type RecordStore interface {
	// LoadRecord returns the stored profile, or a zero Record if none
	// has been saved yet.
	LoadRecord() (Record, error)
	// SaveRun appends the run to the history, folds it into the profile
	// (best score, lifetime coins) and returns the updated profile.
	SaveRun(run RunResult) (Record, error)
	// SaveSelectedCharacter stores the committed character choice.
	SaveSelectedCharacter(c Character) error
}

// Sounds plays the session's audio cues. The session treats a nil value
// as silence.
type Sounds interface {
	PlayJump()
	PlayDoubleJump()
	PlayCoin()
	PlayAbility()
	PlayGameOver()
	ToggleMute() bool
	Muted() bool
}
