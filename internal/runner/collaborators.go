package runner

// ScoreKeeper persists the best score across runs.
type ScoreKeeper interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// SoundCues plays short feedback sounds. Implementations must not block.
type SoundCues interface {
	PlayJumpCue()
	PlayGameOverCue()
}

// AvatarSource reports the avatar the player currently has selected.
type AvatarSource interface {
	Avatar() AvatarID
}

// Summary describes a session state transition.
type Summary struct {
	From      State
	To        State
	Run       int // 1-based run counter, 0 before the first start
	Score     int
	HighScore int
	NewRecord bool
	Elapsed   float64
	Avatar    AvatarID
}

// Observer is notified after every session state transition.
type Observer interface {
	SessionChanged(sum Summary)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(sum Summary)

// SessionChanged calls f(sum).
func (f ObserverFunc) SessionChanged(sum Summary) {
	f(sum)
}

// NopScores keeps no scores.
type NopScores struct{}

func (NopScores) LoadHighScore() (int, error) { return 0, nil }
func (NopScores) SaveHighScore(int) error     { return nil }

// NopSound plays nothing.
type NopSound struct{}

func (NopSound) PlayJumpCue()     {}
func (NopSound) PlayGameOverCue() {}

// MemoryScores keeps the high score in memory only.
type MemoryScores struct {
	High int
}

func (m *MemoryScores) LoadHighScore() (int, error) { return m.High, nil }

func (m *MemoryScores) SaveHighScore(score int) error {
	m.High = score
	return nil
}
