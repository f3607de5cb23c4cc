package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Deps are the session's collaborators. Nil fields get no-op defaults.
type Deps struct {
	Scores    ScoreKeeper
	Sound     SoundCues
	Avatars   AvatarSource
	Observers []Observer
	Rand      *core.Random
	Logger    *log.Logger
}

// Default viewport used until the host reports its layout.
const (
	defaultViewportW = 800
	defaultViewportH = 480
)

// Session owns one player, obstacle field and clock, and drives them through
// the Idle -> Running -> GameOver lifecycle.
type Session struct {
	cfg    config.RunnerConfig
	state  State
	player *Player
	field  *ObstacleField
	clock  *Clock
	rng    *core.Random

	score     float64
	highScore int
	newRecord bool
	avatar    AvatarID // Sampled each frame
	runs      int
	frames    uint64

	viewportW float64
	viewportH float64
	groundY   float64

	scores    ScoreKeeper
	sound     SoundCues
	avatars   AvatarSource
	observers []Observer
	logger    *log.Logger
}

// NewSession creates an idle session and loads the stored high score.
// A failing score store is logged and treated as no high score.
func NewSession(cfg config.RunnerConfig, deps Deps) *Session {
	s := &Session{
		cfg:       cfg,
		scores:    deps.Scores,
		sound:     deps.Sound,
		avatars:   deps.Avatars,
		observers: append([]Observer(nil), deps.Observers...),
		rng:       deps.Rand,
		logger:    deps.Logger,
	}
	if s.scores == nil {
		s.scores = NopScores{}
	}
	if s.sound == nil {
		s.sound = NopSound{}
	}
	if s.avatars == nil {
		s.avatars = NewAvatarSelector(AvatarPenguin)
	}
	if s.rng == nil {
		s.rng = core.NewRandom(time.Now().UnixNano())
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.player = NewPlayer(cfg.Player)
	s.field = NewObstacleField(cfg.Obstacles, cfg.Speed, s.rng)
	s.clock = NewClock(cfg.Speed)
	s.SetLayout(defaultViewportW, defaultViewportH)

	s.call("load high score", func() error {
		high, err := s.scores.LoadHighScore()
		if err != nil {
			return err
		}
		s.highScore = high
		return nil
	})
	s.avatar = s.avatars.Avatar()
	return s
}

// Subscribe adds an observer for state transitions.
func (s *Session) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// SetLayout updates the viewport size in world units. The ground line sits
// GroundOffset above the bottom edge; player and obstacles follow it.
func (s *Session) SetLayout(width, height float64) {
	s.viewportW = width
	s.viewportH = height
	s.groundY = height - s.cfg.Viewport.GroundOffset
	s.player.SetGroundLine(s.groundY)
	s.field.SetGroundLine(s.groundY)
}

// Start begins a run from Idle. Returns false in any other state.
func (s *Session) Start() bool {
	if s.state != StateIdle {
		return false
	}

	s.player.Reset()
	s.field.Reset()
	s.clock.Reset()
	s.score = 0
	s.newRecord = false
	s.frames = 0
	s.avatar = s.avatars.Avatar()
	s.runs++

	s.transition(StateRunning)
	return true
}

// Restart returns to Idle and immediately starts a new run.
// A run in progress is abandoned without being recorded.
func (s *Session) Restart() {
	if s.state != StateIdle {
		s.transition(StateIdle)
	}
	s.Start()
}

// Jump makes the player jump. Only effective while running and grounded.
func (s *Session) Jump() bool {
	if s.state != StateRunning {
		return false
	}
	if !s.player.Jump() {
		return false
	}
	s.call("jump cue", func() error {
		s.sound.PlayJumpCue()
		return nil
	})
	return true
}

// OnJumpRequested handles a jump request from the host.
func (s *Session) OnJumpRequested() {
	s.Jump()
}

// OnRestartRequested handles a restart request from the host.
func (s *Session) OnRestartRequested() {
	s.Restart()
}

// Step advances one frame of dt seconds. It is a no-op unless running.
// Order: clock, player physics, obstacle spawn/advect/cull, collision, score.
// The frame that ends the run adds no score.
func (s *Session) Step(dt float64) {
	if s.state != StateRunning || dt < 0 {
		return
	}
	s.frames++
	s.avatar = s.avatars.Avatar()

	s.clock.Advance(dt)
	speed := s.clock.Speed()

	s.player.Update(dt)
	s.field.Update(dt, speed, s.groundY, s.viewportW)

	if _, hit := s.field.FirstHit(s.player.Bounds()); hit {
		s.gameOver()
		return
	}

	s.score += speed * dt * s.cfg.Score.Factor
}

// gameOver ends the run: record check, cue, then observers.
func (s *Session) gameOver() {
	final := s.DisplayScore()
	if final > s.highScore {
		s.highScore = final
		s.newRecord = true
		s.call("save high score", func() error {
			return s.scores.SaveHighScore(final)
		})
	}
	s.call("game over cue", func() error {
		s.sound.PlayGameOverCue()
		return nil
	})
	s.logger.Debug("run ended", "run", s.runs, "score", final, "elapsed", s.clock.Elapsed())
	s.transition(StateGameOver)
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	sum := s.Summary()
	sum.From = from
	for _, o := range s.observers {
		s.call("observer", func() error {
			o.SessionChanged(sum)
			return nil
		})
	}
}

// call runs a collaborator callback, logging failures and panics instead of
// letting them reach the frame loop.
func (s *Session) call(what string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("collaborator panicked", "call", what, "panic", r)
		}
	}()
	if err := fn(); err != nil {
		s.logger.Warn("collaborator failed", "call", what, "err", fmt.Errorf("runner: %s: %w", what, err))
	}
}

// Summary returns a snapshot of the session.
func (s *Session) Summary() Summary {
	return Summary{
		From:      s.state,
		To:        s.state,
		Run:       s.runs,
		Score:     s.DisplayScore(),
		HighScore: s.highScore,
		NewRecord: s.newRecord,
		Elapsed:   s.clock.Elapsed(),
		Avatar:    s.Avatar(),
	}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the exact accumulated score.
func (s *Session) Score() float64 { return s.score }

// DisplayScore returns the score rounded down, as shown and stored.
func (s *Session) DisplayScore() int { return int(s.score) }

// HighScore returns the stored best score. It is raised when a run ends.
func (s *Session) HighScore() int { return s.highScore }

// BestScore returns the best score including the run in progress.
func (s *Session) BestScore() int { return max(s.highScore, s.DisplayScore()) }

// NewRecord reports whether the last finished run set a new high score.
func (s *Session) NewRecord() bool { return s.newRecord }

// Speed returns the current world speed.
func (s *Session) Speed() float64 { return s.clock.Speed() }

// Elapsed returns the run time in seconds.
func (s *Session) Elapsed() float64 { return s.clock.Elapsed() }

// Frames returns the number of frames stepped in the current run.
func (s *Session) Frames() uint64 { return s.frames }

// Runs returns how many runs have been started.
func (s *Session) Runs() int { return s.runs }

// Player returns the player.
func (s *Session) Player() *Player { return s.player }

// Obstacles returns the live obstacles.
func (s *Session) Obstacles() []Obstacle { return s.field.Obstacles() }

// GroundLine returns the ground y-coordinate.
func (s *Session) GroundLine() float64 { return s.groundY }

// Viewport returns the viewport size in world units.
func (s *Session) Viewport() (float64, float64) { return s.viewportW, s.viewportH }

// Config returns the session's tuning.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Avatar returns the avatar to draw. While idle it follows the live
// selection; otherwise it is the avatar sampled on the last frame.
func (s *Session) Avatar() AvatarID {
	if s.state == StateIdle {
		return s.avatars.Avatar()
	}
	return s.avatar
}
