package runner

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// fakeScores records saves and can fail or panic on demand.
type fakeScores struct {
	high      int
	loadErr   error
	savePanic bool
	saves     []int
}

func (f *fakeScores) LoadHighScore() (int, error) {
	return f.high, f.loadErr
}

func (f *fakeScores) SaveHighScore(score int) error {
	if f.savePanic {
		panic("disk on fire")
	}
	f.saves = append(f.saves, score)
	f.high = score
	return nil
}

type fakeSound struct {
	jumps     int
	gameOvers int
	panics    bool
}

func (f *fakeSound) PlayJumpCue() {
	if f.panics {
		panic("no audio device")
	}
	f.jumps++
}

func (f *fakeSound) PlayGameOverCue() {
	if f.panics {
		panic("no audio device")
	}
	f.gameOvers++
}

// scriptConfig gives a run whose first obstacle spawns on the sixth 0.1s
// frame right on top of a player that never jumps.
func scriptConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Viewport.GroundOffset = 40
	cfg.Player = config.PlayerConfig{X: 50, Width: 40, Height: 40, Gravity: 2600, JumpVelocity: 860}
	cfg.Obstacles = config.ObstacleConfig{
		MinWidth: 40, MaxWidth: 40,
		MinHeight: 30, MaxHeight: 30,
		MinInterval: 0.55, MaxInterval: 0.55,
		SpawnOffset: 0,
		CullMargin:  100,
	}
	cfg.Speed = config.SpeedConfig{Base: 300, Max: 1100, Accel: 38}
	cfg.Score.Factor = 0.1
	return cfg
}

func newScriptSession(scores ScoreKeeper, sound SoundCues, obs ...Observer) *Session {
	s := NewSession(scriptConfig(), Deps{
		Scores:    scores,
		Sound:     sound,
		Observers: obs,
		Rand:      core.NewRandom(1),
	})
	s.SetLayout(100, 200)
	return s
}

func expectedScriptScore(frames int) float64 {
	cfg := scriptConfig()
	var elapsed, score float64
	for i := 0; i < frames; i++ {
		elapsed += 0.1
		speed := math.Min(cfg.Speed.Max, cfg.Speed.Base+cfg.Speed.Accel*elapsed)
		score += speed * 0.1 * cfg.Score.Factor
	}
	return score
}

func TestSessionEndToEndRun(t *testing.T) {
	scores := &fakeScores{high: 10}
	sound := &fakeSound{}
	var transitions []Summary
	s := newScriptSession(scores, sound, ObserverFunc(func(sum Summary) {
		transitions = append(transitions, sum)
	}))

	loop := NewLoop(s, 0.2)
	ticket := loop.Start(startTime)

	var results []bool
	for i := 0; i < 10; i++ {
		results = append(results, loop.Advance(ticket, 0.1))
	}

	for i, ok := range results {
		want := i < 5
		if ok != want {
			t.Errorf("frame %d: Advance = %v, want %v", i+1, ok, want)
		}
	}

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want game_over", s.State())
	}
	if s.Frames() != 6 {
		t.Errorf("frames stepped = %d, want 6", s.Frames())
	}

	want := expectedScriptScore(5)
	if math.Abs(s.Score()-want) > 1e-9 {
		t.Errorf("score = %v, want %v", s.Score(), want)
	}
	if s.DisplayScore() != 15 {
		t.Errorf("display score = %d, want 15", s.DisplayScore())
	}

	gameOvers := 0
	for _, sum := range transitions {
		if sum.To == StateGameOver {
			gameOvers++
		}
	}
	if gameOvers != 1 {
		t.Errorf("game over transitions = %d, want 1", gameOvers)
	}
	if sound.gameOvers != 1 {
		t.Errorf("game over cues = %d, want 1", sound.gameOvers)
	}
	if len(scores.saves) != 1 || scores.saves[0] != 15 {
		t.Errorf("saves = %v, want [15]", scores.saves)
	}
	if !s.NewRecord() || s.HighScore() != 15 {
		t.Errorf("new record = %v high = %d", s.NewRecord(), s.HighScore())
	}
}

func TestSessionHighScoreNotLowered(t *testing.T) {
	scores := &fakeScores{high: 100}
	s := newScriptSession(scores, nil)

	loop := NewLoop(s, 0.2)
	ticket := loop.Start(startTime)
	for loop.Advance(ticket, 0.1) {
	}

	if len(scores.saves) != 0 {
		t.Errorf("saves = %v, want none", scores.saves)
	}
	if s.HighScore() != 100 || s.NewRecord() {
		t.Errorf("high = %d new record = %v", s.HighScore(), s.NewRecord())
	}
}

func TestSessionStateMachine(t *testing.T) {
	var seen []State
	s := newScriptSession(nil, nil, ObserverFunc(func(sum Summary) {
		seen = append(seen, sum.To)
	}))

	if s.State() != StateIdle {
		t.Fatalf("initial state = %v", s.State())
	}
	s.Step(0.1)
	if s.Elapsed() != 0 {
		t.Error("Step while idle must not advance time")
	}

	if !s.Start() {
		t.Fatal("Start from idle should succeed")
	}
	if s.Start() {
		t.Error("Start while running should fail")
	}
	if s.Speed() != 300 || s.Score() != 0 || s.Elapsed() != 0 {
		t.Errorf("fresh run: speed=%v score=%v elapsed=%v", s.Speed(), s.Score(), s.Elapsed())
	}

	for s.State() == StateRunning {
		s.Step(0.1)
	}
	score := s.Score()
	s.Step(0.1)
	if s.Score() != score {
		t.Error("score changed after game over")
	}

	s.Restart()
	if s.State() != StateRunning || s.Score() != 0 || len(s.Obstacles()) != 0 {
		t.Errorf("after restart: state=%v score=%v obstacles=%d", s.State(), s.Score(), len(s.Obstacles()))
	}

	want := []State{StateRunning, StateGameOver, StateIdle, StateRunning}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestSessionRestartFromIdleStarts(t *testing.T) {
	s := newScriptSession(nil, nil)
	s.OnRestartRequested()
	if s.State() != StateRunning {
		t.Errorf("state = %v, want running", s.State())
	}
	if s.Runs() != 1 {
		t.Errorf("runs = %d, want 1", s.Runs())
	}
}

func TestSessionRestartAbandonsRun(t *testing.T) {
	scores := &fakeScores{}
	s := newScriptSession(scores, nil)
	s.Start()
	s.Step(0.1)
	s.Step(0.1)
	if s.Score() <= 0 {
		t.Fatal("expected some score before restart")
	}

	s.Restart()
	if len(scores.saves) != 0 {
		t.Errorf("abandoned run was saved: %v", scores.saves)
	}
	if s.State() != StateRunning || s.Score() != 0 {
		t.Errorf("state=%v score=%v", s.State(), s.Score())
	}
}

func TestSessionJumpGating(t *testing.T) {
	sound := &fakeSound{}
	s := newScriptSession(nil, sound)

	if s.Jump() {
		t.Error("jump while idle should fail")
	}
	s.Start()
	if !s.Jump() {
		t.Error("jump while running and grounded should succeed")
	}
	s.OnJumpRequested()
	if sound.jumps != 1 {
		t.Errorf("jump cues = %d, want 1", sound.jumps)
	}
}

func TestSessionJumpIgnoredAfterGameOver(t *testing.T) {
	sound := &fakeSound{}
	s := newScriptSession(nil, sound)

	s.Start()
	for i := 0; i < 10 && s.State() == StateRunning; i++ {
		s.Step(0.1)
	}
	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", s.State())
	}

	before := s.Player().Bounds()
	if s.Jump() {
		t.Error("jump after game over should fail")
	}
	s.OnJumpRequested()

	if s.State() != StateGameOver {
		t.Errorf("jump changed state to %v", s.State())
	}
	if s.Player().Velocity() != 0 || s.Player().Bounds() != before {
		t.Error("jump after game over must not move the player")
	}
	if sound.jumps != 0 {
		t.Errorf("jump cues = %d, want 0", sound.jumps)
	}
}

func TestSessionBestScoreFollowsRun(t *testing.T) {
	scores := &fakeScores{high: 10}
	s := newScriptSession(scores, nil)

	if s.BestScore() != 10 {
		t.Errorf("best before run = %d, want 10", s.BestScore())
	}

	s.Start()
	for i := 0; i < 4; i++ {
		s.Step(0.1)
	}

	want := int(expectedScriptScore(4))
	if s.BestScore() != want {
		t.Errorf("best during run = %d, want %d", s.BestScore(), want)
	}
	if s.HighScore() != 10 || len(scores.saves) != 0 {
		t.Error("high score must only be stored when the run ends")
	}
}

func TestSessionCollaboratorFailuresSwallowed(t *testing.T) {
	scores := &fakeScores{loadErr: errors.New("locked"), savePanic: true}
	sound := &fakeSound{panics: true}
	s := newScriptSession(scores, sound, ObserverFunc(func(Summary) {
		panic("observer exploded")
	}))

	if s.HighScore() != 0 {
		t.Errorf("high score after load error = %d, want 0", s.HighScore())
	}

	s.Start()
	s.Jump()
	for i := 0; i < 100 && s.State() == StateRunning; i++ {
		s.Step(0.1)
	}
	if s.State() != StateGameOver {
		t.Errorf("state = %v, want game_over", s.State())
	}
}

func TestSessionScoreMonotonic(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), Deps{Rand: core.NewRandom(99)})
	s.SetLayout(800, 480)
	s.Start()

	prev := 0.0
	for i := 0; i < 600 && s.State() == StateRunning; i++ {
		if s.Player().Grounded() {
			s.Jump()
		}
		s.Step(0.016)
		if s.Score() < prev {
			t.Fatalf("frame %d: score decreased %v -> %v", i, prev, s.Score())
		}
		prev = s.Score()
	}
}

func TestSessionAvatarSampling(t *testing.T) {
	sel := NewAvatarSelector(AvatarBunny)
	s := NewSession(scriptConfig(), Deps{Avatars: sel, Rand: core.NewRandom(1)})

	if s.Avatar() != AvatarBunny {
		t.Errorf("idle avatar = %v, want bunny", s.Avatar())
	}
	sel.Cycle(1)
	if s.Avatar() != AvatarRobot {
		t.Errorf("idle avatar should follow the selector, got %v", s.Avatar())
	}

	s.Start()
	sel.Set(AvatarPenguin)
	s.Step(0.01)
	if s.Avatar() != AvatarPenguin {
		t.Errorf("running avatar = %v, want penguin after a frame", s.Avatar())
	}
}

func TestSessionLayoutChangeKeepsRun(t *testing.T) {
	s := newScriptSession(nil, nil)
	s.Start()
	s.Step(0.1)
	elapsed := s.Elapsed()

	s.SetLayout(300, 400)
	if s.State() != StateRunning || s.Elapsed() != elapsed {
		t.Error("layout change must not reset the run")
	}
	if got := s.Player().Bounds().Bottom(); got != 360 {
		t.Errorf("player bottom = %v, want new ground 360", got)
	}
}
