// Package audio synthesizes the runner's sound cues with beep and plays
// them on the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/runner"
)

const sampleRate = beep.SampleRate(44100)

// Options configures the cue player.
type Options struct {
	Enabled bool
	Volume  float64 // Linear gain, 0..1
}

// Cues plays jump and game-over sounds. If the speaker cannot be opened it
// stays silent; playback never blocks the caller.
type Cues struct {
	mu     sync.Mutex
	ready  bool
	volume float64
	logger *log.Logger
}

var _ runner.SoundCues = (*Cues)(nil)

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// New opens the speaker when enabled. A failure is logged and leaves the
// returned Cues silent.
func New(opts Options, logger *log.Logger) *Cues {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Cues{volume: opts.Volume, logger: logger}
	if !opts.Enabled {
		return c
	}

	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
	})
	if speakerErr != nil {
		logger.Warn("audio disabled", "err", fmt.Errorf("audio: cannot open speaker: %w", speakerErr))
		return c
	}
	c.ready = true
	return c
}

// Ready reports whether sounds will be heard.
func (c *Cues) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// PlayJumpCue plays the jump chirp.
func (c *Cues) PlayJumpCue() {
	c.play(JumpSound)
}

// PlayGameOverCue plays the game-over tone.
func (c *Cues) PlayGameOverCue() {
	c.play(GameOverSound)
}

func (c *Cues) play(build func(beep.SampleRate, float64) beep.Streamer) {
	c.mu.Lock()
	ready, vol := c.ready, c.volume
	c.mu.Unlock()

	if !ready || vol <= 0 {
		return
	}
	speaker.Play(build(sampleRate, vol))
}

// Close stops all playing sounds and silences further cues.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		speaker.Clear()
		c.ready = false
	}
}
