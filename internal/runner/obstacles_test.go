package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestField(seed int64) *ObstacleField {
	cfg := config.DefaultRunnerConfig()
	return NewObstacleField(cfg.Obstacles, cfg.Speed, core.NewRandom(seed))
}

func TestIntervalMonotonic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	f := newTestField(1)

	if got := f.Interval(cfg.Speed.Base); got != cfg.Obstacles.MaxInterval {
		t.Errorf("Interval(base) = %v, want %v", got, cfg.Obstacles.MaxInterval)
	}
	if got := f.Interval(cfg.Speed.Max); got != cfg.Obstacles.MinInterval {
		t.Errorf("Interval(max) = %v, want %v", got, cfg.Obstacles.MinInterval)
	}

	prev := math.Inf(1)
	for speed := 0.0; speed <= 1500; speed += 25 {
		got := f.Interval(speed)
		if got > prev {
			t.Fatalf("Interval(%v) = %v increased from %v", speed, got, prev)
		}
		if got < cfg.Obstacles.MinInterval || got > cfg.Obstacles.MaxInterval {
			t.Fatalf("Interval(%v) = %v outside [%v, %v]", speed, got,
				cfg.Obstacles.MinInterval, cfg.Obstacles.MaxInterval)
		}
		prev = got
	}
}

func TestObstacleSpawnPlacement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	f := newTestField(7)
	interval := f.Interval(300)

	f.Update(interval, 300, 400, 800)

	obs := f.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected 1 obstacle, got %d", len(obs))
	}
	o := obs[0]

	wantX := 800 + cfg.Obstacles.SpawnOffset - 300*interval
	if math.Abs(o.X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", o.X, wantX)
	}
	if o.Y+o.H != 400 {
		t.Errorf("obstacle bottom = %v, want ground 400", o.Y+o.H)
	}
	if o.W < float64(cfg.Obstacles.MinWidth) || o.W > float64(cfg.Obstacles.MaxWidth) {
		t.Errorf("width %v out of range", o.W)
	}
	if o.H < float64(cfg.Obstacles.MinHeight) || o.H > float64(cfg.Obstacles.MaxHeight) {
		t.Errorf("height %v out of range", o.H)
	}
	if f.Timer() != 0 {
		t.Errorf("timer = %v, want 0 after spawn", f.Timer())
	}
}

func TestObstacleTimerStaysBelowInterval(t *testing.T) {
	f := newTestField(3)

	for i := 0; i < 1000; i++ {
		speed := 300 + float64(i)
		f.Update(0.016, speed, 400, 800)
		if f.Timer() < 0 || f.Timer() >= f.Interval(speed) {
			t.Fatalf("frame %d: timer %v outside [0, %v)", i, f.Timer(), f.Interval(speed))
		}
	}
}

func TestObstacleCullingStabilises(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	f := newTestField(42)

	const (
		speed = 300.0
		dt    = 0.016
		width = 800.0
	)

	// Longest possible trip from spawn point to cull line.
	travel := width + cfg.Obstacles.SpawnOffset + cfg.Obstacles.CullMargin + float64(cfg.Obstacles.MaxWidth)
	limit := int(math.Ceil(travel/(speed*f.Interval(speed)))) + 1

	frames := int(10 / dt)
	maxSeen := 0
	for i := 0; i < frames; i++ {
		f.Update(dt, speed, 400, width)
		maxSeen = max(maxSeen, f.Len())
		for _, o := range f.Obstacles() {
			if o.X+o.W < -cfg.Obstacles.CullMargin {
				t.Fatalf("frame %d: obstacle at %v should have been culled", i, o.X)
			}
		}
	}

	if maxSeen > limit {
		t.Errorf("live obstacles peaked at %d, want <= %d", maxSeen, limit)
	}
	if maxSeen == 0 {
		t.Error("no obstacles spawned in 10s")
	}
}

func TestObstacleOrderAndMovement(t *testing.T) {
	f := newTestField(5)
	interval := f.Interval(300)

	f.Update(interval, 300, 400, 2000)
	f.Update(interval, 300, 400, 2000)

	obs := f.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(obs))
	}
	if obs[0].X >= obs[1].X {
		t.Errorf("older obstacle should be further left: %v vs %v", obs[0].X, obs[1].X)
	}

	x := obs[0].X
	f.Update(0.01, 300, 400, 2000)
	if got := f.Obstacles()[0].X; math.Abs(got-(x-3)) > 1e-9 {
		t.Errorf("x after 0.01s = %v, want %v", got, x-3)
	}
}

func TestFirstHit(t *testing.T) {
	f := newTestField(9)
	f.obstacles = append(f.obstacles,
		Obstacle{X: 100, Y: 360, W: 20, H: 40},
		Obstacle{X: 200, Y: 360, W: 20, H: 40},
	)

	tests := []struct {
		name  string
		rect  core.Rect
		hit   bool
		wantX float64
	}{
		{"miss", core.NewRect(0, 356, 40, 44), false, 0},
		{"touching edge", core.NewRect(60, 356, 40, 44), false, 0},
		{"overlap first", core.NewRect(61, 356, 40, 44), true, 100},
		{"overlap second", core.NewRect(190, 356, 40, 44), true, 200},
		{"above", core.NewRect(100, 300, 40, 60), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, hit := f.FirstHit(tt.rect)
			if hit != tt.hit {
				t.Fatalf("hit = %v, want %v", hit, tt.hit)
			}
			if hit && o.X != tt.wantX {
				t.Errorf("hit obstacle x = %v, want %v", o.X, tt.wantX)
			}
		})
	}
}

func TestObstacleFieldReset(t *testing.T) {
	f := newTestField(11)
	f.Update(f.Interval(300), 300, 400, 800)
	f.Update(0.2, 300, 400, 800)

	f.Reset()
	if f.Len() != 0 || f.Timer() != 0 {
		t.Errorf("after reset: len=%d timer=%v", f.Len(), f.Timer())
	}
}
