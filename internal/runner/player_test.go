package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestPlayer(ground float64) *Player {
	p := NewPlayer(config.PlayerConfig{X: 90, Width: 50, Height: 60, Gravity: 2200, JumpVelocity: 780})
	p.SetGroundLine(ground)
	return p
}

func TestPlayerFirstGroundLinePlacesPlayer(t *testing.T) {
	p := newTestPlayer(400)

	b := p.Bounds()
	if b.Bottom() != 400 {
		t.Errorf("bottom = %v, want 400", b.Bottom())
	}
	if !p.Grounded() {
		t.Error("player should start grounded")
	}
	if b.X != 90 {
		t.Errorf("x = %v, want 90", b.X)
	}
}

func TestPlayerGroundInvariant(t *testing.T) {
	p := newTestPlayer(400)
	dts := []float64{0.001, 0.016, 0.033, 0.0, 0.02}

	for i := 0; i < 2000; i++ {
		if i%37 == 0 {
			p.Jump()
		}
		p.Update(dts[i%len(dts)])

		if bottom := p.Bounds().Bottom(); bottom > p.GroundLine()+1e-9 {
			t.Fatalf("frame %d: bottom %v below ground %v", i, bottom, p.GroundLine())
		}
		if p.Grounded() && p.Velocity() != 0 {
			t.Fatalf("frame %d: grounded with velocity %v", i, p.Velocity())
		}
	}
}

func TestPlayerJumpGating(t *testing.T) {
	p := newTestPlayer(400)

	if !p.Jump() {
		t.Fatal("jump from ground should succeed")
	}
	if p.Velocity() != -780 {
		t.Errorf("velocity = %v, want -780", p.Velocity())
	}

	p.Update(0.016)
	v := p.Velocity()
	if p.Jump() {
		t.Error("jump while airborne should fail")
	}
	if p.Velocity() != v {
		t.Error("failed jump must not change velocity")
	}
}

func TestPlayerLandsAndCanJumpAgain(t *testing.T) {
	p := newTestPlayer(400)
	p.Jump()

	for i := 0; i < 200 && !p.Grounded(); i++ {
		p.Update(0.016)
	}
	if !p.Grounded() {
		t.Fatal("player never landed")
	}
	if p.Bounds().Bottom() != 400 {
		t.Errorf("landed bottom = %v, want 400", p.Bounds().Bottom())
	}
	if !p.Jump() {
		t.Error("jump after landing should succeed")
	}
}

func TestPlayerSetGroundLineLater(t *testing.T) {
	t.Run("grounded follows ground", func(t *testing.T) {
		p := newTestPlayer(400)
		p.SetGroundLine(300)
		if p.Bounds().Bottom() != 300 {
			t.Errorf("bottom = %v, want 300", p.Bounds().Bottom())
		}
	})

	t.Run("airborne keeps height above new ground", func(t *testing.T) {
		p := newTestPlayer(400)
		p.Jump()
		p.Update(0.1)
		y := p.Bounds().Y
		p.SetGroundLine(500)
		if p.Bounds().Y != y {
			t.Errorf("y changed from %v to %v", y, p.Bounds().Y)
		}
		if p.Grounded() {
			t.Error("player should still be airborne")
		}
	})

	t.Run("airborne clamped when ground rises past it", func(t *testing.T) {
		p := newTestPlayer(400)
		p.Jump()
		p.Update(0.05)
		p.SetGroundLine(p.Bounds().Y + 10)
		if !p.Grounded() || p.Velocity() != 0 {
			t.Error("player should be clamped onto the raised ground")
		}
		if p.Bounds().Bottom() != p.GroundLine() {
			t.Errorf("bottom %v, ground %v", p.Bounds().Bottom(), p.GroundLine())
		}
	})
}

func TestPlayerReset(t *testing.T) {
	p := newTestPlayer(400)
	p.Jump()
	p.Update(0.1)

	p.Reset()
	if !p.Grounded() || p.Velocity() != 0 || p.Altitude() != 0 {
		t.Errorf("reset left grounded=%v velocity=%v altitude=%v", p.Grounded(), p.Velocity(), p.Altitude())
	}
}
