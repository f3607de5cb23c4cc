package runner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type drawOp struct {
	kind  string
	rect  core.Rect
	paint Paint
	text  string
}

// recordCanvas records draw calls instead of painting them.
type recordCanvas struct {
	w, h float64
	ops  []drawOp
}

func (c *recordCanvas) Size() (float64, float64) { return c.w, c.h }

func (c *recordCanvas) FillRect(r core.Rect, p Paint) {
	c.ops = append(c.ops, drawOp{kind: "rect", rect: r, paint: p})
}

func (c *recordCanvas) FillRoundRect(r core.Rect, _ float64, p Paint) {
	c.ops = append(c.ops, drawOp{kind: "round", rect: r, paint: p})
}

func (c *recordCanvas) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	c.ops = append(c.ops, drawOp{kind: "ellipse", rect: core.NewRect(cx-rx, cy-ry, 2*rx, 2*ry), paint: p})
}

func (c *recordCanvas) Text(x, y float64, s string, col core.Color) {
	c.ops = append(c.ops, drawOp{kind: "text", rect: core.NewRect(x, y, 0, 0), text: s, paint: Paint{Color: col}})
}

func (c *recordCanvas) TextWidth(s string) float64 { return float64(len([]rune(s))) * 10 }
func (c *recordCanvas) LineHeight() float64        { return 20 }

func (c *recordCanvas) texts() string {
	var b strings.Builder
	for _, op := range c.ops {
		if op.kind == "text" {
			b.WriteString(op.text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func TestDrawIdleShowsOverlay(t *testing.T) {
	ov := NewOverlay()
	s := NewSession(scriptConfig(), Deps{Avatars: NewAvatarSelector(AvatarBunny), Observers: []Observer{ov}, Rand: core.NewRandom(1)})
	s.SetLayout(800, 480)

	c := &recordCanvas{w: 800, h: 480}
	Draw(c, s, ov)

	texts := c.texts()
	if !strings.Contains(texts, "RUNNER") {
		t.Errorf("idle frame missing title:\n%s", texts)
	}
	if !strings.Contains(texts, "Score 00000") {
		t.Errorf("idle frame missing HUD:\n%s", texts)
	}

	bunny := AvatarBunny.Info()
	found := false
	for _, op := range c.ops {
		if op.kind == "round" && op.rect == s.Player().Bounds() {
			found = op.paint.Color == bunny.Color && op.paint.Glyph == bunny.Glyph
		}
	}
	if !found {
		t.Error("player not drawn with the bunny avatar paint")
	}
}

func TestDrawRunningHidesOverlay(t *testing.T) {
	ov := NewOverlay()
	s := newScriptSession(nil, nil, ov)
	s.Start()
	for i := 0; i < 6 && s.State() == StateRunning; i++ {
		s.Step(0.1)
		if i == 4 {
			c := &recordCanvas{w: 100, h: 200}
			Draw(c, s, ov)
			if strings.Contains(c.texts(), "RUNNER") || strings.Contains(c.texts(), "GAME OVER") {
				t.Errorf("overlay drawn while running:\n%s", c.texts())
			}
		}
	}

	c := &recordCanvas{w: 100, h: 200}
	Draw(c, s, ov)
	if !strings.Contains(c.texts(), "GAME OVER") {
		t.Errorf("game over frame missing overlay:\n%s", c.texts())
	}

	obstacles := 0
	for _, op := range c.ops {
		if op.kind == "round" && op.paint == paintObstacle {
			obstacles++
		}
	}
	if obstacles != len(s.Obstacles()) {
		t.Errorf("drew %d obstacles, session has %d", obstacles, len(s.Obstacles()))
	}
}

func TestDrawHUDRaisesBestLive(t *testing.T) {
	ov := NewOverlay()
	s := newScriptSession(&fakeScores{high: 10}, nil, ov)
	s.Start()
	for i := 0; i < 4; i++ {
		s.Step(0.1)
	}

	c := &recordCanvas{w: 100, h: 200}
	Draw(c, s, ov)

	want := fmt.Sprintf("Best %05d", int(expectedScriptScore(4)))
	if !strings.Contains(c.texts(), want) {
		t.Errorf("HUD missing %q:\n%s", want, c.texts())
	}
}

func TestOverlayTransitions(t *testing.T) {
	ov := NewOverlay()
	if !ov.Visible() || ov.Title() != "RUNNER" {
		t.Fatalf("new overlay: visible=%v title=%q", ov.Visible(), ov.Title())
	}

	ov.SessionChanged(Summary{From: StateIdle, To: StateRunning})
	if ov.Visible() {
		t.Error("overlay visible while running")
	}

	ov.SessionChanged(Summary{From: StateRunning, To: StateGameOver, Score: 42, HighScore: 42, NewRecord: true})
	body := strings.Join(ov.Lines(), "\n")
	if ov.Title() != "GAME OVER" || !strings.Contains(body, "Score 42") || !strings.Contains(body, "New record!") {
		t.Errorf("game over overlay: %q\n%s", ov.Title(), body)
	}

	ov.SessionChanged(Summary{From: StateRunning, To: StateGameOver, Score: 5, HighScore: 42})
	if strings.Contains(strings.Join(ov.Lines(), "\n"), "New record!") {
		t.Error("new record shown without a record")
	}
}

func TestAvatars(t *testing.T) {
	if len(Avatars()) != int(avatarCount) {
		t.Fatalf("Avatars() len = %d", len(Avatars()))
	}

	tests := []struct {
		name string
		want AvatarID
		ok   bool
	}{
		{"penguin", AvatarPenguin, true},
		{" Robot ", AvatarRobot, true},
		{"BUNNY", AvatarBunny, true},
		{"dragon", AvatarPenguin, false},
	}
	for _, tt := range tests {
		got, ok := ParseAvatar(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAvatar(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}

	if AvatarRobot.Next() != AvatarPenguin || AvatarPenguin.Prev() != AvatarRobot {
		t.Error("avatar cycling should wrap")
	}
	if AvatarID(99).String() != "penguin" {
		t.Error("unknown avatar should fall back to penguin")
	}
}
