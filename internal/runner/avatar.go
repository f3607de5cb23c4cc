package runner

import (
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// AvatarID identifies a player skin. Avatars are cosmetic only.
type AvatarID int

// Available avatars.
const (
	AvatarPenguin AvatarID = iota
	AvatarBunny
	AvatarRobot
	avatarCount
)

// Avatar describes how a skin is drawn.
type Avatar struct {
	ID    AvatarID
	Name  string
	Glyph rune       // Terminal fill glyph for the body
	Color core.Color // Body color
}

var avatarTable = [avatarCount]Avatar{
	{AvatarPenguin, "penguin", '█', core.ColorBrightCyan},
	{AvatarBunny, "bunny", '▓', core.ColorBrightMagenta},
	{AvatarRobot, "robot", '▣', core.ColorBrightBlue},
}

// Info returns the drawing details for id. Unknown ids fall back to penguin.
func (id AvatarID) Info() Avatar {
	if id < 0 || id >= avatarCount {
		return avatarTable[AvatarPenguin]
	}
	return avatarTable[id]
}

// String returns the avatar's name.
func (id AvatarID) String() string {
	return id.Info().Name
}

// Next returns the following avatar, wrapping around.
func (id AvatarID) Next() AvatarID {
	return (id.Info().ID + 1) % avatarCount
}

// Prev returns the preceding avatar, wrapping around.
func (id AvatarID) Prev() AvatarID {
	return (id.Info().ID + avatarCount - 1) % avatarCount
}

// ParseAvatar looks up an avatar by name, case-insensitively.
func ParseAvatar(name string) (AvatarID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range avatarTable {
		if a.Name == name {
			return a.ID, true
		}
	}
	return AvatarPenguin, false
}

// Avatars returns all avatars in display order.
func Avatars() []Avatar {
	out := make([]Avatar, len(avatarTable))
	copy(out, avatarTable[:])
	return out
}

// AvatarSelector holds the currently selected avatar and implements AvatarSource.
type AvatarSelector struct {
	id AvatarID
}

// NewAvatarSelector creates a selector starting at id.
func NewAvatarSelector(id AvatarID) *AvatarSelector {
	return &AvatarSelector{id: id.Info().ID}
}

// Avatar returns the selected avatar.
func (s *AvatarSelector) Avatar() AvatarID {
	return s.id
}

// Set selects id.
func (s *AvatarSelector) Set(id AvatarID) {
	s.id = id.Info().ID
}

// Cycle moves the selection forward (dir > 0) or backward and returns it.
func (s *AvatarSelector) Cycle(dir int) AvatarID {
	if dir < 0 {
		s.id = s.id.Prev()
	} else {
		s.id = s.id.Next()
	}
	return s.id
}
