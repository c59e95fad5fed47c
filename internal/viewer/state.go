package viewer

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"triangle-viewer/internal/coords"
)

const (
	// DefaultStep is how much one key press moves a color channel.
	DefaultStep = 0.05
	// DefaultSensitivity converts pointer pixels into degrees of rotation.
	DefaultSensitivity = 0.005

	// NoSelection is the Selected value before any vertex key has been pressed.
	NoSelection = -1

	channelMin = 0.0
	channelMax = 1.0
)

// Color is an RGBA color with every channel in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Black is opaque black, the initial and reset color of every vertex.
var Black = Color{0, 0, 0, 1}

// Action tells the caller about side effects a frame asked for. Values combine as a bit mask.
type Action uint8

const (
	ActionShowHelp Action = 1 << iota
	ActionShowColors
	ActionQuit
)

// Has reports whether a includes b.
func (a Action) Has(b Action) bool {
	return a&b != 0
}

// State is the whole mutable model of the viewer: the loaded triangle, vertex colors, selection and rotation.
type State struct {
	Points   coords.Points
	Colors   [coords.Count]Color
	Selected int

	// Accumulated drag angles in degrees. They only change while the left button is held.
	RotX, RotY float32
	Dragging   bool
	// Orientation is the model transform. Every dragged frame multiplies it by the current
	// RotY/RotX rotations, so rotation keeps compounding while the button stays down.
	Orientation mgl32.Mat4

	Step        float32
	Sensitivity float32
}

// NewState returns a state for pts with opaque black vertices, nothing selected and no rotation.
func NewState(pts coords.Points) *State {
	s := &State{
		Points:      pts,
		Selected:    NoSelection,
		Orientation: mgl32.Ident4(),
		Step:        DefaultStep,
		Sensitivity: DefaultSensitivity,
	}
	s.ResetColors()
	return s
}

// Apply advances the state by one frame given the previous and current input snapshots.
// Color keys, X, V and M fire on the press transition only; selection keys and Escape are read every frame.
func (s *State) Apply(prev, cur Input) Action {
	if cur.Keys.Down(KeyEscape) {
		return ActionQuit
	}

	var act Action
	if cur.Pressed(prev, KeyM) {
		act |= ActionShowHelp
	}

	if cur.Pressed(prev, KeyR) {
		s.adjust(KeyR)
	}
	if cur.Pressed(prev, KeyG) {
		s.adjust(KeyG)
	}
	if cur.Pressed(prev, KeyB) {
		s.adjust(KeyB)
	}
	if cur.Pressed(prev, KeyA) {
		s.adjust(KeyA)
	}
	if cur.Pressed(prev, KeyD) {
		s.adjust(KeyD)
	}

	if cur.Pressed(prev, KeyX) {
		s.ResetColors()
	}

	if cur.Keys.Down(Key1) {
		s.Selected = 0
	}
	if cur.Keys.Down(Key2) {
		s.Selected = 1
	}
	if cur.Keys.Down(Key3) {
		s.Selected = 2
	}

	if cur.Pressed(prev, KeyV) {
		act |= ActionShowColors
	}

	s.drag(cur)
	return act
}

// adjust applies one color key to the selected vertex. A lowers alpha (more transparent), D raises it.
func (s *State) adjust(k Key) {
	if s.Selected < 0 || s.Selected >= len(s.Colors) {
		return
	}
	c := &s.Colors[s.Selected]
	switch k {
	case KeyR:
		c.R = clampChannel(c.R + s.Step)
	case KeyG:
		c.G = clampChannel(c.G + s.Step)
	case KeyB:
		c.B = clampChannel(c.B + s.Step)
	case KeyA:
		c.A = clampChannel(c.A - s.Step)
	case KeyD:
		c.A = clampChannel(c.A + s.Step)
	}
}

func clampChannel(v float32) float32 {
	return mgl32.Clamp(v, channelMin, channelMax)
}

// ResetColors sets every vertex back to opaque black regardless of the selection.
func (s *State) ResetColors() {
	for i := range s.Colors {
		s.Colors[i] = Black
	}
}

func (s *State) drag(cur Input) {
	s.Dragging = cur.LeftButton
	if !s.Dragging {
		return
	}
	s.RotX += cur.DeltaX * s.Sensitivity
	s.RotY += cur.DeltaY * s.Sensitivity
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(s.RotX)).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.RotY)))
	s.Orientation = s.Orientation.Mul4(rot)
}

// Transformed returns the triangle corners with the current orientation applied.
func (s *State) Transformed() coords.Points {
	var out coords.Points
	for i, p := range s.Points {
		out[i] = mgl32.TransformCoordinate(p, s.Orientation)
	}
	return out
}

// SelectedLabel is the 1-based vertex number shown to the user, or "none".
func (s *State) SelectedLabel() string {
	if s.Selected == NoSelection {
		return "none"
	}
	return strconv.Itoa(s.Selected + 1)
}

// ColorLines formats the current RGBA of each vertex, one line per vertex, numbered from 1.
func (s *State) ColorLines() []string {
	lines := make([]string, 0, len(s.Colors))
	for i, c := range s.Colors {
		lines = append(lines, fmt.Sprintf("Vertex %d [ R: %s, G: %s, B: %s, A: %s]",
			i+1, formatChannel(c.R), formatChannel(c.G), formatChannel(c.B), formatChannel(c.A)))
	}
	return lines
}

func formatChannel(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
