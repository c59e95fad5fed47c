package viewer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"triangle-viewer/internal/coords"
)

var unitTriangle = coords.Points{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func nearColor(a, b Color) bool {
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B) && near(a.A, b.A)
}

// tap presses k for one frame and releases it on the next.
func tap(s *State, k Key) Action {
	act := s.Apply(Input{}, Input{Keys: Keys(k)})
	s.Apply(Input{Keys: Keys(k)}, Input{})
	return act
}

func TestNewState(t *testing.T) {
	s := NewState(unitTriangle)
	if s.Selected != NoSelection {
		t.Fatalf("Selected = %d", s.Selected)
	}
	for i, c := range s.Colors {
		if c != Black {
			t.Fatalf("color %d = %v, want opaque black", i, c)
		}
	}
	if s.Orientation != mgl32.Ident4() {
		t.Fatalf("orientation not identity")
	}
}

func TestRedFivePressesOnVertexThree(t *testing.T) {
	s := NewState(unitTriangle)
	tap(s, Key3)
	for i := 0; i < 5; i++ {
		tap(s, KeyR)
	}
	if s.Selected != 2 {
		t.Fatalf("Selected = %d", s.Selected)
	}
	if !nearColor(s.Colors[2], Color{0.25, 0, 0, 1}) {
		t.Fatalf("vertex 3 = %v", s.Colors[2])
	}
	if s.Colors[0] != Black || s.Colors[1] != Black {
		t.Fatalf("other vertices changed: %v %v", s.Colors[0], s.Colors[1])
	}
}

func TestColorKeysIgnoredWithoutSelection(t *testing.T) {
	s := NewState(unitTriangle)
	for _, k := range []Key{KeyR, KeyG, KeyB, KeyA, KeyD} {
		tap(s, k)
	}
	for i, c := range s.Colors {
		if c != Black {
			t.Fatalf("color %d = %v", i, c)
		}
	}
}

func TestChannelKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want Color
	}{
		{KeyR, Color{0.05, 0, 0, 1}},
		{KeyG, Color{0, 0.05, 0, 1}},
		{KeyB, Color{0, 0, 0.05, 1}},
		{KeyA, Color{0, 0, 0, 0.95}},
		{KeyD, Color{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		s := NewState(unitTriangle)
		tap(s, Key1)
		tap(s, tt.key)
		if !nearColor(s.Colors[0], tt.want) {
			t.Fatalf("key %d: color = %v, want %v", tt.key, s.Colors[0], tt.want)
		}
	}
}

func TestSaturation(t *testing.T) {
	s := NewState(unitTriangle)
	tap(s, Key2)
	for i := 0; i < 40; i++ {
		tap(s, KeyG)
		tap(s, KeyA)
	}
	c := s.Colors[1]
	if c.G != 1 || c.A != 0 {
		t.Fatalf("after saturation: %v", c)
	}
	tap(s, KeyG)
	tap(s, KeyA)
	if s.Colors[1] != c {
		t.Fatalf("presses at the bound changed the color: %v -> %v", c, s.Colors[1])
	}

	for i := 0; i < 40; i++ {
		tap(s, KeyD)
	}
	if s.Colors[1].A != 1 {
		t.Fatalf("alpha = %v, want 1", s.Colors[1].A)
	}
}

func TestClampInvariantRandomPresses(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []Key{KeyR, KeyG, KeyB, KeyA, KeyD, KeyX, Key1, Key2, Key3}
	s := NewState(unitTriangle)
	var prev Input
	for i := 0; i < 2000; i++ {
		var cur Input
		if rng.Intn(2) == 0 {
			cur.Keys = Keys(keys[rng.Intn(len(keys))])
		}
		s.Apply(prev, cur)
		prev = cur
		for v, c := range s.Colors {
			for _, ch := range []float32{c.R, c.G, c.B, c.A} {
				if ch < 0 || ch > 1 {
					t.Fatalf("step %d: vertex %d out of range: %v", i, v, c)
				}
			}
		}
	}
}

func TestResetIgnoresSelection(t *testing.T) {
	s := NewState(unitTriangle)
	for _, sel := range []Key{Key1, Key2, Key3} {
		tap(s, sel)
		tap(s, KeyR)
		tap(s, KeyB)
		tap(s, KeyA)
	}
	s.Selected = NoSelection
	tap(s, KeyX)
	for i, c := range s.Colors {
		if c != (Color{0, 0, 0, 1}) {
			t.Fatalf("color %d = %v after reset", i, c)
		}
	}
}

func TestEdgeTriggeredOncePerPress(t *testing.T) {
	s := NewState(unitTriangle)
	tap(s, Key1)

	held := Input{Keys: Keys(KeyR)}
	s.Apply(Input{}, held)
	for i := 0; i < 30; i++ {
		s.Apply(held, held)
	}
	if !near(s.Colors[0].R, 0.05) {
		t.Fatalf("holding R for 31 frames gave R = %v", s.Colors[0].R)
	}

	s.Apply(held, Input{})
	s.Apply(Input{}, held)
	if !near(s.Colors[0].R, 0.10) {
		t.Fatalf("second press gave R = %v", s.Colors[0].R)
	}
}

func TestDKeyIndependentOfA(t *testing.T) {
	s := NewState(unitTriangle)
	tap(s, Key1)
	for i := 0; i < 4; i++ {
		tap(s, KeyA)
	}
	// A held while D goes down: D still fires.
	s.Apply(Input{Keys: Keys(KeyA)}, Input{Keys: Keys(KeyA, KeyD)})
	if !near(s.Colors[0].A, 0.85) {
		t.Fatalf("alpha = %v, want 0.85", s.Colors[0].A)
	}
	// D held with A released: D does not repeat.
	s.Apply(Input{Keys: Keys(KeyA, KeyD)}, Input{Keys: Keys(KeyD)})
	s.Apply(Input{Keys: Keys(KeyD)}, Input{Keys: Keys(KeyD)})
	if !near(s.Colors[0].A, 0.85) {
		t.Fatalf("alpha = %v after holding D, want 0.85", s.Colors[0].A)
	}
}

func TestSelectionLevelTriggered(t *testing.T) {
	s := NewState(unitTriangle)
	held := Input{Keys: Keys(Key2)}
	s.Apply(held, held)
	if s.Selected != 1 {
		t.Fatalf("Selected = %d, want 1 while held", s.Selected)
	}
	s.Apply(held, Input{})
	if s.Selected != 1 {
		t.Fatalf("selection not kept after release")
	}
}

func TestColorEditUsesSelectionBeforeFrame(t *testing.T) {
	s := NewState(unitTriangle)
	tap(s, Key1)
	s.Apply(Input{}, Input{Keys: Keys(KeyR, Key2)})
	if !near(s.Colors[0].R, 0.05) || s.Colors[1].R != 0 {
		t.Fatalf("colors = %v", s.Colors)
	}
	if s.Selected != 1 {
		t.Fatalf("Selected = %d", s.Selected)
	}
}

func TestActions(t *testing.T) {
	s := NewState(unitTriangle)
	if act := tap(s, KeyM); !act.Has(ActionShowHelp) || act.Has(ActionShowColors) {
		t.Fatalf("M action = %b", act)
	}
	if act := tap(s, KeyV); !act.Has(ActionShowColors) {
		t.Fatalf("V action = %b", act)
	}
	held := Input{Keys: Keys(KeyV)}
	if act := s.Apply(held, held); act.Has(ActionShowColors) {
		t.Fatalf("holding V repeated the dump")
	}
	if act := s.Apply(Input{}, Input{Keys: Keys(KeyEscape, KeyM)}); act != ActionQuit {
		t.Fatalf("escape action = %b", act)
	}
}

func TestDragAccumulates(t *testing.T) {
	s := NewState(unitTriangle)
	s.Apply(Input{}, Input{DeltaX: 100, DeltaY: 50})
	if s.RotX != 0 || s.RotY != 0 || s.Dragging {
		t.Fatalf("moved without button: %v %v", s.RotX, s.RotY)
	}
	if s.Orientation != mgl32.Ident4() {
		t.Fatalf("orientation changed without drag")
	}

	in := Input{LeftButton: true, DeltaX: 100, DeltaY: -40}
	s.Apply(Input{}, in)
	s.Apply(in, in)
	if !near(s.RotX, 1.0) || !near(s.RotY, -0.4) {
		t.Fatalf("RotX, RotY = %v, %v", s.RotX, s.RotY)
	}
	if !s.Dragging {
		t.Fatalf("Dragging = false while button held")
	}

	got := s.Orientation
	s.Apply(in, Input{})
	if s.Orientation != got {
		t.Fatalf("orientation changed after release")
	}
	if s.Dragging {
		t.Fatalf("Dragging = true after release")
	}
}

func TestOrientationCompounds(t *testing.T) {
	s := NewState(coords.Points{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	// 9000 px * 0.005 = 45° about Y on the first frame, 90° accumulated on the second:
	// orientation is Ry(45)·Ry(90) = Ry(135).
	in := Input{LeftButton: true, DeltaX: 9000}
	s.Apply(Input{}, in)
	s.Apply(in, in)

	want := mgl32.HomogRotate3DY(mgl32.DegToRad(135))
	if !s.Orientation.ApproxEqualThreshold(want, 1e-4) {
		t.Fatalf("orientation = %v, want %v", s.Orientation, want)
	}
	p := s.Transformed()[0]
	wantP := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, want)
	if !p.ApproxEqualThreshold(wantP, 1e-4) {
		t.Fatalf("transformed = %v, want %v", p, wantP)
	}
	if s.Points[0] != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("loaded points mutated: %v", s.Points[0])
	}
}

func TestColorLines(t *testing.T) {
	s := NewState(unitTriangle)
	s.Colors[1] = Color{0.5, 0.25, 1, 0}
	lines := s.ColorLines()
	want := []string{
		"Vertex 1 [ R: 0, G: 0, B: 0, A: 1]",
		"Vertex 2 [ R: 0.5, G: 0.25, B: 1, A: 0]",
		"Vertex 3 [ R: 0, G: 0, B: 0, A: 1]",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSelectedLabel(t *testing.T) {
	s := NewState(unitTriangle)
	if s.SelectedLabel() != "none" {
		t.Fatalf("label = %q", s.SelectedLabel())
	}
	tap(s, Key3)
	if s.SelectedLabel() != "3" {
		t.Fatalf("label = %q", s.SelectedLabel())
	}
}
