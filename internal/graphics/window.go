package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"triangle-viewer/internal/coords"
	"triangle-viewer/internal/scene"
	"triangle-viewer/internal/viewer"
)

// Title is the window title.
const Title = "Triangle Viewer"

const fallbackFPS = 60

// keyMap maps viewer keys to raylib keys. Digits accept both the top row and the keypad.
var keyMap = map[viewer.Key][]int32{
	viewer.KeyEscape: {rl.KeyEscape},
	viewer.KeyM:      {rl.KeyM},
	viewer.KeyR:      {rl.KeyR},
	viewer.KeyG:      {rl.KeyG},
	viewer.KeyB:      {rl.KeyB},
	viewer.KeyA:      {rl.KeyA},
	viewer.KeyD:      {rl.KeyD},
	viewer.KeyX:      {rl.KeyX},
	viewer.KeyV:      {rl.KeyV},
	viewer.Key1:      {rl.KeyOne, rl.KeyKp1},
	viewer.Key2:      {rl.KeyTwo, rl.KeyKp2},
	viewer.Key3:      {rl.KeyThree, rl.KeyKp3},
}

// Window is the raylib window. It implements viewer.Surface.
type Window struct {
	Scene      *scene.Scene
	background rl.Color
}

// Options configures Open.
type Options struct {
	Width, Height int
	Background    [3]uint8
	ShowAxes      bool
}

// Open creates a vsync'd window of the given size centred on the current monitor.
// Escape is not raylib's exit key; the viewer handles it so it goes through the same input path as other keys.
func Open(opts Options) *Window {
	rl.SetConfigFlags(rl.FlagVsyncHint | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), Title)
	rl.SetExitKey(rl.KeyNull)

	monitor := rl.GetCurrentMonitor()
	mw, mh := rl.GetMonitorWidth(monitor), rl.GetMonitorHeight(monitor)
	if mw > 0 && mh > 0 {
		rl.SetWindowPosition((mw-opts.Width)/2, (mh-opts.Height)/2)
	}
	fps := rl.GetMonitorRefreshRate(monitor)
	if fps <= 0 {
		fps = fallbackFPS
	}
	rl.SetTargetFPS(int32(fps))

	scn := scene.New()
	scn.SetAxesVisible(opts.ShowAxes)
	bg := opts.Background
	return &Window{Scene: scn, background: rl.NewColor(bg[0], bg[1], bg[2], 255)}
}

// Close destroys the window and its GL context.
func (w *Window) Close() {
	rl.CloseWindow()
}

// PollInput reads the keys, left mouse button and pointer delta for this frame.
func (w *Window) PollInput() viewer.Input {
	var in viewer.Input
	for _, k := range viewer.AllKeys {
		for _, rk := range keyMap[k] {
			if rl.IsKeyDown(rk) {
				in.Keys = in.Keys.With(k)
				break
			}
		}
	}
	in.LeftButton = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	d := rl.GetMouseDelta()
	in.DeltaX, in.DeltaY = d.X, d.Y
	return in
}

// Clear begins the frame and clears color and depth to the background.
func (w *Window) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(w.background)
}

// DrawTriangle draws the triangle through the scene camera.
func (w *Window) DrawTriangle(pts coords.Points, colors [coords.Count]viewer.Color) {
	w.Scene.DrawTriangle(pts, colors)
}

// SwapBuffers ends the frame; raylib swaps and waits for the next frame tick.
func (w *Window) SwapBuffers() {
	rl.EndDrawing()
}

// ShouldClose reports whether the window's close button was used.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}
