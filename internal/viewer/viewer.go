package viewer

import (
	"triangle-viewer/internal/coords"
	"triangle-viewer/internal/logger"
)

// Surface is what the viewer needs from a window: input polling and drawing one colored triangle.
// The raylib window implements it; tests use a scripted fake.
type Surface interface {
	// PollInput returns the input held during the current frame.
	PollInput() Input
	// Clear starts a frame and clears color and depth.
	Clear()
	DrawTriangle(pts coords.Points, colors [coords.Count]Color)
	// SwapBuffers presents the frame and blocks until the next vsync tick.
	SwapBuffers()
	// ShouldClose reports a close request from the platform (e.g. the window's close button).
	ShouldClose() bool
}

// HelpText is printed at startup and whenever M is pressed.
const HelpText = `
Usage:
To change a vertex color, select the vertex (1, 2 or 3), then press the key of the channel (R, G, B).
Each press changes the channel gradually; repeat the key to keep changing it.
Transparency works the same way.

   CHOOSE AN OPTION
 R - Red
 G - Green
 B - Blue
 A - Increase transparency
 D - Decrease transparency
 X - Reset RGBA
 V - Show RGBA values
 M - Show this menu
 ESC - Exit
 CLICK (left) - Rotate`

// ShowHelp logs the usage text.
func ShowHelp(log *logger.Logger) {
	log.Log(HelpText)
}

// ShowColors logs the current RGBA values of all three vertices.
func ShowColors(log *logger.Logger, s *State) {
	log.Log("\nVertex colors:")
	for _, line := range s.ColorLines() {
		log.Log(line)
	}
}

// Run drives the frame loop until Escape is pressed or the surface asks to close.
// overlay, if non-nil, is called after the triangle is drawn and before the frame is presented.
func Run(surface Surface, s *State, log *logger.Logger, overlay func(*State)) {
	var prev Input
	for !surface.ShouldClose() {
		cur := surface.PollInput()
		act := s.Apply(prev, cur)
		prev = cur
		if act.Has(ActionQuit) {
			return
		}
		if act.Has(ActionShowHelp) {
			ShowHelp(log)
		}
		if act.Has(ActionShowColors) {
			ShowColors(log, s)
		}

		surface.Clear()
		surface.DrawTriangle(s.Transformed(), s.Colors)
		if overlay != nil {
			overlay(s)
		}
		surface.SwapBuffers()
	}
}
