package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"triangle-viewer/internal/coords"
	"triangle-viewer/internal/viewer"
)

const (
	axisExtent    = 70
	axisLineAlpha = 220
)

var (
	// Reused every frame when drawing the axes.
	axisX = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// renderer is the slice of raylib the scene draws through. GL state changes such as culling do not
// flush raylib's render batch, so the order of these calls decides what state the vertices are drawn with.
type renderer interface {
	BeginMode3D(cam rl.Camera3D)
	// EndMode3D flushes the batch.
	EndMode3D()
	EnableDepthTest()
	BeginBlendMode(mode rl.BlendMode)
	EndBlendMode()
	SetBackfaceCulling(enabled bool)
	BeginTriangles()
	Vertex(c viewer.Color, x, y, z float32)
	End()
	Line(start, end rl.Vector3, c rl.Color)
}

type raylibRenderer struct{}

func (raylibRenderer) BeginMode3D(cam rl.Camera3D)      { rl.BeginMode3D(cam) }
func (raylibRenderer) EndMode3D()                       { rl.EndMode3D() }
func (raylibRenderer) EnableDepthTest()                 { rl.EnableDepthTest() }
func (raylibRenderer) BeginBlendMode(mode rl.BlendMode) { rl.BeginBlendMode(mode) }
func (raylibRenderer) EndBlendMode()                    { rl.EndBlendMode() }
func (raylibRenderer) BeginTriangles()                  { rl.Begin(rl.Triangles) }
func (raylibRenderer) End()                             { rl.End() }

func (raylibRenderer) SetBackfaceCulling(enabled bool) {
	if enabled {
		rl.EnableBackfaceCulling()
	} else {
		rl.DisableBackfaceCulling()
	}
}

func (raylibRenderer) Vertex(c viewer.Color, x, y, z float32) {
	rl.Color4f(c.R, c.G, c.B, c.A)
	rl.Vertex3f(x, y, z)
}

func (raylibRenderer) Line(start, end rl.Vector3, c rl.Color) {
	rl.DrawLine3D(start, end, c)
}

// Scene holds the fixed 3D camera and draws the triangle between BeginMode3D and EndMode3D.
// The camera never moves; drag rotation is applied to the triangle itself.
type Scene struct {
	Camera      rl.Camera3D
	AxesVisible bool
	gl          renderer
}

// New returns a scene with a perspective camera at (0,30,30) looking at the origin, Y up, fovy 45°.
func New() *Scene {
	s := &Scene{gl: raylibRenderer{}}
	s.Camera.Position = rl.NewVector3(0, 30, 30)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetAxesVisible sets whether the X/Y/Z axis lines are drawn.
func (s *Scene) SetAxesVisible(visible bool) {
	s.AxesVisible = visible
}

// DrawTriangle draws one filled triangle with per-vertex colors in winding order 0,1,2.
// Both faces are drawn so the triangle stays visible when rotated away from the camera.
// Depth testing and alpha blending (src alpha, one minus src alpha) are on for the draw.
// Culling stays off until EndMode3D has flushed the batched vertices.
func (s *Scene) DrawTriangle(pts coords.Points, colors [coords.Count]viewer.Color) {
	gl := s.gl
	gl.BeginMode3D(s.Camera)
	gl.EnableDepthTest()
	gl.BeginBlendMode(rl.BlendAlpha)
	gl.SetBackfaceCulling(false)

	gl.BeginTriangles()
	for i, p := range pts {
		gl.Vertex(colors[i], p.X(), p.Y(), p.Z())
	}
	gl.End()

	if s.AxesVisible {
		drawAxes(gl)
	}
	gl.EndBlendMode()
	gl.EndMode3D()
	gl.SetBackfaceCulling(true)
}

// drawAxes draws the positive X (red), Y (green) and Z (blue) axes from the origin.
func drawAxes(gl renderer) {
	var origin, end rl.Vector3
	end.X, end.Y, end.Z = axisExtent, 0, 0
	gl.Line(origin, end, axisX)
	end.X, end.Y, end.Z = 0, axisExtent, 0
	gl.Line(origin, end, axisY)
	end.X, end.Y, end.Z = 0, 0, axisExtent
	gl.Line(origin, end, axisZ)
}
