package tui

import (
	"math"

	"mini-platformer/internal/component"
	"mini-platformer/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// margin in world units around the platform and spawn line
const margin = 3

var (
	platformStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(60, 110, 60))
	voidStyle     = tcell.StyleDefault.Background(tcell.ColorBlack)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 70, 50)).Bold(true)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Viewport maps the world's x/z plane onto a grid of terminal cells, with
// -z at the top.
type Viewport struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
	Left, Top  int
	Cols, Rows int
}

// Fit frames the platform and the obstacle spawn line within cols x rows
// cells starting at (left, top).
func Fit(w *world.World, left, top, cols, rows int) Viewport {
	p := w.Platform()
	t := w.Tuning()
	minZ := min(-p.HalfLength, t.ObstacleZ) - margin
	halfX := max(p.HalfWidth, t.SpawnXRange) + margin
	return Viewport{
		MinX: -halfX, MaxX: halfX,
		MinZ: minZ, MaxZ: p.HalfLength + margin,
		Left: left, Top: top,
		Cols: cols, Rows: rows,
	}
}

// Cell returns the screen cell holding pos, or false when pos is out of view.
func (v Viewport) Cell(pos mgl32.Vec3) (int, int, bool) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0, false
	}
	fx := (pos.X() - v.MinX) / (v.MaxX - v.MinX)
	fz := (pos.Z() - v.MinZ) / (v.MaxZ - v.MinZ)
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return 0, 0, false
	}
	col := min(int(math.Floor(float64(fx*float32(v.Cols)))), v.Cols-1)
	row := min(int(math.Floor(float64(fz*float32(v.Rows)))), v.Rows-1)
	return v.Left + col, v.Top + row, true
}

// center is the world point at the middle of a cell.
func (v Viewport) center(col, row int) mgl32.Vec3 {
	x := v.MinX + (float32(col-v.Left)+0.5)/float32(v.Cols)*(v.MaxX-v.MinX)
	z := v.MinZ + (float32(row-v.Top)+0.5)/float32(v.Rows)*(v.MaxZ-v.MinZ)
	return mgl32.Vec3{x, 0, z}
}

// Draw paints the world top-down below the status lines.
func Draw(s tcell.Screen, w *world.World, status []string) {
	s.Clear()
	width, height := s.Size()
	for i, line := range status {
		if i >= height {
			break
		}
		drawText(s, 0, i, line, statusStyle)
	}

	top := len(status) + 1
	if top >= height {
		return
	}
	v := Fit(w, 0, top, width, height-top)
	platform := w.Platform()
	for row := v.Top; row < v.Top+v.Rows; row++ {
		for col := v.Left; col < v.Left+v.Cols; col++ {
			style := voidStyle
			if platform.Supports(v.center(col, row)) {
				style = platformStyle
			}
			s.SetContent(col, row, ' ', nil, style)
		}
	}

	for _, o := range w.Obstacles() {
		if col, row, ok := v.Cell(o.Position); ok {
			s.SetContent(col, row, '#', nil, obstacleStyle)
		}
	}

	if b, ok := w.Player(); ok {
		if col, row, ok := v.Cell(b.Position); ok {
			s.SetContent(col, row, '@', nil, playerStyle(b.State))
		}
	}
}

func playerStyle(state component.FallState) tcell.Style {
	style := tcell.StyleDefault.Bold(true)
	switch state {
	case component.FallStateAirborne:
		return style.Foreground(tcell.ColorWhite)
	case component.FallStateFallingOutOfBounds:
		return style.Foreground(tcell.ColorRed)
	}
	return style.Foreground(tcell.ColorYellow)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
