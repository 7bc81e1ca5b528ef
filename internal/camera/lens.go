package camera

import "github.com/go-gl/mathgl/mgl32"

// Lens holds projection settings. The simulation never touches it; renderers
// combine it with the follow camera's view matrix.
type Lens struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewLens(width, height int) *Lens {
	l := &Lens{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  500.0,
	}
	l.Resize(width, height)
	return l
}

// Resize updates the aspect ratio, ignoring minimised (zero-sized) windows.
func (l *Lens) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	l.AspectRatio = float32(width) / float32(height)
}

func (l *Lens) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(l.FOV), l.AspectRatio, l.NearPlane, l.FarPlane)
}

// ViewProjection is the combined clip transform for a view matrix.
func (l *Lens) ViewProjection(view mgl32.Mat4) mgl32.Mat4 {
	return l.Projection().Mul4(view)
}
