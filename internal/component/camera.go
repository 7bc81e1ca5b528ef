package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// CameraData is the follow camera's pose. Orientation and View are derived
// from Position and the tracked target on every update.
type CameraData struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	View        mgl32.Mat4
}

var Camera = donburi.NewComponentType[CameraData]()
