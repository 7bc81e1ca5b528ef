package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world-space position.
type TransformData struct {
	Position mgl32.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is a linear velocity in units per second.
type VelocityData struct {
	Linear mgl32.Vec3
}

var Velocity = donburi.NewComponentType[VelocityData]()
