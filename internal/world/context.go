package world

import (
	"mini-platformer/internal/physics"
	"mini-platformer/internal/spawner"
)

// Context is the mutable state shared by the per-frame stages that does not
// belong to any one entity.
type Context struct {
	Platform    physics.Platform
	SpawnTimer  spawner.Timer
	Rand        spawner.RandSource
	Descriptors *Descriptors
	Looks       Looks
}
