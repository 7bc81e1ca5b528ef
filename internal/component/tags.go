package component

import "github.com/yohamta/donburi"

var (
	// PlayerTag marks the tracked, controllable body.
	PlayerTag = donburi.NewTag()
	// ObstacleTag marks spawner-created moving obstacles.
	ObstacleTag = donburi.NewTag()
)
