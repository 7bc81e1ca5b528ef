package world

import (
	"mini-platformer/internal/component"

	"github.com/go-gl/mathgl/mgl32"
)

// Descriptor is the shared look of a class of entities. Descriptors are
// immutable once added.
type Descriptor struct {
	Name  string
	Size  mgl32.Vec3
	Color mgl32.Vec3
}

// Descriptors is an append-only arena; entities hold a handle instead of a
// copy.
type Descriptors struct {
	items []Descriptor
}

func (d *Descriptors) Add(desc Descriptor) component.DescriptorHandle {
	d.items = append(d.items, desc)
	return component.DescriptorHandle(len(d.items) - 1)
}

// Get returns the descriptor for h, or false for a handle the arena never issued.
func (d *Descriptors) Get(h component.DescriptorHandle) (Descriptor, bool) {
	if h < 0 || int(h) >= len(d.items) {
		return Descriptor{}, false
	}
	return d.items[h], true
}

func (d *Descriptors) Len() int {
	return len(d.items)
}

// Handles to the descriptors every world registers at creation.
type Looks struct {
	Platform component.DescriptorHandle
	Player   component.DescriptorHandle
	Obstacle component.DescriptorHandle
}

func registerLooks(d *Descriptors, platformSize mgl32.Vec3) Looks {
	return Looks{
		Platform: d.Add(Descriptor{Name: "platform", Size: platformSize, Color: mgl32.Vec3{0.3, 0.5, 0.3}}),
		Player:   d.Add(Descriptor{Name: "player", Size: mgl32.Vec3{1, 1, 1}, Color: mgl32.Vec3{0.8, 0.7, 0.6}}),
		Obstacle: d.Add(Descriptor{Name: "obstacle", Size: mgl32.Vec3{1, 1, 1}, Color: mgl32.Vec3{0.75, 0.25, 0.2}}),
	}
}
