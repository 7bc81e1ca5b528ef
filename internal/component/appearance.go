package component

import "github.com/yohamta/donburi"

// DescriptorHandle indexes a shared, immutable visual descriptor.
type DescriptorHandle int

// AppearanceData points an entity at its shared descriptor.
type AppearanceData struct {
	Handle DescriptorHandle
}

var Appearance = donburi.NewComponentType[AppearanceData]()
