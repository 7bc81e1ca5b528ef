package assets

import "embed"

// Shaders holds the GLSL sources under shaders/<renderable>/.
//
//go:embed shaders
var Shaders embed.FS
