// pkg/render/engo/palette.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"
)

// nodeStyle is the drawable and fill color for one kind of scene node
type nodeStyle struct {
	drawable common.Drawable
	color    color.Color
}

// nodeStyles maps scene node names to their primitive-shape styles. Group
// nodes (world, truck, tree) have no entry and render nothing themselves.
var nodeStyles = map[string]nodeStyle{
	"road":     {drawable: common.Rectangle{}, color: color.RGBA{R: 70, G: 70, B: 78, A: 255}},
	"shoulder": {drawable: common.Rectangle{}, color: color.RGBA{R: 230, G: 230, B: 220, A: 255}},
	"body":     {drawable: common.Rectangle{}, color: color.RGBA{R: 196, G: 60, B: 44, A: 255}},
	"cab":      {drawable: common.Rectangle{}, color: color.RGBA{R: 220, G: 120, B: 60, A: 255}},
	"wheel":    {drawable: common.Rectangle{}, color: color.RGBA{R: 30, G: 30, B: 32, A: 255}},
	"trunk":    {drawable: common.Rectangle{}, color: color.RGBA{R: 110, G: 78, B: 48, A: 255}},
	"crown":    {drawable: common.Circle{}, color: color.RGBA{R: 56, G: 130, B: 62, A: 255}},
}

// styleFor reports the style for a node name, if the node is drawable
func styleFor(name string) (nodeStyle, bool) {
	style, ok := nodeStyles[name]
	return style, ok
}
