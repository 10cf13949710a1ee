package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/decker502/gardentodo/pkg/types"
)

// Palette 降级渲染调色板
type Palette struct {
	Ground    color.RGBA
	Cleared   color.RGBA
	Sprouting color.RGBA
	Mature    color.RGBA
	Border    color.RGBA
	Outline   color.RGBA
}

// TileColor 返回格子状态对应的降级颜色
func (p Palette) TileColor(state types.TileState) color.RGBA {
	switch state {
	case types.TileCleared:
		return p.Cleared
	case types.TileSprouting:
		return p.Sprouting
	case types.TileMature:
		return p.Mature
	default:
		return p.Ground
	}
}

// ParseHexColor 解析 "#RRGGBB" 格式的颜色（"#" 可省略）
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}

func mustParseHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
