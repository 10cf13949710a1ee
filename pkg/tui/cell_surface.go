package tui

import (
	"image/color"
	"strings"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/types"
)

// cellSurface 以画布格为单位的终端画布
// 每个画布格在终端中占两个字符宽，只记录背景色
type cellSurface struct {
	geom  config.Geometry
	cells [][]color.Color
}

func newCellSurface(geom config.Geometry) *cellSurface {
	s := &cellSurface{geom: geom}
	s.cells = make([][]color.Color, geom.SurfaceRows())
	for i := range s.cells {
		s.cells[i] = make([]color.Color, geom.SurfaceCols())
	}
	return s
}

func (s *cellSurface) Clear() {
	for _, row := range s.cells {
		for i := range row {
			row[i] = nil
		}
	}
}

// FillRect 覆盖矩形左上角所在到右下角之前的所有画布格
func (s *cellSurface) FillRect(x, y, w, h float32, clr color.Color) {
	size := float32(s.geom.TileSize)
	c0, r0 := int(x/size), int(y/size)
	c1, r1 := int((x+w-1)/size), int((y+h-1)/size)
	for r := max(r0, 0); r <= r1 && r < len(s.cells); r++ {
		for c := max(c0, 0); c <= c1 && c < len(s.cells[r]); c++ {
			s.cells[r][c] = clr
		}
	}
}

// StrokeRect 终端字符格无法描边，忽略
func (s *cellSurface) StrokeRect(x, y, w, h, strokeWidth float32, clr color.Color) {}

// DrawTexture 终端没有纹理，noTextures 保证不会被调用
func (s *cellSurface) DrawTexture(id types.ResourceID, x, y, size float32) {}

// At 返回画布格 (sr, sc) 的颜色，未绘制时为 nil
func (s *cellSurface) At(sr, sc int) color.Color {
	if sr < 0 || sr >= len(s.cells) || sc < 0 || sc >= len(s.cells[sr]) {
		return nil
	}
	return s.cells[sr][sc]
}

// View 渲染为终端字符串，cursorRow/cursorCol 为内部格坐标，负数表示不显示光标
func (s *cellSurface) View(cursorRow, cursorCol int) string {
	pad := s.geom.BorderPadding
	var b strings.Builder
	for sr, row := range s.cells {
		for sc, clr := range row {
			cell := "  "
			if sr == cursorRow+pad && sc == cursorCol+pad && cursorRow >= 0 && cursorCol >= 0 {
				cell = "[]"
			}
			if clr == nil {
				b.WriteString(cell)
				continue
			}
			b.WriteString(cellStyle(clr).Render(cell))
		}
		if sr < len(s.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// noTextures 终端宿主的图片源：所有纹理都不可用，田地始终走降级渲染
type noTextures struct{}

func (noTextures) Usable(types.ResourceID) bool { return false }
