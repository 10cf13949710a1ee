package systems

import (
	"image/color"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/types"
)

// fallbackOutlineWidth 降级渲染时格子描边宽度（像素）
const fallbackOutlineWidth = 1

// Surface 田地画布
// 坐标均为画布像素，原点为左上角
type Surface interface {
	// Clear 清空整个画布
	Clear()
	// FillRect 用纯色填充矩形
	FillRect(x, y, w, h float32, clr color.Color)
	// StrokeRect 描绘矩形边框
	StrokeRect(x, y, w, h, strokeWidth float32, clr color.Color)
	// DrawTexture 把资源图片缩放绘制到 size x size 的格子中
	DrawTexture(id types.ResourceID, x, y, size float32)
}

// ImageSource 查询图片资源当前是否可用
type ImageSource interface {
	Usable(id types.ResourceID) bool
}

// TileGrid 只读的格子状态矩阵
type TileGrid interface {
	Rows() int
	Cols() int
	At(row, col int) (types.TileState, bool)
}

// FieldRenderSystem 田地渲染系统
//
// 职责：
//   - 每次调用都清空并完整重绘画布
//   - 内部格子按状态选择纹理，纹理不可用时使用纯色填充加黑色描边
//   - 四周绘制一格宽的边框，边框纹理不可用时使用纯色
//
// 纹理可用性在每次绘制时重新检查（图片可能仍在加载）
type FieldRenderSystem struct {
	geom    config.Geometry
	palette config.Palette
	images  ImageSource
}

// NewFieldRenderSystem 创建田地渲染系统
func NewFieldRenderSystem(geom config.Geometry, palette config.Palette, images ImageSource) *FieldRenderSystem {
	return &FieldRenderSystem{
		geom:    geom,
		palette: palette,
		images:  images,
	}
}

// Render 重绘整个田地
func (s *FieldRenderSystem) Render(grid TileGrid, surface Surface) {
	surface.Clear()
	s.drawTiles(grid, surface)
	s.drawBorder(surface)
}

// drawTiles 绘制内部格子
func (s *FieldRenderSystem) drawTiles(grid TileGrid, surface Surface) {
	size := float32(s.geom.TileSize)

	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			state, _ := grid.At(row, col)
			px, py := s.geom.TileOrigin(row, col)
			x, y := float32(px), float32(py)

			id := types.TileResource(state)
			if s.usable(id) {
				surface.DrawTexture(id, x, y, size)
				continue
			}

			surface.FillRect(x, y, size, size, s.palette.TileColor(state))
			surface.StrokeRect(x, y, size, size, fallbackOutlineWidth, s.palette.Outline)
		}
	}
}

// drawBorder 绘制四周边框，每个边框格只绘制一次
func (s *FieldRenderSystem) drawBorder(surface Surface) {
	size := float32(s.geom.TileSize)
	useTexture := s.usable(types.ResourceBorder)

	for sr := 0; sr < s.geom.SurfaceRows(); sr++ {
		for sc := 0; sc < s.geom.SurfaceCols(); sc++ {
			if !s.geom.IsBorderCell(sr, sc) {
				continue
			}
			x := float32(sc) * size
			y := float32(sr) * size
			if useTexture {
				surface.DrawTexture(types.ResourceBorder, x, y, size)
			} else {
				surface.FillRect(x, y, size, size, s.palette.Border)
			}
		}
	}
}

func (s *FieldRenderSystem) usable(id types.ResourceID) bool {
	return s.images != nil && s.images.Usable(id)
}
