package config

// Geometry 田地网格几何参数
// 画布尺寸为 (Cols+2*BorderPadding)*TileSize x (Rows+2*BorderPadding)*TileSize
type Geometry struct {
	TileSize      int
	Rows          int
	Cols          int
	BorderPadding int
}

// SurfaceCols 画布横向格数（含边框）
func (g Geometry) SurfaceCols() int {
	return g.Cols + 2*g.BorderPadding
}

// SurfaceRows 画布纵向格数（含边框）
func (g Geometry) SurfaceRows() int {
	return g.Rows + 2*g.BorderPadding
}

// SurfaceWidth 画布宽度（像素）
func (g Geometry) SurfaceWidth() int {
	return g.SurfaceCols() * g.TileSize
}

// SurfaceHeight 画布高度（像素）
func (g Geometry) SurfaceHeight() int {
	return g.SurfaceRows() * g.TileSize
}

// TileOrigin 返回内部格子 (row, col) 左上角的画布像素坐标
func (g Geometry) TileOrigin(row, col int) (x, y int) {
	x = (col + g.BorderPadding) * g.TileSize
	y = (row + g.BorderPadding) * g.TileSize
	return x, y
}

// TileCenter 返回内部格子中心的画布像素坐标
func (g Geometry) TileCenter(row, col int) (x, y int) {
	x, y = g.TileOrigin(row, col)
	return x + g.TileSize/2, y + g.TileSize/2
}

// IsBorderCell 判断画布格 (sr, sc) 是否属于边框
func (g Geometry) IsBorderCell(sr, sc int) bool {
	return sr < g.BorderPadding || sr >= g.Rows+g.BorderPadding ||
		sc < g.BorderPadding || sc >= g.Cols+g.BorderPadding
}
