// Package utils 提供通用工具函数
package utils

import "github.com/decker502/gardentodo/pkg/config"

// PixelToTile 将画布像素坐标转换为田地网格坐标
// 参数:
//   - x, y: 相对画布左上角的像素坐标
//   - geom: 网格几何参数
//
// 返回:
//   - col: 列索引 (0 ~ Cols-1)
//   - row: 行索引 (0 ~ Rows-1)
//   - isValid: 是否落在内部网格（不含边框）
//
// 使用向下取整而不是截断：边框内的像素会得到 -1 并被拒绝
func PixelToTile(x, y int, geom config.Geometry) (col, row int, isValid bool) {
	if geom.TileSize <= 0 {
		return 0, 0, false
	}

	offset := geom.BorderPadding * geom.TileSize
	col = FloorDiv(x-offset, geom.TileSize)
	row = FloorDiv(y-offset, geom.TileSize)

	if col < 0 || col >= geom.Cols || row < 0 || row >= geom.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// TileToPixel 将网格坐标转换为格子中心的画布像素坐标
func TileToPixel(col, row int, geom config.Geometry) (x, y int) {
	return geom.TileCenter(row, col)
}

// FloorDiv 向负无穷取整的整数除法（b > 0）
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}
