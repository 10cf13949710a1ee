package game

import "github.com/decker502/gardentodo/pkg/types"

// Field 田地格子状态矩阵
// 尺寸在创建后固定，只有 Advance 会修改格子状态
type Field struct {
	rows  int
	cols  int
	tiles []types.TileState // 行优先存储: tiles[row*cols+col]
}

// NewField 创建全部为 TileGround 的田地
func NewField(rows, cols int) *Field {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Field{
		rows:  rows,
		cols:  cols,
		tiles: make([]types.TileState, rows*cols),
	}
}

// Rows 返回行数
func (f *Field) Rows() int { return f.rows }

// Cols 返回列数
func (f *Field) Cols() int { return f.cols }

// InBounds 检查坐标是否在田地范围内
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// At 返回格子状态，越界时返回 TileGround 和 false
func (f *Field) At(row, col int) (types.TileState, bool) {
	if !f.InBounds(row, col) {
		return types.TileGround, false
	}
	return f.tiles[row*f.cols+col], true
}

// Advance 使用当前工具推进格子状态
// 参数:
//   - row, col: 格子坐标
//   - tool: 当前激活的工具
//
// 返回:
//   - bool: 格子状态是否发生变化
//
// 越界、工具与状态不匹配、或格子已成熟时静默忽略
func (f *Field) Advance(row, col int, tool types.ToolMode) bool {
	if !f.InBounds(row, col) {
		return false
	}

	idx := row*f.cols + col
	next, ok := f.tiles[idx].Next(tool)
	if !ok {
		return false
	}

	f.tiles[idx] = next
	return true
}

// Snapshot 返回按行组织的状态副本
func (f *Field) Snapshot() [][]types.TileState {
	out := make([][]types.TileState, f.rows)
	for r := 0; r < f.rows; r++ {
		out[r] = make([]types.TileState, f.cols)
		copy(out[r], f.tiles[r*f.cols:(r+1)*f.cols])
	}
	return out
}

// CountByState 统计各状态的格子数量
func (f *Field) CountByState() map[types.TileState]int {
	counts := make(map[types.TileState]int, 4)
	for _, s := range f.tiles {
		counts[s]++
	}
	return counts
}
