// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// TileState 定义田地格子的状态码
// 状态只能沿 Ground -> Cleared -> Sprouting -> Mature 单向推进
type TileState int

const (
	// TileGround 未开垦的草地（初始状态）
	TileGround TileState = iota
	// TileCleared 已铲平的空地
	TileCleared
	// TileSprouting 已播种、正在发芽
	TileSprouting
	// TileMature 成熟植物（终态）
	TileMature
)

// String 返回格子状态的字符串表示
func (s TileState) String() string {
	switch s {
	case TileGround:
		return "Ground"
	case TileCleared:
		return "Cleared"
	case TileSprouting:
		return "Sprouting"
	case TileMature:
		return "Mature"
	default:
		return "Unknown"
	}
}

// IsValid 检查状态码是否在 0-3 范围内
func (s TileState) IsValid() bool {
	return s >= TileGround && s <= TileMature
}

// IsTerminal 成熟状态不能再被任何工具推进
func (s TileState) IsTerminal() bool {
	return s == TileMature
}

// RequiredTool 返回推进到下一状态所需的工具
// 终态或非法状态返回 ToolNone
func (s TileState) RequiredTool() ToolMode {
	switch s {
	case TileGround:
		return ToolShovel
	case TileCleared:
		return ToolSeeds
	case TileSprouting:
		return ToolWater
	default:
		return ToolNone
	}
}

// Next 返回在给定工具下的下一个状态
// 工具与状态不匹配时返回原状态和 false
func (s TileState) Next(tool ToolMode) (TileState, bool) {
	required := s.RequiredTool()
	if required == ToolNone || tool != required {
		return s, false
	}
	return s + 1, true
}
