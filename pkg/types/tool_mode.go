package types

// ToolMode 当前激活的工具类型
// 由已完成的清单条目数量推导得出，不单独存储
type ToolMode int

const (
	// ToolNone 无工具（没有完成任何条目）
	ToolNone ToolMode = iota
	// ToolShovel 铲子：开垦草地
	ToolShovel
	// ToolSeeds 种子：在空地上播种
	ToolSeeds
	// ToolWater 水壶：浇灌发芽的植物
	ToolWater
)

// ToolCycle 工具轮换顺序
// 完成第 n 个条目时激活 ToolCycle[(n-1) % 3]
var ToolCycle = [...]ToolMode{ToolShovel, ToolSeeds, ToolWater}

// String 返回工具类型的字符串表示
func (m ToolMode) String() string {
	switch m {
	case ToolShovel:
		return "Shovel"
	case ToolSeeds:
		return "Seeds"
	case ToolWater:
		return "Water"
	default:
		return "None"
	}
}

// CursorName 返回工具对应的光标标记名
func (m ToolMode) CursorName() string {
	switch m {
	case ToolShovel:
		return "cursor-shovel"
	case ToolSeeds:
		return "cursor-seeds"
	case ToolWater:
		return "cursor-water"
	default:
		return "cursor-default"
	}
}

// DeriveToolMode 根据已完成条目数推导工具
//
// 参数:
//   - doneCount: 已勾选的条目数量
//
// 返回:
//   - ToolMode: 0 个返回 ToolNone，否则按 ToolCycle 循环
func DeriveToolMode(doneCount int) ToolMode {
	if doneCount <= 0 {
		return ToolNone
	}
	return ToolCycle[(doneCount-1)%len(ToolCycle)]
}
