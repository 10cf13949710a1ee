package game

import "github.com/decker502/gardentodo/pkg/types"

// Event 领域事件
// 所有事件都在游戏主循环中分发，处理过程不会被打断
type Event interface {
	eventName() string
}

// ImageReady 图片资源加载结束（Err 非 nil 表示永久失败）
type ImageReady struct {
	ID  types.ResourceID
	Err error
}

// TileClicked 田地画布上的点击，坐标为画布像素
type TileClicked struct {
	X, Y int
}

// ItemToggled 清单复选框被切换
type ItemToggled struct {
	Index int
}

// HeadlineSubmitted 提交标题任务
type HeadlineSubmitted struct {
	Input TextInput
}

// ItemAdded 提交新的清单条目
type ItemAdded struct {
	Input TextInput
}

// PlantSelected 选择植物
type PlantSelected struct {
	Label string
}

func (ImageReady) eventName() string        { return "ImageReady" }
func (TileClicked) eventName() string       { return "TileClicked" }
func (ItemToggled) eventName() string       { return "ItemToggled" }
func (HeadlineSubmitted) eventName() string { return "HeadlineSubmitted" }
func (ItemAdded) eventName() string         { return "ItemAdded" }
func (PlantSelected) eventName() string     { return "PlantSelected" }
