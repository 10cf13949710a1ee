package config

import "math"

// 布局配置常量
// 本文件定义任务面板中各控件的尺寸和间距
// 面板位于田地画布右侧，PanelLayout 给出各控件的屏幕坐标

const (
	// PanelPadding 面板内边距（像素）
	PanelPadding = 16.0

	// LineHeight 标签行高（像素）
	LineHeight = 20.0

	// InputHeight 输入框高度（像素）
	InputHeight = 26.0

	// ButtonHeight 按钮高度（像素）
	ButtonHeight = 26.0

	// ButtonWidth 输入框右侧提交按钮的宽度（像素）
	ButtonWidth = 72.0

	// PlantButtonWidth 植物选择按钮的宽度（像素）
	PlantButtonWidth = 88.0

	// WidgetSpacing 控件之间的垂直间距（像素）
	WidgetSpacing = 10.0

	// ChecklistRowHeight 清单行高（像素）
	ChecklistRowHeight = 26.0

	// CheckboxSize 复选框边长（像素）
	CheckboxSize = 18.0

	// InputMaxLength 输入框最大字符数
	InputMaxLength = 40

	// HeadlineMaxLines 标题任务标签最多显示的行数，超出部分截断
	HeadlineMaxLines = 2

	// MinChecklistRows 面板至少能同时显示的清单行数
	MinChecklistRows = 3

	// ScrollButtonWidth 清单翻页按钮宽度（像素）
	ScrollButtonWidth = 56.0
)

// PanelLayout 任务面板各控件的位置（屏幕像素）
// 由配置推导：植物按钮按面板宽度换行，清单占据剩余高度
type PanelLayout struct {
	X          float64 // 控件左边缘
	Width      float64 // 控件可用宽度
	InputWidth float64 // 输入框宽度（右侧留给提交按钮）

	HeadlineY       float64
	HeadlineInputY  float64
	ToolY           float64
	PlantY          float64
	PlantButtons    [][2]float64 // 每个植物按钮的左上角
	ItemInputY      float64
	ChecklistTitleY float64
	ChecklistY      float64 // 第一行清单的 y
	ScrollY         float64 // 翻页按钮的 y

	VisibleRows int     // 同时显示的清单行数，不小于 MinChecklistRows
	Height      float64 // 窗口高度：田地画布与面板内容中较高者
}

// PanelLayout 计算任务面板布局
func (c *GardenConfig) PanelLayout() PanelLayout {
	geom := c.Geometry()
	l := PanelLayout{
		X:     float64(geom.SurfaceWidth()) + PanelPadding,
		Width: float64(c.Window.PanelWidth) - 2*PanelPadding,
	}
	l.InputWidth = l.Width - ButtonWidth - WidgetSpacing

	y := PanelPadding
	l.HeadlineY = y
	y += HeadlineMaxLines*LineHeight + WidgetSpacing

	l.HeadlineInputY = y
	y += InputHeight + 2*WidgetSpacing

	l.ToolY = y
	y += LineHeight
	l.PlantY = y
	y += LineHeight + WidgetSpacing

	bx := l.X
	for range c.Plants {
		if bx > l.X && bx+PlantButtonWidth > l.X+l.Width {
			bx = l.X
			y += ButtonHeight + WidgetSpacing
		}
		l.PlantButtons = append(l.PlantButtons, [2]float64{bx, y})
		bx += PlantButtonWidth + WidgetSpacing
	}
	y += ButtonHeight + 2*WidgetSpacing

	l.ItemInputY = y
	y += InputHeight + 2*WidgetSpacing

	l.ChecklistTitleY = y
	y += LineHeight + WidgetSpacing
	l.ChecklistY = y

	// 清单下方：间距 + 翻页按钮 + 内边距
	footer := WidgetSpacing + ButtonHeight + PanelPadding
	minHeight := l.ChecklistY + MinChecklistRows*ChecklistRowHeight + footer
	l.Height = math.Max(float64(geom.SurfaceHeight()), minHeight)
	l.ScrollY = l.Height - PanelPadding - ButtonHeight
	l.VisibleRows = int((l.ScrollY - WidgetSpacing - l.ChecklistY) / ChecklistRowHeight)

	return l
}

// WindowSize 返回窗口逻辑尺寸：田地画布加右侧面板
// 高度取田地画布与面板内容中较高者，保证清单至少显示 MinChecklistRows 行
func (c *GardenConfig) WindowSize() (width, height int) {
	geom := c.Geometry()
	return geom.SurfaceWidth() + c.Window.PanelWidth, int(math.Ceil(c.PanelLayout().Height))
}
