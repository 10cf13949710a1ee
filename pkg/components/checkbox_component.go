package components

// CheckboxComponent 复选框组件
// 清单每一行都有一个复选框，勾选状态与条目的 Done 一致
type CheckboxComponent struct {
	// 当前状态
	IsChecked bool
	IsHovered bool

	// 边长（像素）
	Size float64

	// 标签文字（如 "1. 除草"），绘制在复选框右侧
	Label string

	// 回调函数
	OnToggle func(isChecked bool) // 状态切换时的回调
}

// ChecklistRowComponent 标记清单行实体
// 清单重建时按此组件找到并销毁旧行
type ChecklistRowComponent struct {
	Index int // 条目下标（渲染时绑定）
}
