package components

// TextInputComponent 文本输入框组件
// 用于输入标题任务和新的清单条目
//
// 实现 game.TextInput：提交时由控制器读取 Value，接受后调用 SetValue("") 清空
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 输入框尺寸
	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// OnSubmit 按下 Enter 时调用
	OnSubmit func()
}

// Value 返回当前文本
func (c *TextInputComponent) Value() string {
	return c.Text
}

// SetValue 替换当前文本
func (c *TextInputComponent) SetValue(s string) {
	c.Text = s
}
