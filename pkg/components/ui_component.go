package components

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being clicked.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// PositionComponent 控件左上角在屏幕上的位置（像素）
type PositionComponent struct {
	X, Y float64
}

// Contains 检查点 (px, py) 是否落在以该位置为左上角、尺寸为 w x h 的矩形内
func (p *PositionComponent) Contains(px, py, w, h float64) bool {
	return px >= p.X && px <= p.X+w && py >= p.Y && py <= p.Y+h
}

// LabelComponent 静态或动态文字
// Source 非空时每帧调用以获取最新文字（如当前工具、标题任务）
// MaxLines 大于 0 时换行后最多显示这么多行，超出部分以省略号截断
type LabelComponent struct {
	Text     string
	Source   func() string
	Color    [4]uint8 // R, G, B, A
	MaxLines int
}

// CurrentText 返回应显示的文字
func (l *LabelComponent) CurrentText() string {
	if l.Source != nil {
		return l.Source()
	}
	return l.Text
}
