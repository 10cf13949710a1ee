package systems

import (
	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// EventDispatcher 领域事件分发接口（由 game.Dispatcher 实现）
type EventDispatcher interface {
	Dispatch(ev game.Event) bool
}

// FieldInputSystem 田地点击系统
// 把落在田地画布上的指针释放事件转换为 TileClicked（画布局部像素坐标）
//
// 边框内的点击也会转发，由分发器的坐标映射拒绝
type FieldInputSystem struct {
	dispatcher EventDispatcher
	geom       config.Geometry
	originX    int // 画布左上角在屏幕上的位置
	originY    int
	mouseInput MouseInput
}

// NewFieldInputSystem 创建田地点击系统
func NewFieldInputSystem(d EventDispatcher, geom config.Geometry, originX, originY int) *FieldInputSystem {
	return NewFieldInputSystemWithInput(d, geom, originX, originY, defaultMouseInput)
}

// NewFieldInputSystemWithInput 创建带自定义鼠标输入的田地点击系统（用于测试）
func NewFieldInputSystemWithInput(d EventDispatcher, geom config.Geometry, originX, originY int, input MouseInput) *FieldInputSystem {
	return &FieldInputSystem{
		dispatcher: d,
		geom:       geom,
		originX:    originX,
		originY:    originY,
		mouseInput: input,
	}
}

// Update 检测点击并分发
func (s *FieldInputSystem) Update(deltaTime float64) {
	if !s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}

	x, y, ok := s.toSurface(s.mouseInput.CursorPosition())
	if !ok {
		return
	}
	s.dispatcher.Dispatch(game.TileClicked{X: x, Y: y})
}

// IsHovering 指针当前是否位于田地画布上
func (s *FieldInputSystem) IsHovering() bool {
	_, _, ok := s.toSurface(s.mouseInput.CursorPosition())
	return ok
}

// toSurface 屏幕坐标 -> 画布坐标，画布外返回 false
func (s *FieldInputSystem) toSurface(screenX, screenY int) (int, int, bool) {
	x := screenX - s.originX
	y := screenY - s.originY
	if x < 0 || y < 0 || x >= s.geom.SurfaceWidth() || y >= s.geom.SurfaceHeight() {
		return 0, 0, false
	}
	return x, y, true
}
