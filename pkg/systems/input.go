package systems

import (
	"github.com/decker502/gardentodo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type MouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
}

// KeyboardInput 键盘输入接口
type KeyboardInput interface {
	AppendInputChars(runes []rune) []rune
	IsKeyJustPressed(key ebiten.Key) bool
	KeyPressDuration(key ebiten.Key) int
}

// ebitenMouseInput Ebitengine 默认实现（同时支持触摸）
type ebitenMouseInput struct{}

func (e *ebitenMouseInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	// 使用支持触摸的释放检测
	released, _, _ := utils.IsPointerJustReleased()
	return released
}

// ebitenKeyboardInput Ebitengine 默认实现
type ebitenKeyboardInput struct{}

func (e *ebitenKeyboardInput) AppendInputChars(runes []rune) []rune {
	return ebiten.AppendInputChars(runes)
}

func (e *ebitenKeyboardInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (e *ebitenKeyboardInput) KeyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

// 默认输入实例
var (
	defaultMouseInput    MouseInput    = &ebitenMouseInput{}
	defaultKeyboardInput KeyboardInput = &ebitenKeyboardInput{}
)
