package systems

import (
	"image/color"

	"github.com/decker502/gardentodo/pkg/game"
	"github.com/decker502/gardentodo/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// mockMouseInput 用于测试的 mock 鼠标输入
type mockMouseInput struct {
	mouseX       int
	mouseY       int
	justReleased bool
}

func (m *mockMouseInput) CursorPosition() (int, int) {
	return m.mouseX, m.mouseY
}

func (m *mockMouseInput) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return m.justReleased
}

// mockKeyboardInput 用于测试的 mock 键盘输入
type mockKeyboardInput struct {
	chars       []rune
	justPressed map[ebiten.Key]bool
	durations   map[ebiten.Key]int
}

func (m *mockKeyboardInput) AppendInputChars(runes []rune) []rune {
	return append(runes, m.chars...)
}

func (m *mockKeyboardInput) IsKeyJustPressed(key ebiten.Key) bool {
	return m.justPressed[key]
}

func (m *mockKeyboardInput) KeyPressDuration(key ebiten.Key) int {
	return m.durations[key]
}

// recordingDispatcher 记录收到的事件
type recordingDispatcher struct {
	events []game.Event
}

func (d *recordingDispatcher) Dispatch(ev game.Event) bool {
	d.events = append(d.events, ev)
	return true
}

// drawOp 画布上的一次绘制操作
type drawOp struct {
	kind  string // clear / fill / stroke / texture
	x, y  float32
	w, h  float32
	color color.Color
	id    types.ResourceID
}

// recordingSurface 记录绘制操作的画布
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, drawOp{kind: "clear"})
}

func (s *recordingSurface) FillRect(x, y, w, h float32, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: "fill", x: x, y: y, w: w, h: h, color: clr})
}

func (s *recordingSurface) StrokeRect(x, y, w, h, strokeWidth float32, clr color.Color) {
	s.ops = append(s.ops, drawOp{kind: "stroke", x: x, y: y, w: w, h: h, color: clr})
}

func (s *recordingSurface) DrawTexture(id types.ResourceID, x, y, size float32) {
	s.ops = append(s.ops, drawOp{kind: "texture", x: x, y: y, w: size, h: size, id: id})
}

// opsOfKind 返回指定类型的操作
func (s *recordingSurface) opsOfKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// opsAt 返回左上角位于 (x, y) 的操作
func (s *recordingSurface) opsAt(x, y float32) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.kind != "clear" && op.x == x && op.y == y {
			out = append(out, op)
		}
	}
	return out
}

// stubImages 固定可用集合的图片源
type stubImages map[types.ResourceID]bool

func (s stubImages) Usable(id types.ResourceID) bool {
	return s[id]
}
