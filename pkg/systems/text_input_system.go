package systems

import (
	"log"

	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理输入框的焦点切换、键盘输入和光标闪烁
//
// 职责：
//   - 指针在输入框内释放时获得焦点，其余输入框失去焦点
//   - 获得焦点的输入框接收字符输入和退格
//   - 按下 Enter 时调用 OnSubmit（是否接受由控制器决定）
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    MouseInput
	keyboard      KeyboardInput
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return NewTextInputSystemWithInput(em, defaultMouseInput, defaultKeyboardInput)
}

// NewTextInputSystemWithInput 创建带自定义输入的文本输入系统（用于测试）
func NewTextInputSystemWithInput(em *ecs.EntityManager, mouse MouseInput, keyboard KeyboardInput) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
		mouseInput:    mouse,
		keyboard:      keyboard,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)

	if s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.updateFocus(entities)
	}

	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.handleKeyboardInput(input)
	}
}

// updateFocus 指针释放位置所在的输入框获得焦点
func (s *TextInputSystem) updateFocus(entities []ecs.EntityID) {
	mouseX, mouseY := s.mouseInput.CursorPosition()

	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		focused := pos.Contains(float64(mouseX), float64(mouseY), input.Width, input.Height)
		if focused && !input.IsFocused {
			input.CursorBlinkTimer = 0
			input.CursorVisible = true
		}
		input.IsFocused = focused
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	// 1. 文本字符输入
	if runes := s.keyboard.AppendInputChars(nil); len(runes) > 0 {
		s.appendText(input, runes)
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	// 2. 退格键：第1帧立即响应，按住 30 帧后每隔3帧响应一次
	d := s.keyboard.KeyPressDuration(ebiten.KeyBackspace)
	if d == 1 || (d >= 30 && d%3 == 0) {
		s.deleteLastChar(input)
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}

	// 3. 回车提交
	if s.keyboard.IsKeyJustPressed(ebiten.KeyEnter) || s.keyboard.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		if input.OnSubmit != nil {
			input.OnSubmit()
		}
	}
}

// appendText 在末尾追加字符（忽略控制字符）
func (s *TextInputSystem) appendText(input *components.TextInputComponent, runes []rune) {
	current := []rune(input.Text)
	for _, r := range runes {
		if r < ' ' || r == 0x7f {
			continue
		}
		if input.MaxLength > 0 && len(current) >= input.MaxLength {
			log.Printf("[TextInputSystem] Max length reached (%d chars)", input.MaxLength)
			break
		}
		current = append(current, r)
	}
	input.Text = string(current)
}

// deleteLastChar 删除最后一个字符
func (s *TextInputSystem) deleteLastChar(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if len(runes) == 0 {
		return
	}
	input.Text = string(runes[:len(runes)-1])
}
