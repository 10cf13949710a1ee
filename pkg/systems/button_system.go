package systems

import (
	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    MouseInput
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return NewButtonSystemWithInput(em, defaultMouseInput)
}

// NewButtonSystemWithInput 创建带自定义鼠标输入的按钮交互系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, input MouseInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mouseReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !pos.Contains(float64(mouseX), float64(mouseY), button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		if mouseReleased && button.OnClick != nil {
			button.OnClick()
		}
		button.State = components.UIHovered
	}
}
