package systems

import (
	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// CheckboxSystem 复选框交互系统
// 负责处理清单复选框的点击交互
//
// 职责：
//   - 检测指针是否在复选框区域内
//   - 指针释放时切换 CheckboxComponent.IsChecked 状态
//   - 调用 OnToggle 回调
//
// 回调可能触发清单重建（销毁并重建复选框实体），
// 因此每帧最多处理一次切换
type CheckboxSystem struct {
	entityManager *ecs.EntityManager
	mouseInput    MouseInput
}

// NewCheckboxSystem 创建复选框交互系统
func NewCheckboxSystem(em *ecs.EntityManager) *CheckboxSystem {
	return NewCheckboxSystemWithInput(em, defaultMouseInput)
}

// NewCheckboxSystemWithInput 创建带自定义鼠标输入的复选框交互系统（用于测试）
func NewCheckboxSystemWithInput(em *ecs.EntityManager, input MouseInput) *CheckboxSystem {
	return &CheckboxSystem{
		entityManager: em,
		mouseInput:    input,
	}
}

// Update 更新复选框交互状态
func (s *CheckboxSystem) Update(deltaTime float64) {
	mouseX, mouseY := s.mouseInput.CursorPosition()
	mouseJustReleased := s.mouseInput.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	entities := ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager)

	var toggled *components.CheckboxComponent
	for _, entityID := range entities {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		checkbox.IsHovered = pos.Contains(float64(mouseX), float64(mouseY), checkbox.Size, checkbox.Size)
		if mouseJustReleased && checkbox.IsHovered && toggled == nil {
			toggled = checkbox
		}
	}

	if toggled == nil {
		return
	}

	toggled.IsChecked = !toggled.IsChecked
	if toggled.OnToggle != nil {
		toggled.OnToggle(toggled.IsChecked)
	}
}
