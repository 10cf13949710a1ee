package entities

import (
	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/ecs"
)

// NewButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮位置（屏幕坐标）
//   - width: 按钮宽度，高度固定为 config.ButtonHeight
//   - text: 按钮文字
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(em *ecs.EntityManager, x, y, width float64, text string, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:    text,
		Width:   width,
		Height:  config.ButtonHeight,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})

	return entity
}

// NewTextInput 创建文本输入框实体
// 返回的组件同时实现 game.TextInput，可直接放入 HeadlineSubmitted / ItemAdded 事件
func NewTextInput(em *ecs.EntityManager, x, y, width float64, placeholder string) (ecs.EntityID, *components.TextInputComponent) {
	entity := em.CreateEntity()

	input := &components.TextInputComponent{
		Width:       width,
		Height:      config.InputHeight,
		MaxLength:   config.InputMaxLength,
		Placeholder: placeholder,
	}
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, input)

	return entity, input
}

// NewLabel 创建静态文字实体
func NewLabel(em *ecs.EntityManager, x, y float64, text string) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.LabelComponent{Text: text})
	return entity
}

// NewDynamicLabel 创建每帧从 source 读取内容的文字实体
func NewDynamicLabel(em *ecs.EntityManager, x, y float64, source func() string) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.LabelComponent{Source: source})
	return entity
}

// NewClampedLabel 创建最多显示 maxLines 行的动态文字实体
// 下方控件按 maxLines 行留出空间，较长的内容截断而不会压住它们
func NewClampedLabel(em *ecs.EntityManager, x, y float64, maxLines int, source func() string) ecs.EntityID {
	entity := NewDynamicLabel(em, x, y, source)
	label, _ := ecs.GetComponent[*components.LabelComponent](em, entity)
	label.MaxLines = maxLines
	return entity
}
