package systems

import (
	"fmt"
	"log"

	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/decker502/gardentodo/pkg/game"
)

// ChecklistLayout 清单在面板中的布局参数
type ChecklistLayout struct {
	X, Y         float64 // 第一行左上角
	RowHeight    float64
	CheckboxSize float64
	MaxRows      int // 同时显示的行数，0 表示不限
}

// ChecklistViewSystem 清单视图系统
//
// 每次清单变化都整体重建：销毁所有行实体，按插入顺序为可见窗口内的
// 每个条目重新创建一行（复选框 + 编号标签），复选框回调绑定条目下标。
// 条目多于 MaxRows 时只显示 [offset, offset+MaxRows)，追加条目后自动滚到末尾
type ChecklistViewSystem struct {
	entityManager *ecs.EntityManager
	dispatcher    EventDispatcher
	layout        ChecklistLayout

	items  []game.ChecklistItem
	offset int
}

// NewChecklistViewSystem 创建清单视图系统
func NewChecklistViewSystem(em *ecs.EntityManager, d EventDispatcher, layout ChecklistLayout) *ChecklistViewSystem {
	return &ChecklistViewSystem{
		entityManager: em,
		dispatcher:    d,
		layout:        layout,
	}
}

// Rebuild 按条目列表重建行
// 可直接注册为 game.ChecklistListener
func (s *ChecklistViewSystem) Rebuild(items []game.ChecklistItem) {
	grew := len(items) > len(s.items)
	s.items = items
	if grew {
		s.offset = len(items) - s.visibleRows()
	}
	s.clampOffset()
	s.layoutRows()
	log.Printf("[ChecklistViewSystem] Rebuilt %d rows (showing %d-%d)", len(items), s.offset+1, s.offset+s.visibleRows())
}

// ScrollBy 把可见窗口移动 delta 行，返回窗口是否移动
func (s *ChecklistViewSystem) ScrollBy(delta int) bool {
	prev := s.offset
	s.offset += delta
	s.clampOffset()
	if s.offset == prev {
		return false
	}
	s.layoutRows()
	return true
}

// VisibleRange 返回当前显示的条目下标区间 [first, end)
func (s *ChecklistViewSystem) VisibleRange() (first, end int) {
	return s.offset, s.offset + s.visibleRows()
}

// ItemCount 返回清单条目总数
func (s *ChecklistViewSystem) ItemCount() int { return len(s.items) }

func (s *ChecklistViewSystem) visibleRows() int {
	if s.layout.MaxRows <= 0 || s.layout.MaxRows > len(s.items) {
		return len(s.items)
	}
	return s.layout.MaxRows
}

func (s *ChecklistViewSystem) clampOffset() {
	if maxOffset := len(s.items) - s.visibleRows(); s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// layoutRows 销毁旧行，为可见窗口内的条目创建新行
func (s *ChecklistViewSystem) layoutRows() {
	for _, id := range ecs.GetEntitiesWith1[*components.ChecklistRowComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	// 立即清理，避免同一帧内新旧行同时存在
	s.entityManager.RemoveMarkedEntities()

	first, end := s.VisibleRange()
	for i := first; i < end; i++ {
		s.createRow(i, i-first)
	}
}

// createRow 为条目 index 在第 slot 个可见位置创建一行
func (s *ChecklistViewSystem) createRow(index, slot int) ecs.EntityID {
	item := s.items[index]
	id := s.entityManager.CreateEntity()

	ecs.AddComponent(s.entityManager, id, &components.ChecklistRowComponent{Index: index})
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{
		X: s.layout.X,
		Y: s.layout.Y + float64(slot)*s.layout.RowHeight,
	})
	ecs.AddComponent(s.entityManager, id, &components.CheckboxComponent{
		IsChecked: item.Done,
		Size:      s.layout.CheckboxSize,
		Label:     RowLabel(index, item.Label),
		OnToggle: func(checked bool) {
			// 切换不触发重建，翻页时按缓存状态重建行
			if s.dispatcher.Dispatch(game.ItemToggled{Index: index}) {
				s.items[index].Done = checked
			}
		},
	})

	return id
}

// RowLabel 返回清单行的编号标签，编号从 1 开始
func RowLabel(index int, label string) string {
	return fmt.Sprintf("%d. %s", index+1, label)
}
