package scenes

import (
	"fmt"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/entities"
	"github.com/decker502/gardentodo/pkg/game"
	"github.com/decker502/gardentodo/pkg/systems"
)

// buildPanel 创建任务面板的全部控件
//
// 从上到下：标题任务、标题输入框、当前工具、所选植物、植物按钮、
// 清单输入框、清单标题、清单行和翻页按钮。坐标来自 config.PanelLayout
func (s *GardenScene) buildPanel() {
	em := s.entityManager
	tasks := s.dispatcher.Tasks()
	l := s.cfg.PanelLayout()

	// 标题任务，最多两行
	entities.NewClampedLabel(em, l.X, l.HeadlineY, config.HeadlineMaxLines, func() string {
		if tasks.Headline() == "" {
			return "Main task: (none)"
		}
		return "Main task: " + tasks.Headline()
	})

	_, headlineInput := entities.NewTextInput(em, l.X, l.HeadlineInputY, l.InputWidth, "Set the main task")
	submitHeadline := func() {
		s.dispatcher.Dispatch(game.HeadlineSubmitted{Input: headlineInput})
	}
	headlineInput.OnSubmit = submitHeadline
	entities.NewButton(em, l.X+l.InputWidth+config.WidgetSpacing, l.HeadlineInputY, config.ButtonWidth, "Set", submitHeadline)

	// 当前工具与所选植物
	entities.NewClampedLabel(em, l.X, l.ToolY, 1, func() string {
		return "Tool: " + tasks.Mode().String()
	})
	entities.NewClampedLabel(em, l.X, l.PlantY, 1, func() string {
		if tasks.SelectedPlant() == "" {
			return "Plant: (none)"
		}
		return "Plant: " + tasks.SelectedPlant()
	})

	for i, plant := range s.cfg.Plants {
		label := plant
		pos := l.PlantButtons[i]
		entities.NewButton(em, pos[0], pos[1], config.PlantButtonWidth, label, func() {
			s.dispatcher.Dispatch(game.PlantSelected{Label: label})
		})
	}

	// 清单输入
	_, itemInput := entities.NewTextInput(em, l.X, l.ItemInputY, l.InputWidth, "Add a checklist item")
	addItem := func() {
		s.dispatcher.Dispatch(game.ItemAdded{Input: itemInput})
	}
	itemInput.OnSubmit = addItem
	entities.NewButton(em, l.X+l.InputWidth+config.WidgetSpacing, l.ItemInputY, config.ButtonWidth, "Add", addItem)

	entities.NewClampedLabel(em, l.X, l.ChecklistTitleY, 1, func() string {
		items := tasks.Items()
		done := 0
		for _, item := range items {
			if item.Done {
				done++
			}
		}
		return fmt.Sprintf("Checklist (%d/%d done)", done, len(items))
	})

	s.checklistView = systems.NewChecklistViewSystem(em, s.dispatcher, systems.ChecklistLayout{
		X:            l.X,
		Y:            l.ChecklistY,
		RowHeight:    config.ChecklistRowHeight,
		CheckboxSize: config.CheckboxSize,
		MaxRows:      l.VisibleRows,
	})
	tasks.OnChecklistChanged(s.checklistView.Rebuild)

	// 翻页按钮与可见范围
	entities.NewButton(em, l.X, l.ScrollY, config.ScrollButtonWidth, "Up", func() {
		s.checklistView.ScrollBy(-1)
	})
	entities.NewButton(em, l.X+config.ScrollButtonWidth+config.WidgetSpacing, l.ScrollY, config.ScrollButtonWidth, "Down", func() {
		s.checklistView.ScrollBy(1)
	})
	rangeX := l.X + 2*(config.ScrollButtonWidth+config.WidgetSpacing)
	rangeY := l.ScrollY + (config.ButtonHeight-config.LineHeight)/2
	entities.NewClampedLabel(em, rangeX, rangeY, 1, func() string {
		n := s.checklistView.ItemCount()
		if n == 0 {
			return ""
		}
		first, end := s.checklistView.VisibleRange()
		return fmt.Sprintf("%d-%d of %d", first+1, end, n)
	})
}
