// Package tui 终端宿主：用 bubbletea 驱动与桌面端相同的事件分发器
//
// 田地通过 FieldRenderSystem 绘制到以画布格为单位的终端画布上，
// 终端没有图片，因此始终使用降级颜色。格子光标加回车模拟一次
// 指针点击，点击坐标为格子中心的画布像素，与桌面端共用坐标映射。
package tui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/game"
	"github.com/decker502/gardentodo/pkg/systems"
	"github.com/decker502/gardentodo/pkg/types"
)

// focus 当前获得键盘焦点的区块
type focus int

const (
	focusField focus = iota
	focusHeadline
	focusPlants
	focusItem
	focusChecklist
	focusCount
)

func (f focus) String() string {
	switch f {
	case focusField:
		return "Field"
	case focusHeadline:
		return "Main task"
	case focusPlants:
		return "Plants"
	case focusItem:
		return "New item"
	case focusChecklist:
		return "Checklist"
	default:
		return "Unknown"
	}
}

// Model 终端界面模型
type Model struct {
	cfg        *config.GardenConfig
	dispatcher *game.Dispatcher
	renderer   *systems.FieldRenderSystem
	surface    *cellSurface

	focus         focus
	cursorRow     int
	cursorCol     int
	plantCursor   int
	checklistRow  int
	headlineInput textinput.Model
	itemInput     textinput.Model
	help          help.Model
	status        *statusLine

	fieldView string
	width     int
	height    int
	quitting  bool
}

// New 创建终端界面模型，诊断信息只显示在状态行
func New(cfg *config.GardenConfig) Model {
	return NewWithDiagnostics(cfg, nil)
}

// NewWithDiagnostics 创建终端界面模型
// 诊断信息（如 "Selected plant: X"）显示在状态行，并同时写入 diag（可为 nil）
func NewWithDiagnostics(cfg *config.GardenConfig, diag io.Writer) Model {
	geom := cfg.Geometry()

	status := &statusLine{}
	var out io.Writer = status
	if diag != nil {
		out = io.MultiWriter(status, diag)
	}
	tasks := game.NewTaskControllerWithLogger(log.New(out, "", 0))

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	h.Styles.ShortDesc = HelpStyle
	h.Styles.ShortSeparator = MutedStyle
	h.Styles.FullKey = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	h.Styles.FullDesc = HelpStyle

	headline := textinput.New()
	headline.Placeholder = "Set the main task"
	headline.CharLimit = config.InputMaxLength
	headline.Prompt = "> "

	item := textinput.New()
	item.Placeholder = "Add a checklist item"
	item.CharLimit = config.InputMaxLength
	item.Prompt = "> "

	m := Model{
		cfg:           cfg,
		dispatcher:    game.NewDispatcher(geom, tasks),
		renderer:      systems.NewFieldRenderSystem(geom, cfg.Palette(), noTextures{}),
		surface:       newCellSurface(geom),
		headlineInput: headline,
		itemInput:     item,
		help:          h,
		status:        status,
	}
	// 终端没有需要等待的纹理，直接请求首次绘制
	m.dispatcher.RequestRender()
	m.redrawField()
	return m
}

// Init 实现 tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Dispatcher 返回事件分发器
func (m Model) Dispatcher() *game.Dispatcher {
	return m.dispatcher
}

// redrawField 把田地重绘到终端画布并缓存结果
// 只在分发器请求重绘后调用（状态未变化的点击不重绘）
func (m *Model) redrawField() {
	m.renderer.Render(m.dispatcher.Field(), m.surface)
	m.refreshCursor()
}

// dispatch 分发事件，状态变化后按需重绘
func (m *Model) dispatch(ev game.Event) bool {
	before := m.dispatcher.RenderCount()
	changed := m.dispatcher.Dispatch(ev)
	if m.dispatcher.RenderCount() != before {
		m.redrawField()
	}
	return changed
}

// Update 实现 tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.ForceQuit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Tab):
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case key.Matches(msg, keys.ShiftTab):
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		}

		if m.editing() {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.handleNavigation(msg)
		return m, nil
	}

	return m, nil
}

// editing 焦点是否在文本输入框上
func (m Model) editing() bool {
	return m.focus == focusHeadline || m.focus == focusItem
}

// setFocus 切换焦点并同步输入框的焦点状态
func (m *Model) setFocus(f focus) {
	m.focus = f
	m.headlineInput.Blur()
	m.itemInput.Blur()
	switch f {
	case focusHeadline:
		m.headlineInput.Focus()
	case focusItem:
		m.itemInput.Focus()
	}
	// 光标只在田地获得焦点时显示
	m.refreshCursor()
}

// updateInput 输入框获得焦点时的按键处理
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Submit) {
		if m.focus == focusHeadline {
			m.dispatch(game.HeadlineSubmitted{Input: &m.headlineInput})
		} else {
			m.dispatch(game.ItemAdded{Input: &m.itemInput})
			if n := len(m.dispatcher.Tasks().Items()); n > 0 {
				m.checklistRow = n - 1
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusHeadline {
		m.headlineInput, cmd = m.headlineInput.Update(msg)
	} else {
		m.itemInput, cmd = m.itemInput.Update(msg)
	}
	return m, cmd
}

// handleNavigation 田地、植物和清单区块的方向键与确认键
func (m *Model) handleNavigation(msg tea.KeyMsg) {
	switch m.focus {
	case focusField:
		m.navigateField(msg)
	case focusPlants:
		m.navigatePlants(msg)
	case focusChecklist:
		m.navigateChecklist(msg)
	}
}

func (m *Model) navigateField(msg tea.KeyMsg) {
	geom := m.dispatcher.Geometry()
	moved := true
	switch {
	case key.Matches(msg, keys.Up):
		m.cursorRow = max(m.cursorRow-1, 0)
	case key.Matches(msg, keys.Down):
		m.cursorRow = min(m.cursorRow+1, geom.Rows-1)
	case key.Matches(msg, keys.Left):
		m.cursorCol = max(m.cursorCol-1, 0)
	case key.Matches(msg, keys.Right):
		m.cursorCol = min(m.cursorCol+1, geom.Cols-1)
	case key.Matches(msg, keys.Activate):
		moved = false
		x, y := geom.TileCenter(m.cursorRow, m.cursorCol)
		m.dispatch(game.TileClicked{X: x, Y: y})
	default:
		moved = false
	}
	if moved {
		m.refreshCursor()
	}
}

func (m *Model) navigatePlants(msg tea.KeyMsg) {
	n := len(m.cfg.Plants)
	if n == 0 {
		return
	}
	switch {
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Up):
		m.plantCursor = (m.plantCursor + n - 1) % n
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Down):
		m.plantCursor = (m.plantCursor + 1) % n
	case key.Matches(msg, keys.Activate):
		m.dispatch(game.PlantSelected{Label: m.cfg.Plants[m.plantCursor]})
	}
}

func (m *Model) navigateChecklist(msg tea.KeyMsg) {
	n := len(m.dispatcher.Tasks().Items())
	if n == 0 {
		return
	}
	switch {
	case key.Matches(msg, keys.Up):
		m.checklistRow = max(m.checklistRow-1, 0)
	case key.Matches(msg, keys.Down):
		m.checklistRow = min(m.checklistRow+1, n-1)
	case key.Matches(msg, keys.Activate):
		m.dispatch(game.ItemToggled{Index: m.checklistRow})
	}
}

// refreshCursor 光标移动只改变叠加层，不触发田地重绘
func (m *Model) refreshCursor() {
	if m.focus == focusField {
		m.fieldView = m.surface.View(m.cursorRow, m.cursorCol)
	} else {
		m.fieldView = m.surface.View(-1, -1)
	}
}

// View 实现 tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	field := sectionStyle(m.focus == focusField).Render(m.fieldView)
	panel := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(m.cfg.Window.Title),
		"",
		m.headlineSection(),
		m.statusSection(),
		m.plantSection(),
		m.itemSection(),
		m.checklistSection(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, field, " ", panel)
	sections := []string{body}
	if line := m.status.Last(); line != "" {
		sections = append(sections, MutedStyle.Render(line))
	}
	sections = append(sections, m.help.View(keys.forFocus(m.focus)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headlineSection() string {
	headline := m.dispatcher.Tasks().Headline()
	if headline == "" {
		headline = MutedStyle.Render("(none)")
	}
	content := LabelStyle.Render("Main task: ") + headline + "\n" + m.headlineInput.View()
	return sectionStyle(m.focus == focusHeadline).Render(content)
}

func (m Model) statusSection() string {
	tasks := m.dispatcher.Tasks()
	plant := tasks.SelectedPlant()
	if plant == "" {
		plant = "(none)"
	}
	return fmt.Sprintf(" Tool: %s  [%s]\n Plant: %s",
		SelectedStyle.Render(tasks.Mode().String()),
		MutedStyle.Render(tasks.Mode().CursorName()),
		plant)
}

func (m Model) plantSection() string {
	labels := make([]string, len(m.cfg.Plants))
	for i, plant := range m.cfg.Plants {
		label := " " + plant + " "
		if m.focus == focusPlants && i == m.plantCursor {
			label = SelectedStyle.Render("[" + plant + "]")
		}
		labels[i] = label
	}
	return sectionStyle(m.focus == focusPlants).Render(strings.Join(labels, " "))
}

func (m Model) itemSection() string {
	return sectionStyle(m.focus == focusItem).Render(m.itemInput.View())
}

func (m Model) checklistSection() string {
	items := m.dispatcher.Tasks().Items()
	done := 0
	lines := []string{LabelStyle.Render("Checklist")}
	for i, item := range items {
		box := "[ ]"
		label := systems.RowLabel(i, item.Label)
		if item.Done {
			box = "[x]"
			label = DoneStyle.Render(label)
			done++
		}
		prefix := "  "
		if m.focus == focusChecklist && i == m.checklistRow {
			prefix = SelectedStyle.Render("> ")
		}
		lines = append(lines, prefix+box+" "+label)
	}
	if len(items) == 0 {
		lines = append(lines, MutedStyle.Render("  no items yet"))
	}
	lines[0] = LabelStyle.Render(fmt.Sprintf("Checklist (%d/%d done)", done, len(items)))
	return sectionStyle(m.focus == focusChecklist).Render(strings.Join(lines, "\n"))
}

// Mode 返回当前工具（用于测试和状态栏）
func (m Model) Mode() types.ToolMode {
	return m.dispatcher.Tasks().Mode()
}
