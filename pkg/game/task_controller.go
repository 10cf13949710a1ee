package game

import (
	"log"
	"os"
	"strings"

	"github.com/decker502/gardentodo/pkg/types"
)

// ChecklistListener 清单内容变化（追加条目）时的回调
// 接收当前全部条目，负责整体重建清单视图
type ChecklistListener func(items []ChecklistItem)

// TaskController 任务与光标控制器
//
// 职责：
//   - 维护标题任务、清单条目和所选植物
//   - 根据已完成条目数推导当前工具
//
// 工具不单独存储，每次 RecomputeMode 都从清单重新计算
type TaskController struct {
	headline      string
	checklist     Checklist
	selectedPlant string
	mode          types.ToolMode

	listeners []ChecklistListener
	diag      *log.Logger // 植物选择等诊断信息，不受详细日志开关影响
}

// NewTaskController 创建任务控制器，诊断信息写到标准错误
func NewTaskController() *TaskController {
	return NewTaskControllerWithLogger(nil)
}

// NewTaskControllerWithLogger 创建使用指定诊断 logger 的任务控制器
// diag 为 nil 时写到标准错误
func NewTaskControllerWithLogger(diag *log.Logger) *TaskController {
	if diag == nil {
		diag = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &TaskController{mode: types.ToolNone, diag: diag}
}

// OnChecklistChanged 注册清单重建回调
func (c *TaskController) OnChecklistChanged(l ChecklistListener) {
	c.listeners = append(c.listeners, l)
}

// SetHeadline 设置标题任务
// 去除首尾空白后为空时不做任何修改，也不清空输入框
func (c *TaskController) SetHeadline(input TextInput) bool {
	if input == nil {
		return false
	}
	value := input.Value()
	if strings.TrimSpace(value) == "" {
		return false
	}

	c.headline = value
	input.SetValue("")
	log.Printf("[TaskController] Headline set: %q", value)
	return true
}

// AddItem 追加清单条目
// 接受后重建清单视图、重新计算工具并清空输入框
func (c *TaskController) AddItem(input TextInput) bool {
	if input == nil {
		return false
	}
	value := input.Value()
	if strings.TrimSpace(value) == "" {
		return false
	}

	c.checklist.Append(value)
	c.rebuild()
	input.SetValue("")
	log.Printf("[TaskController] Item #%d added: %q", c.checklist.Len(), value)
	return true
}

// ToggleItem 翻转条目完成状态并重新计算工具
// 清单只追加，渲染出的下标始终有效；越界时忽略
func (c *TaskController) ToggleItem(index int) bool {
	if !c.checklist.Toggle(index) {
		return false
	}
	c.RecomputeMode()
	return true
}

// RecomputeMode 根据已完成条目数重新计算当前工具
// 条目不变时重复调用结果相同
func (c *TaskController) RecomputeMode() types.ToolMode {
	next := types.DeriveToolMode(c.checklist.DoneCount())
	if next != c.mode {
		log.Printf("[TaskController] Tool mode: %s -> %s", c.mode, next)
	}
	c.mode = next
	return c.mode
}

// SelectPlant 记录所选植物（原样保存，不做校验）
func (c *TaskController) SelectPlant(label string) {
	c.selectedPlant = label
	c.diag.Printf("Selected plant: %s", label)
}

// Headline 返回当前标题任务
func (c *TaskController) Headline() string { return c.headline }

// SelectedPlant 返回最近一次选择的植物
func (c *TaskController) SelectedPlant() string { return c.selectedPlant }

// Mode 返回当前工具
func (c *TaskController) Mode() types.ToolMode { return c.mode }

// Items 返回清单条目副本
func (c *TaskController) Items() []ChecklistItem { return c.checklist.Items() }

// rebuild 通知监听者整体重建清单，然后重新计算工具
func (c *TaskController) rebuild() {
	items := c.checklist.Items()
	for _, l := range c.listeners {
		l(items)
	}
	c.RecomputeMode()
}
