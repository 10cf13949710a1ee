package game

import (
	"log"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/types"
	"github.com/decker502/gardentodo/pkg/utils"
)

// RenderHook 需要重绘田地时调用
type RenderHook func()

// Dispatcher 领域事件分发器
// 持有田地、任务控制器和资源就绪集合；先修改状态，再按需触发重绘
type Dispatcher struct {
	geom      config.Geometry
	field     *Field
	tasks     *TaskController
	readiness *ReadinessSet

	renderHooks []RenderHook
	renders     int
}

// NewDispatcher 创建分发器
// 参数:
//   - geom: 网格几何参数（决定田地尺寸和坐标映射）
//   - tasks: 任务控制器，为 nil 时自动创建
//   - expected: 首次绘制前需要等待的图片资源
func NewDispatcher(geom config.Geometry, tasks *TaskController, expected ...types.ResourceID) *Dispatcher {
	if tasks == nil {
		tasks = NewTaskController()
	}
	return &Dispatcher{
		geom:      geom,
		field:     NewField(geom.Rows, geom.Cols),
		tasks:     tasks,
		readiness: NewReadinessSet(expected...),
	}
}

// OnRender 注册重绘回调
func (d *Dispatcher) OnRender(hook RenderHook) {
	d.renderHooks = append(d.renderHooks, hook)
}

// Dispatch 处理一个事件
// 返回事件是否改变了状态
func (d *Dispatcher) Dispatch(ev Event) bool {
	switch e := ev.(type) {
	case ImageReady:
		return d.handleImageReady(e)
	case TileClicked:
		return d.handleTileClicked(e)
	case ItemToggled:
		return d.tasks.ToggleItem(e.Index)
	case HeadlineSubmitted:
		return d.tasks.SetHeadline(e.Input)
	case ItemAdded:
		return d.tasks.AddItem(e.Input)
	case PlantSelected:
		d.tasks.SelectPlant(e.Label)
		return true
	default:
		log.Printf("[Dispatcher] Unhandled event %T", ev)
		return false
	}
}

// handleImageReady 最后一个资源有结果时触发首次绘制，之前的结果不触发局部重绘
func (d *Dispatcher) handleImageReady(e ImageReady) bool {
	wasSettled := d.readiness.AllSettled()
	if !d.readiness.Mark(e.ID, e.Err) {
		return false
	}
	if e.Err != nil {
		log.Printf("[Dispatcher] Image %s unavailable, using fallback: %v", e.ID, e.Err)
	}
	if !wasSettled && d.readiness.AllSettled() {
		d.requestRender()
	}
	return true
}

func (d *Dispatcher) handleTileClicked(e TileClicked) bool {
	col, row, ok := utils.PixelToTile(e.X, e.Y, d.geom)
	if !ok {
		return false
	}
	if !d.field.Advance(row, col, d.tasks.Mode()) {
		return false
	}
	d.requestRender()
	return true
}

// RequestRender 主动请求一次重绘（如窗口重建后）
func (d *Dispatcher) RequestRender() {
	d.requestRender()
}

func (d *Dispatcher) requestRender() {
	d.renders++
	for _, hook := range d.renderHooks {
		hook()
	}
}

// Field 返回田地
func (d *Dispatcher) Field() *Field { return d.field }

// Tasks 返回任务控制器
func (d *Dispatcher) Tasks() *TaskController { return d.tasks }

// Readiness 返回资源就绪集合
func (d *Dispatcher) Readiness() *ReadinessSet { return d.readiness }

// Geometry 返回网格几何参数
func (d *Dispatcher) Geometry() config.Geometry { return d.geom }

// RenderCount 返回已请求的重绘次数
func (d *Dispatcher) RenderCount() int { return d.renders }
