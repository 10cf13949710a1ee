package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/decker502/gardentodo/pkg/game"
	"github.com/decker502/gardentodo/pkg/systems"
	"github.com/decker502/gardentodo/pkg/types"
	"github.com/decker502/gardentodo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// SceneInput 场景使用的输入源，字段为 nil 时使用 Ebitengine 默认实现
type SceneInput struct {
	Mouse    systems.MouseInput
	Keyboard systems.KeyboardInput
	// Open 打开图片文件，为 nil 时优先读取嵌入资源
	Open game.OpenFunc
	// SetCursor 设置光标形状，为 nil 时调用 ebiten.SetCursorShape
	SetCursor func(shape ebiten.CursorShapeType)
	// Diagnostics 接收植物选择等诊断信息，为 nil 时写到标准错误
	Diagnostics *log.Logger
}

// GardenScene 田地 + 任务面板场景
//
// 左侧为田地画布（原点在屏幕左上角），右侧为任务面板。
// 田地只在分发器请求重绘时重新绘制到离屏画布上，其余帧直接复用。
type GardenScene struct {
	cfg        *config.GardenConfig
	dispatcher *game.Dispatcher
	images     *game.ImageStore

	entityManager *ecs.EntityManager
	fieldInput    *systems.FieldInputSystem
	buttons       *systems.ButtonSystem
	checkboxes    *systems.CheckboxSystem
	textInputs    *systems.TextInputSystem
	checklistView *systems.ChecklistViewSystem
	fieldRender   *systems.FieldRenderSystem
	panelRender   *systems.PanelRenderSystem

	canvas       *ebiten.Image
	fieldDirty   bool
	trackTouches bool // 使用默认输入时记录触摸位置
	setCursor    func(shape ebiten.CursorShapeType)
	cursorShape  ebiten.CursorShapeType
}

var _ Scene = (*GardenScene)(nil)

// NewGardenScene 创建场景并开始异步加载纹理
func NewGardenScene(cfg *config.GardenConfig) *GardenScene {
	return NewGardenSceneWithInput(cfg, SceneInput{})
}

// NewGardenSceneWithInput 创建带自定义输入源的场景（用于测试）
func NewGardenSceneWithInput(cfg *config.GardenConfig, in SceneInput) *GardenScene {
	geom := cfg.Geometry()

	s := &GardenScene{
		cfg:           cfg,
		dispatcher:    game.NewDispatcher(geom, game.NewTaskControllerWithLogger(in.Diagnostics), types.AllResources...),
		images:        game.NewImageStore(in.Open),
		entityManager: ecs.NewEntityManager(),
		setCursor:     in.SetCursor,
		cursorShape:   ebiten.CursorShapeDefault,
	}
	if s.setCursor == nil {
		s.setCursor = ebiten.SetCursorShape
	}

	s.initSystems(in)
	s.buildPanel()

	s.dispatcher.OnRender(func() { s.fieldDirty = true })

	for _, id := range types.AllResources {
		s.images.LoadAsync(id, cfg.AssetPath(id))
	}
	log.Printf("[GardenScene] Loading %d textures", len(types.AllResources))

	return s
}

// initSystems 创建所有系统
func (s *GardenScene) initSystems(in SceneInput) {
	geom := s.cfg.Geometry()
	panelX := float64(geom.SurfaceWidth())

	mouse := in.Mouse
	keyboard := in.Keyboard
	if mouse == nil || keyboard == nil {
		s.trackTouches = true
		s.fieldInput = systems.NewFieldInputSystem(s.dispatcher, geom, 0, 0)
		s.buttons = systems.NewButtonSystem(s.entityManager)
		s.checkboxes = systems.NewCheckboxSystem(s.entityManager)
		s.textInputs = systems.NewTextInputSystem(s.entityManager)
	} else {
		s.fieldInput = systems.NewFieldInputSystemWithInput(s.dispatcher, geom, 0, 0, mouse)
		s.buttons = systems.NewButtonSystemWithInput(s.entityManager, mouse)
		s.checkboxes = systems.NewCheckboxSystemWithInput(s.entityManager, mouse)
		s.textInputs = systems.NewTextInputSystemWithInput(s.entityManager, mouse, keyboard)
	}

	s.fieldRender = systems.NewFieldRenderSystem(geom, s.cfg.Palette(), s.images)

	face := text.NewGoXFace(basicfont.Face7x13)
	_, height := s.cfg.WindowSize()
	s.panelRender = systems.NewPanelRenderSystem(s.entityManager, face,
		float32(panelX), 0, float32(s.cfg.Window.PanelWidth), float32(height))
}

// Update 每个 tick 调用一次
func (s *GardenScene) Update(deltaTime float64) {
	if s.trackTouches {
		utils.UpdateLastTouchPosition()
	}

	// 纹理加载结果
	for _, r := range s.images.Poll() {
		s.dispatcher.Dispatch(game.ImageReady{ID: r.ID, Err: r.Err})
	}

	s.textInputs.Update(deltaTime)
	s.buttons.Update(deltaTime)
	s.checkboxes.Update(deltaTime)
	s.fieldInput.Update(deltaTime)

	s.updateCursor()
}

// updateCursor 有工具且指针位于田地上时切换为手型光标
func (s *GardenScene) updateCursor() {
	if utils.IsMobile() {
		return
	}

	shape := ebiten.CursorShapeDefault
	if s.dispatcher.Tasks().Mode() != types.ToolNone && s.fieldInput.IsHovering() {
		shape = ebiten.CursorShapePointer
	}
	if shape != s.cursorShape {
		s.cursorShape = shape
		s.setCursor(shape)
	}
}

// Draw 绘制到 screen
func (s *GardenScene) Draw(screen *ebiten.Image) {
	geom := s.cfg.Geometry()
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(geom.SurfaceWidth(), geom.SurfaceHeight())
	}

	if s.fieldDirty {
		surface := systems.NewImageSurface(s.canvas, s.images.Image)
		s.fieldRender.Render(s.dispatcher.Field(), surface)
		s.fieldDirty = false
	}

	screen.DrawImage(s.canvas, nil)
	s.panelRender.Draw(screen)
}

// Dispatcher 返回事件分发器
func (s *GardenScene) Dispatcher() *game.Dispatcher {
	return s.dispatcher
}

// FieldDirty 田地是否等待重绘
func (s *GardenScene) FieldDirty() bool {
	return s.fieldDirty
}

// Status 返回一行状态摘要（用于日志）
func (s *GardenScene) Status() string {
	tasks := s.dispatcher.Tasks()
	counts := s.dispatcher.Field().CountByState()
	return fmt.Sprintf("tool=%s items=%d mature=%d pendingTextures=%d",
		tasks.Mode(), len(tasks.Items()), counts[types.TileMature], s.images.Pending())
}
