package scenes

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/decker502/gardentodo/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

type mockMouse struct {
	x, y     int
	released bool
}

func (m *mockMouse) CursorPosition() (int, int) { return m.x, m.y }
func (m *mockMouse) IsMouseButtonJustReleased(ebiten.MouseButton) bool {
	return m.released
}

type mockKeyboard struct {
	chars []rune
	enter bool
}

func (k *mockKeyboard) AppendInputChars(runes []rune) []rune { return append(runes, k.chars...) }
func (k *mockKeyboard) IsKeyJustPressed(key ebiten.Key) bool  { return k.enter && key == ebiten.KeyEnter }
func (k *mockKeyboard) KeyPressDuration(ebiten.Key) int       { return 0 }

// errOpen 所有纹理都加载失败，田地走降级渲染
func errOpen(path string) (io.ReadCloser, error) {
	return nil, errors.New("no textures in tests")
}

type sceneHarness struct {
	t        *testing.T
	scene    *GardenScene
	mouse    *mockMouse
	keyboard *mockKeyboard
	cursors  []ebiten.CursorShapeType
}

func newSceneHarness(t *testing.T) *sceneHarness {
	t.Helper()
	return newSceneHarnessWithConfig(t, config.DefaultGardenConfig())
}

func newSceneHarnessWithConfig(t *testing.T, cfg *config.GardenConfig) *sceneHarness {
	t.Helper()
	h := &sceneHarness{t: t, mouse: &mockMouse{x: -100, y: -100}, keyboard: &mockKeyboard{}}
	h.scene = NewGardenSceneWithInput(cfg, SceneInput{
		Mouse:     h.mouse,
		Keyboard:  h.keyboard,
		Open:      errOpen,
		SetCursor: func(shape ebiten.CursorShapeType) { h.cursors = append(h.cursors, shape) },
	})
	return h
}

// waitForTextures 等待所有纹理返回结果
func (h *sceneHarness) waitForTextures() {
	h.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !h.scene.Dispatcher().Readiness().AllSettled() {
		if time.Now().After(deadline) {
			h.t.Fatal("textures did not settle in time")
		}
		h.scene.Update(1.0 / 60)
		time.Sleep(time.Millisecond)
	}
}

// click 在 (x, y) 处模拟一次指针释放
func (h *sceneHarness) click(x, y float64) {
	h.mouse.x, h.mouse.y, h.mouse.released = int(x)+1, int(y)+1, true
	h.scene.Update(1.0 / 60)
	h.mouse.released = false
}

// typeAndSubmit 向当前焦点输入框输入文字并回车
func (h *sceneHarness) typeAndSubmit(s string) {
	h.keyboard.chars = []rune(s)
	h.scene.Update(1.0 / 60)
	h.keyboard.chars = nil
	h.keyboard.enter = true
	h.scene.Update(1.0 / 60)
	h.keyboard.enter = false
}

func (h *sceneHarness) textInputs() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.TextInputComponent](h.scene.entityManager)
}

func (h *sceneHarness) position(id ecs.EntityID) *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](h.scene.entityManager, id)
	return pos
}

// clickButton 点击文字为 text 的按钮
func (h *sceneHarness) clickButton(text string) {
	h.t.Helper()
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](h.scene.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](h.scene.entityManager, id)
		if button.Text == text {
			pos := h.position(id)
			h.click(pos.X, pos.Y)
			return
		}
	}
	h.t.Fatalf("no button %q", text)
}

// TestGardenScene_FirstRenderAfterTextures 所有纹理有结果后才请求首次绘制
func TestGardenScene_FirstRenderAfterTextures(t *testing.T) {
	h := newSceneHarness(t)
	if h.scene.FieldDirty() {
		t.Fatal("field must not be drawn before textures settle")
	}

	h.waitForTextures()

	if !h.scene.FieldDirty() {
		t.Error("field should be dirty once every texture settled")
	}
	if n := h.scene.Dispatcher().RenderCount(); n != 1 {
		t.Errorf("expected exactly one render request, got %d", n)
	}
}

// TestGardenScene_ChecklistDrivesTool 通过面板添加并勾选条目，然后点击田地
func TestGardenScene_ChecklistDrivesTool(t *testing.T) {
	h := newSceneHarness(t)
	h.waitForTextures()

	inputs := h.textInputs()
	if len(inputs) != 2 {
		t.Fatalf("expected headline and checklist inputs, got %d", len(inputs))
	}

	// 标题任务
	headlinePos := h.position(inputs[0])
	h.click(headlinePos.X, headlinePos.Y)
	h.typeAndSubmit("Spring planting")
	if got := h.scene.Dispatcher().Tasks().Headline(); got != "Spring planting" {
		t.Fatalf("headline = %q", got)
	}

	// 清单条目
	itemPos := h.position(inputs[1])
	h.click(itemPos.X, itemPos.Y)
	h.typeAndSubmit("pull weeds")
	h.typeAndSubmit("   ") // 空白提交被忽略
	if items := h.scene.Dispatcher().Tasks().Items(); len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	// 勾选第一行 -> 铲子
	rows := ecs.GetEntitiesWith1[*components.ChecklistRowComponent](h.scene.entityManager)
	if len(rows) != 1 {
		t.Fatalf("expected 1 checklist row, got %d", len(rows))
	}
	rowPos := h.position(rows[0])
	h.click(rowPos.X, rowPos.Y)
	if mode := h.scene.Dispatcher().Tasks().Mode(); mode != types.ToolShovel {
		t.Fatalf("expected Shovel, got %v", mode)
	}

	// 点击格子 (3,4)
	before := h.scene.Dispatcher().RenderCount()
	geom := h.scene.cfg.Geometry()
	x, y := geom.TileOrigin(3, 4)
	h.click(float64(x), float64(y))
	if s, _ := h.scene.Dispatcher().Field().At(3, 4); s != types.TileCleared {
		t.Errorf("tile (3,4) = %v, expected Cleared", s)
	}
	if h.scene.Dispatcher().RenderCount() != before+1 {
		t.Error("tile change should request a redraw")
	}

	// 指针停在田地上且有工具 -> 手型光标
	if len(h.cursors) == 0 || h.cursors[len(h.cursors)-1] != ebiten.CursorShapePointer {
		t.Errorf("expected pointer cursor over the field, got %v", h.cursors)
	}
}

// TestGardenScene_PlantButtons 植物按钮记录所选植物
func TestGardenScene_PlantButtons(t *testing.T) {
	h := newSceneHarness(t)

	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](h.scene.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](h.scene.entityManager, id)
		if button.Text != "Carrot" {
			continue
		}
		pos := h.position(id)
		h.click(pos.X, pos.Y)
	}

	if got := h.scene.Dispatcher().Tasks().SelectedPlant(); got != "Carrot" {
		t.Errorf("selected plant = %q, expected Carrot", got)
	}
}

// TestGardenScene_ChecklistInsideWindow 田地很矮时清单行仍在窗口内，并可翻页勾选
func TestGardenScene_ChecklistInsideWindow(t *testing.T) {
	cfg := config.DefaultGardenConfig()
	cfg.Rows = 3
	h := newSceneHarnessWithConfig(t, cfg)
	h.waitForTextures()

	_, windowHeight := cfg.WindowSize()
	layout := cfg.PanelLayout()

	itemPos := h.position(h.textInputs()[1])
	h.click(itemPos.X, itemPos.Y)
	for _, label := range []string{"a", "b", "c", "d", "e", "f"} {
		h.typeAndSubmit(label)
	}
	if n := len(h.scene.Dispatcher().Tasks().Items()); n != 6 {
		t.Fatalf("expected 6 items, got %d", n)
	}

	em := h.scene.entityManager
	rows := ecs.GetEntitiesWith1[*components.ChecklistRowComponent](em)
	if len(rows) == 0 || len(rows) > layout.VisibleRows {
		t.Fatalf("expected 1..%d visible rows, got %d", layout.VisibleRows, len(rows))
	}
	for _, id := range rows {
		pos := h.position(id)
		if pos.Y < 0 || pos.Y+config.CheckboxSize > float64(windowHeight) {
			t.Errorf("row at y=%v is outside the %dpx window", pos.Y, windowHeight)
		}
		if pos.Y+config.ChecklistRowHeight > layout.ScrollY {
			t.Errorf("row at y=%v overlaps the scroll buttons at %v", pos.Y, layout.ScrollY)
		}
	}

	// 新条目可见
	last, _ := ecs.GetComponent[*components.ChecklistRowComponent](em, rows[len(rows)-1])
	if last.Index != 5 {
		t.Errorf("newest item should be visible, last row index = %d", last.Index)
	}

	// 翻到顶部后勾选第一行 -> 条目 0
	for i := 0; i < 6; i++ {
		h.clickButton("Up")
	}
	rows = ecs.GetEntitiesWith1[*components.ChecklistRowComponent](em)
	first, _ := ecs.GetComponent[*components.ChecklistRowComponent](em, rows[0])
	if first.Index != 0 {
		t.Fatalf("after scrolling up, first row index = %d", first.Index)
	}
	rowPos := h.position(rows[0])
	h.click(rowPos.X, rowPos.Y)
	if !h.scene.Dispatcher().Tasks().Items()[0].Done {
		t.Error("clicking the first visible row should toggle item 0")
	}
	if mode := h.scene.Dispatcher().Tasks().Mode(); mode != types.ToolShovel {
		t.Errorf("expected Shovel, got %v", mode)
	}
}

// TestGardenScene_HeadlineLabelClamped 标题任务标签限制行数，不会压住下方输入框
func TestGardenScene_HeadlineLabelClamped(t *testing.T) {
	h := newSceneHarness(t)
	em := h.scene.entityManager
	layout := h.scene.cfg.PanelLayout()

	found := false
	for _, id := range ecs.GetEntitiesWith1[*components.LabelComponent](em) {
		label, _ := ecs.GetComponent[*components.LabelComponent](em, id)
		if h.position(id).Y != layout.HeadlineY {
			continue
		}
		found = true
		if label.MaxLines != config.HeadlineMaxLines {
			t.Errorf("headline MaxLines = %d, expected %d", label.MaxLines, config.HeadlineMaxLines)
		}
	}
	if !found {
		t.Fatal("headline label not found")
	}

	headlineInput := h.position(h.textInputs()[0])
	if headlineInput.Y < layout.HeadlineY+config.HeadlineMaxLines*config.LineHeight {
		t.Errorf("headline input at y=%v overlaps the reserved headline lines", headlineInput.Y)
	}
}
