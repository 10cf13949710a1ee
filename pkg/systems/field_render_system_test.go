package systems

import (
	"testing"

	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/game"
	"github.com/decker502/gardentodo/pkg/types"
)

func newTestRenderer(images ImageSource) (*FieldRenderSystem, config.Geometry, config.Palette) {
	cfg := config.DefaultGardenConfig()
	geom := cfg.Geometry()
	palette := cfg.Palette()
	return NewFieldRenderSystem(geom, palette, images), geom, palette
}

// TestFieldRenderSystem_NoImages 没有任何可用图片时全部走降级路径
func TestFieldRenderSystem_NoImages(t *testing.T) {
	renderer, geom, palette := newTestRenderer(stubImages{})
	field := game.NewField(geom.Rows, geom.Cols)
	surface := &recordingSurface{}

	renderer.Render(field, surface)

	if len(surface.ops) == 0 || surface.ops[0].kind != "clear" {
		t.Fatal("render should start by clearing the surface")
	}
	if n := len(surface.opsOfKind("texture")); n != 0 {
		t.Errorf("expected no textures, got %d", n)
	}

	// 每个内部格子: 草地色填充 + 黑色描边
	for row := 0; row < geom.Rows; row++ {
		for col := 0; col < geom.Cols; col++ {
			px, py := geom.TileOrigin(row, col)
			ops := surface.opsAt(float32(px), float32(py))
			if len(ops) != 2 {
				t.Fatalf("tile (%d,%d): expected 2 ops, got %d", row, col, len(ops))
			}
			if ops[0].kind != "fill" || ops[0].color != palette.Ground {
				t.Errorf("tile (%d,%d): expected ground fill, got %+v", row, col, ops[0])
			}
			if ops[1].kind != "stroke" || ops[1].color != palette.Outline {
				t.Errorf("tile (%d,%d): expected outline stroke, got %+v", row, col, ops[1])
			}
		}
	}

	// 100 个格子描边，100 个格子填充 + 44 个边框填充
	if n := len(surface.opsOfKind("stroke")); n != 100 {
		t.Errorf("expected 100 strokes, got %d", n)
	}
	if n := len(surface.opsOfKind("fill")); n != 144 {
		t.Errorf("expected 144 fills, got %d", n)
	}
}

// TestFieldRenderSystem_FallbackColorPerState 每种状态使用各自的降级颜色
func TestFieldRenderSystem_FallbackColorPerState(t *testing.T) {
	renderer, geom, palette := newTestRenderer(nil)
	field := game.NewField(geom.Rows, geom.Cols)

	field.Advance(0, 0, types.ToolShovel)
	field.Advance(0, 1, types.ToolShovel)
	field.Advance(0, 1, types.ToolSeeds)
	field.Advance(0, 2, types.ToolShovel)
	field.Advance(0, 2, types.ToolSeeds)
	field.Advance(0, 2, types.ToolWater)

	surface := &recordingSurface{}
	renderer.Render(field, surface)

	expected := []struct {
		col   int
		state types.TileState
	}{
		{0, types.TileCleared},
		{1, types.TileSprouting},
		{2, types.TileMature},
		{3, types.TileGround},
	}
	for _, e := range expected {
		px, py := geom.TileOrigin(0, e.col)
		ops := surface.opsAt(float32(px), float32(py))
		if len(ops) == 0 || ops[0].color != palette.TileColor(e.state) {
			t.Errorf("col %d: expected %v color %v, got %+v", e.col, e.state, palette.TileColor(e.state), ops)
		}
	}
}

// TestFieldRenderSystem_Textures 图片可用时绘制纹理，不再描边
func TestFieldRenderSystem_Textures(t *testing.T) {
	images := stubImages{
		types.ResourceGround:  true,
		types.ResourceBorder:  true,
		types.ResourceCleared: true,
	}
	renderer, geom, _ := newTestRenderer(images)
	field := game.NewField(geom.Rows, geom.Cols)
	field.Advance(5, 5, types.ToolShovel)
	field.Advance(5, 5, types.ToolSeeds) // 发芽纹理不可用

	surface := &recordingSurface{}
	renderer.Render(field, surface)

	counts := map[types.ResourceID]int{}
	for _, op := range surface.opsOfKind("texture") {
		counts[op.id]++
	}
	if counts[types.ResourceGround] != 99 {
		t.Errorf("ground textures: expected 99, got %d", counts[types.ResourceGround])
	}
	if counts[types.ResourceBorder] != 44 {
		t.Errorf("border textures: expected 44, got %d", counts[types.ResourceBorder])
	}
	if n := len(surface.opsOfKind("stroke")); n != 1 {
		t.Errorf("only the sprouting tile should fall back, got %d strokes", n)
	}
}

// TestFieldRenderSystem_BorderRing 边框覆盖四条边的每个格子且只绘制一次
func TestFieldRenderSystem_BorderRing(t *testing.T) {
	renderer, geom, palette := newTestRenderer(stubImages{})
	surface := &recordingSurface{}
	renderer.Render(game.NewField(geom.Rows, geom.Cols), surface)

	size := float32(geom.TileSize)
	for sr := 0; sr < geom.SurfaceRows(); sr++ {
		for sc := 0; sc < geom.SurfaceCols(); sc++ {
			ops := surface.opsAt(float32(sc)*size, float32(sr)*size)
			if !geom.IsBorderCell(sr, sc) {
				continue
			}
			if len(ops) != 1 || ops[0].color != palette.Border {
				t.Errorf("border cell (%d,%d): expected one border fill, got %+v", sr, sc, ops)
			}
		}
	}
}
