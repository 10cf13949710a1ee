package systems

import (
	"image/color"

	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/decker502/gardentodo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 面板配色
var (
	panelBackground     = color.RGBA{R: 0xF5, G: 0xF0, B: 0xE1, A: 0xFF}
	panelText           = color.RGBA{R: 0x33, G: 0x2B, B: 0x1E, A: 0xFF}
	panelPlaceholder    = color.RGBA{R: 0x99, G: 0x90, B: 0x80, A: 0xFF}
	inputBackground     = color.White
	inputBorder         = color.RGBA{R: 0x8B, G: 0x5A, B: 0x2B, A: 0xFF}
	inputBorderFocused  = color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF}
	buttonNormal        = color.RGBA{R: 0x6B, G: 0x8E, B: 0x23, A: 0xFF}
	buttonHovered       = color.RGBA{R: 0x80, G: 0xA8, B: 0x2E, A: 0xFF}
	buttonDisabled      = color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	buttonText          = color.White
	checkboxCheckedFill = color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 0xFF}
)

// textPadding 文字与控件边缘的间距（像素）
const textPadding = 6

// PanelRenderSystem 任务面板渲染系统
// 绘制标签、输入框、按钮和清单行，所有控件都是纯色矩形加文字
type PanelRenderSystem struct {
	entityManager *ecs.EntityManager
	face          text.Face
	bounds        [4]float32 // 面板背景 x, y, w, h
}

// NewPanelRenderSystem 创建面板渲染系统
func NewPanelRenderSystem(em *ecs.EntityManager, face text.Face, x, y, w, h float32) *PanelRenderSystem {
	return &PanelRenderSystem{
		entityManager: em,
		face:          face,
		bounds:        [4]float32{x, y, w, h},
	}
}

// Draw 绘制面板
func (s *PanelRenderSystem) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, s.bounds[0], s.bounds[1], s.bounds[2], s.bounds[3], panelBackground, false)

	s.drawLabels(screen)
	s.drawTextInputs(screen)
	s.drawButtons(screen)
	s.drawCheckboxes(screen)
}

func (s *PanelRenderSystem) drawLabels(screen *ebiten.Image) {
	maxWidth := float64(s.bounds[0]+s.bounds[2]) - textPadding

	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := color.Color(panelText)
		if label.Color[3] != 0 {
			clr = color.RGBA{R: label.Color[0], G: label.Color[1], B: label.Color[2], A: label.Color[3]}
		}

		lines := utils.WrapText(label.CurrentText(), s.face, maxWidth-pos.X)
		lines = utils.LimitLines(lines, label.MaxLines, s.face, maxWidth-pos.X)
		lineHeight := s.lineHeight()
		for i, line := range lines {
			s.drawText(screen, line, pos.X, pos.Y+float64(i)*lineHeight, clr)
		}
	}
}

func (s *PanelRenderSystem) drawTextInputs(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(input.Width), float32(input.Height)
		vector.DrawFilledRect(screen, x, y, w, h, inputBackground, false)

		border := inputBorder
		if input.IsFocused {
			border = inputBorderFocused
		}
		vector.StrokeRect(screen, x, y, w, h, 1, border, false)

		textY := pos.Y + (input.Height-s.lineHeight())/2
		if input.Text == "" && !input.IsFocused {
			s.drawText(screen, input.Placeholder, pos.X+textPadding, textY, panelPlaceholder)
			continue
		}
		s.drawText(screen, input.Text, pos.X+textPadding, textY, panelText)

		if input.IsFocused && input.CursorVisible {
			cx := float32(pos.X + textPadding + s.measure(input.Text) + 1)
			vector.StrokeLine(screen, cx, y+4, cx, y+h-4, 1, panelText, false)
		}
	}
}

func (s *PanelRenderSystem) drawButtons(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		fill := buttonNormal
		switch button.State {
		case components.UIHovered, components.UIClicked:
			fill = buttonHovered
		case components.UIDisabled:
			fill = buttonDisabled
		}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(button.Width), float32(button.Height), fill, false)

		// 文字居中
		tx := pos.X + (button.Width-s.measure(button.Text))/2
		ty := pos.Y + (button.Height-s.lineHeight())/2
		s.drawText(screen, button.Text, tx, ty, buttonText)
	}
}

func (s *PanelRenderSystem) drawCheckboxes(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.CheckboxComponent, *components.PositionComponent](s.entityManager) {
		checkbox, _ := ecs.GetComponent[*components.CheckboxComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y, size := float32(pos.X), float32(pos.Y), float32(checkbox.Size)
		vector.DrawFilledRect(screen, x, y, size, size, inputBackground, false)
		if checkbox.IsChecked {
			vector.DrawFilledRect(screen, x+3, y+3, size-6, size-6, checkboxCheckedFill, false)
		}
		border := inputBorder
		if checkbox.IsHovered {
			border = inputBorderFocused
		}
		vector.StrokeRect(screen, x, y, size, size, 1, border, false)

		ty := pos.Y + (checkbox.Size-s.lineHeight())/2
		s.drawText(screen, checkbox.Label, pos.X+checkbox.Size+textPadding, ty, panelText)
	}
}

func (s *PanelRenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	if str == "" || s.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

func (s *PanelRenderSystem) measure(str string) float64 {
	if s.face == nil {
		return 0
	}
	w, _ := text.Measure(str, s.face, 0)
	return w
}

func (s *PanelRenderSystem) lineHeight() float64 {
	if s.face == nil {
		return 0
	}
	m := s.face.Metrics()
	return m.HAscent + m.HDescent
}
