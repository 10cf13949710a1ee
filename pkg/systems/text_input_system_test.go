package systems

import (
	"testing"

	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func createTestTextInput(em *ecs.EntityManager, x, y float64) *components.TextInputComponent {
	id := em.CreateEntity()
	input := &components.TextInputComponent{Width: 200, Height: 24, MaxLength: 10}
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, input)
	return input
}

func TestTextInputSystem_Focus(t *testing.T) {
	em := ecs.NewEntityManager()
	headline := createTestTextInput(em, 0, 0)
	item := createTestTextInput(em, 0, 40)

	mouse := &mockMouseInput{mouseX: 50, mouseY: 50, justReleased: true}
	keyboard := &mockKeyboardInput{}
	sys := NewTextInputSystemWithInput(em, mouse, keyboard)

	sys.Update(0)
	if headline.IsFocused || !item.IsFocused {
		t.Fatalf("expected item input focused: headline=%v item=%v", headline.IsFocused, item.IsFocused)
	}

	// 点击空白处失去焦点
	mouse.mouseY = 500
	sys.Update(0)
	if item.IsFocused {
		t.Error("clicking elsewhere should blur the input")
	}
}

func TestTextInputSystem_Typing(t *testing.T) {
	em := ecs.NewEntityManager()
	input := createTestTextInput(em, 0, 0)
	input.IsFocused = true

	keyboard := &mockKeyboardInput{chars: []rune("weed\tbed")}
	sys := NewTextInputSystemWithInput(em, &mockMouseInput{}, keyboard)

	sys.Update(0)
	if input.Text != "weedbed" {
		t.Fatalf("expected control characters filtered, got %q", input.Text)
	}

	// 超过 MaxLength 的字符被丢弃
	keyboard.chars = []rune("12345")
	sys.Update(0)
	if input.Text != "weedbed123" {
		t.Errorf("expected text capped at 10 runes, got %q", input.Text)
	}

	// 退格
	keyboard.chars = nil
	keyboard.durations = map[ebiten.Key]int{ebiten.KeyBackspace: 1}
	sys.Update(0)
	if input.Text != "weedbed12" {
		t.Errorf("expected one rune deleted, got %q", input.Text)
	}

	// 按住但未到重复间隔
	keyboard.durations[ebiten.KeyBackspace] = 5
	sys.Update(0)
	if input.Text != "weedbed12" {
		t.Errorf("held backspace should not repeat before 30 frames, got %q", input.Text)
	}
}

func TestTextInputSystem_Submit(t *testing.T) {
	em := ecs.NewEntityManager()
	input := createTestTextInput(em, 0, 0)

	submits := 0
	input.OnSubmit = func() { submits++ }

	keyboard := &mockKeyboardInput{justPressed: map[ebiten.Key]bool{ebiten.KeyEnter: true}}
	sys := NewTextInputSystemWithInput(em, &mockMouseInput{}, keyboard)

	sys.Update(0)
	if submits != 0 {
		t.Fatal("unfocused input must not submit")
	}

	input.IsFocused = true
	sys.Update(0)
	if submits != 1 {
		t.Errorf("expected 1 submit, got %d", submits)
	}
}

func TestTextInputSystem_CursorBlink(t *testing.T) {
	em := ecs.NewEntityManager()
	input := createTestTextInput(em, 0, 0)
	input.IsFocused = true
	input.CursorVisible = true

	sys := NewTextInputSystemWithInput(em, &mockMouseInput{}, &mockKeyboardInput{})
	sys.Update(0.3)
	if !input.CursorVisible {
		t.Error("cursor should still be visible after 0.3s")
	}
	sys.Update(0.3)
	if input.CursorVisible {
		t.Error("cursor should blink off after 0.6s")
	}
}
