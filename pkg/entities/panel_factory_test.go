package entities

import (
	"testing"

	"github.com/decker502/gardentodo/pkg/components"
	"github.com/decker502/gardentodo/pkg/config"
	"github.com/decker502/gardentodo/pkg/ecs"
)

func TestNewButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false

	id := NewButton(em, 620, 40, config.ButtonWidth, "Set", func() { clicked = true })

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if !button.Enabled || button.Text != "Set" || button.Height != config.ButtonHeight {
		t.Errorf("unexpected button: %+v", button)
	}
	button.OnClick()
	if !clicked {
		t.Error("OnClick should call the callback")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok || pos.X != 620 || pos.Y != 40 {
		t.Errorf("unexpected position: %+v", pos)
	}
}

func TestNewTextInput(t *testing.T) {
	em := ecs.NewEntityManager()

	id, input := NewTextInput(em, 616, 80, 200, "New task")

	stored, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	if !ok || stored != input {
		t.Fatal("returned component should be the one attached to the entity")
	}
	if input.Placeholder != "New task" || input.MaxLength != config.InputMaxLength {
		t.Errorf("unexpected input: %+v", input)
	}

	input.SetValue("weed the bed")
	if input.Value() != "weed the bed" {
		t.Errorf("Value() = %q", input.Value())
	}
}

func TestNewDynamicLabel(t *testing.T) {
	em := ecs.NewEntityManager()
	current := "None"

	id := NewDynamicLabel(em, 0, 0, func() string { return "Tool: " + current })
	label, _ := ecs.GetComponent[*components.LabelComponent](em, id)

	if got := label.CurrentText(); got != "Tool: None" {
		t.Errorf("got %q", got)
	}
	current = "Water"
	if got := label.CurrentText(); got != "Tool: Water" {
		t.Errorf("label should follow its source, got %q", got)
	}

	static := NewLabel(em, 0, 0, "Checklist")
	staticLabel, _ := ecs.GetComponent[*components.LabelComponent](em, static)
	if staticLabel.CurrentText() != "Checklist" {
		t.Errorf("static label: got %q", staticLabel.CurrentText())
	}
}

func TestNewClampedLabel(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewClampedLabel(em, 10, 20, 2, func() string { return "Main task: weed" })

	label, ok := ecs.GetComponent[*components.LabelComponent](em, id)
	if !ok {
		t.Fatal("label component missing")
	}
	if label.MaxLines != 2 {
		t.Errorf("MaxLines = %d, expected 2", label.MaxLines)
	}
	if got := label.CurrentText(); got != "Main task: weed" {
		t.Errorf("got %q", got)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("position = (%v,%v)", pos.X, pos.Y)
	}
}
