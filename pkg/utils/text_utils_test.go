package utils

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// TestWrapText 测试文本换行功能
// basicfont.Face7x13 每个字符宽 7 像素
func TestWrapText(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{name: "短文本不换行", input: "weed", maxWidth: 100, expectMin: 1},
		{name: "长文本换行", input: "water the tomatoes before noon", maxWidth: 70, expectMin: 3},
		{name: "空文本", input: "", maxWidth: 70, expectMin: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, face, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("expected at least %d lines, got %d: %q", tt.expectMin, len(lines), lines)
			}
			for _, line := range lines {
				if w := measureTextWidth(line, face); w > tt.maxWidth && len([]rune(line)) > 1 {
					t.Errorf("line %q is %.0fpx wide, max %.0f", line, w, tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapText_KeepsAllCharacters 换行只丢弃行首尾空白
func TestWrapText_KeepsAllCharacters(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)
	input := "plantcarrotsandbeans"

	lines := WrapText(input, face, 49)
	if joined := strings.Join(lines, ""); joined != input {
		t.Errorf("joined lines = %q, expected %q", joined, input)
	}
}

func TestWrapText_NilFace(t *testing.T) {
	lines := WrapText("anything", nil, 10)
	if len(lines) != 1 || lines[0] != "anything" {
		t.Errorf("nil face should return input unchanged, got %q", lines)
	}
}

// TestLimitLines 超出行数时截断并以省略号结尾
func TestLimitLines(t *testing.T) {
	face := text.NewGoXFace(basicfont.Face7x13)
	const maxWidth = 70.0

	lines := WrapText("water the tomatoes before noon and then weed the beans", face, maxWidth)
	if len(lines) <= 2 {
		t.Fatalf("expected the sample to wrap past 2 lines, got %q", lines)
	}

	limited := LimitLines(lines, 2, face, maxWidth)
	if len(limited) != 2 {
		t.Fatalf("expected 2 lines, got %q", limited)
	}
	if limited[0] != lines[0] {
		t.Errorf("first line changed: %q -> %q", lines[0], limited[0])
	}
	if !strings.HasSuffix(limited[1], Ellipsis) {
		t.Errorf("last line should end with %q: %q", Ellipsis, limited[1])
	}
	if w := measureTextWidth(limited[1], face); w > maxWidth {
		t.Errorf("truncated line is %.0fpx wide, max %.0f", w, maxWidth)
	}

	// 输入不被修改
	if strings.HasSuffix(lines[1], Ellipsis) {
		t.Error("LimitLines must not modify its input")
	}
}

func TestLimitLines_NoLimit(t *testing.T) {
	lines := []string{"a", "b", "c"}
	if got := LimitLines(lines, 0, nil, 10); len(got) != 3 {
		t.Errorf("maxLines 0 should keep all lines, got %q", got)
	}
	if got := LimitLines(lines, 3, nil, 10); len(got) != 3 || got[2] != "c" {
		t.Errorf("lines within the limit should be unchanged, got %q", got)
	}
	if got := LimitLines(lines, 1, nil, 10); len(got) != 1 || got[0] != "a"+Ellipsis {
		t.Errorf("nil face: got %q", got)
	}
}
