package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{200, 60, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Drill", "Aiko", 3, 100)
	for _, want := range []string{"Kotoba", "Drill", "Aiko", "3 due"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if w := lipgloss.Width(out); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", "", 0, 90)
	footer := RenderFooter([]KeyHint{{"q", "quit"}, {"enter", "select"}}, 90)
	out := RenderFrame(header, "body", footer, 90, 30)

	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if !strings.Contains(out, "quit") || !strings.Contains(out, "body") {
		t.Errorf("frame missing content:\n%s", out)
	}
}
