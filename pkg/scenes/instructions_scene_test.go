package scenes

import (
	"reflect"
	"testing"

	"github.com/decker502/fonolt/pkg/config"
)

// TestInstructionsLayouts 测试三种排版的文字与 Continue 按钮位置
func TestInstructionsLayouts(t *testing.T) {
	lines := []string{"Level 2: Identifying Phishing Emails", "You have 30 seconds for each decision."}

	tests := []struct {
		name       string
		layout     config.InstructionLayout
		wantLayout config.InstructionLayout
		buttonY    float64
	}{
		{"centered", config.LayoutCentered, config.LayoutCentered, bottomButtonY},
		{"compact", config.LayoutCompact, config.LayoutCompact, bottomButtonY},
		{"list", config.LayoutList, config.LayoutList, listButtonY},
		{"unknown falls back to centered", "diagonal", config.LayoutCentered, bottomButtonY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, in := newTestContext(t, nil)
			done := 0
			scene := NewInstructionsScene(ctx, lines, tt.layout, ImageBackground, config.ColourWhite, func() { done++ })
			ctx.Scenes.SwitchTo(scene)

			if scene.Layout() != tt.wantLayout {
				t.Errorf("Layout() = %q, want %q", scene.Layout(), tt.wantLayout)
			}
			if got := scene.Lines(); !reflect.DeepEqual(got, lines) {
				t.Errorf("Lines() = %q, want %q", got, lines)
			}

			clickAt(ctx, in, centerX, 10)
			if done != 0 {
				t.Fatal("click away from Continue should be ignored")
			}
			clickAt(ctx, in, centerX, tt.buttonY)
			if done != 1 {
				t.Errorf("Continue calls = %d, want 1", done)
			}
		})
	}
}

// TestInstructionsCenteredWrapping 测试 centered 布局只换行正文，不换行标题
func TestInstructionsCenteredWrapping(t *testing.T) {
	ctx, _ := newTestContext(t, nil)
	long := ""
	for i := 0; i < 40; i++ {
		long += "careful "
	}

	scene := NewInstructionsScene(ctx, []string{"Title", long}, config.LayoutCentered, ImageBackground, config.ColourWhite, func() {})
	got := scene.Lines()
	if got[0] != "Title" {
		t.Errorf("first line = %q, want the title", got[0])
	}
	if len(got) < 3 {
		t.Errorf("long instruction should wrap into several lines, got %d", len(got)-1)
	}
}

// TestInstructionsEmpty 测试没有文字时仍然可以继续
func TestInstructionsEmpty(t *testing.T) {
	ctx, in := newTestContext(t, nil)
	done := false
	ctx.Scenes.SwitchTo(NewInstructionsScene(ctx, nil, config.LayoutCentered, ImageBackground, config.ColourWhite, func() { done = true }))

	clickAt(ctx, in, centerX, bottomButtonY)
	if !done {
		t.Error("Continue should work without lines")
	}
}
