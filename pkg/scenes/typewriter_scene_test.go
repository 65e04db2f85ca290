package scenes

import (
	"reflect"
	"testing"

	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/utils"
)

// TestTypewriterRevealsCharacters 测试逐字显示节奏：空前缀和每个字符各占 0.02 秒，每行后停顿 0.5 秒
func TestTypewriterRevealsCharacters(t *testing.T) {
	ctx, _ := newTestContext(t, nil)
	scene := NewTypewriterScene(ctx, []string{"ab", "c"}, ImageBackground, config.ColourWhite, func() {})

	// 第一行 "ab" 占 3 个间隔（0.06 秒），停顿到 0.56 秒
	steps := []struct {
		delta float64
		want  []string
	}{
		{0.01, []string{""}},
		{0.01, []string{"a"}},
		{0.02, []string{"ab"}},
		{0.01, []string{"ab"}},
		{0.01, []string{"ab"}}, // 0.06 秒，开始行末停顿
		{0.49, []string{"ab"}}, // 0.55 秒，仍在停顿中
		{0.01, []string{"ab", ""}},
		{0.02, []string{"ab", "c"}},
		{0.02, []string{"ab", "c"}}, // 第二行的最后一个间隔
	}

	for i, s := range steps {
		scene.Update(s.delta)
		if got := scene.VisibleLines(); !reflect.DeepEqual(got, s.want) {
			t.Fatalf("step %d: VisibleLines() = %q, want %q", i, got, s.want)
		}
	}

	if scene.IsFinished() {
		t.Fatal("finished before the pause after the last line")
	}
	scene.Update(0.49)
	if scene.IsFinished() {
		t.Fatal("finished before the pause ended")
	}
	scene.Update(0.01)
	if !scene.IsFinished() {
		t.Fatal("expected finished after the last pause")
	}
	if got := scene.VisibleLines(); !reflect.DeepEqual(got, []string{"ab", "c"}) {
		t.Errorf("VisibleLines() = %q after finish", got)
	}
}

// TestTypewriterClickRevealsAll 测试显示过程中点击立即显示全部文字，且不会同时触发 Continue
func TestTypewriterClickRevealsAll(t *testing.T) {
	ctx, in := newTestContext(t, nil)
	doneCalls := 0
	lines := []string{"Welcome!", "Stay vigilant!"}
	ctx.Scenes.SwitchTo(NewTypewriterScene(ctx, lines, ImageBackground, config.ColourWhite, func() { doneCalls++ }))

	clickAt(ctx, in, centerX, listButtonY)

	scene := ctx.Scenes.GetCurrentScene().(*TypewriterScene)
	if !scene.IsFinished() {
		t.Fatal("click should reveal all lines")
	}
	if got := scene.VisibleLines(); !reflect.DeepEqual(got, lines) {
		t.Errorf("VisibleLines() = %q, want %q", got, lines)
	}
	if doneCalls != 0 {
		t.Fatal("the revealing click must not press Continue")
	}

	// 点击按钮外不结束
	clickAt(ctx, in, 10, 10)
	if doneCalls != 0 {
		t.Fatal("click outside Continue should be ignored")
	}

	clickAt(ctx, in, centerX, listButtonY)
	if doneCalls != 1 {
		t.Errorf("Continue calls = %d, want 1", doneCalls)
	}
}

// TestTypewriterFrameDriven 测试按固定帧率推进最终会显示完毕
func TestTypewriterFrameDriven(t *testing.T) {
	ctx, in := newTestContext(t, nil)
	lines := []string{"12345", "678"}
	scene := NewTypewriterScene(ctx, lines, ImageBackground, config.ColourWhite, func() {})
	ctx.Scenes.SwitchTo(scene)

	// (6 + 4) 个间隔 * 0.02 + 2 * 0.5 = 1.2 秒，72 帧
	idle(ctx, in, 60)
	if scene.IsFinished() {
		t.Fatal("finished too early")
	}
	idleUntil(t, ctx, in, 20, scene.IsFinished)
}

// TestTypewriterEmptyLines 测试没有文字时直接出现 Continue
func TestTypewriterEmptyLines(t *testing.T) {
	ctx, in := newTestContext(t, nil)
	done := false
	ctx.Scenes.SwitchTo(NewTypewriterScene(ctx, nil, ImageBackground, config.ColourWhite, func() { done = true }))

	step(ctx, in, utils.InputState{JustPressed: true, X: int(centerX), Y: int(listButtonY)})
	if !done {
		t.Error("Continue should be available immediately")
	}
}
