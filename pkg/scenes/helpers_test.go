package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/game"
	"github.com/decker502/fonolt/pkg/utils"
)

const dt = 1.0 / config.TargetTPS

// testInput 测试用输入：每帧由测试设置，Update 之后清空
type testInput struct {
	state utils.InputState
}

func (in *testInput) get() utils.InputState {
	return in.state
}

// newTestContext 创建无声、无真实输入的运行环境
func newTestContext(t *testing.T, links []linkcsv.Link) (*Context, *testInput) {
	t.Helper()

	rm := game.NewResourceManager(nil, t.TempDir())
	in := &testInput{}
	ctx := &Context{
		Scenes:    game.NewSceneManager(),
		Resources: rm,
		Audio:     game.NewAudioManager(rm, nil),
		Input:     in.get,
		Links:     links,
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Fonts:     NewFonts(rm),
	}
	return ctx, in
}

// step 以当前输入推进一帧，然后清空输入
func step(ctx *Context, in *testInput, state utils.InputState) {
	in.state = state
	ctx.Scenes.Update(dt)
	in.state = utils.InputState{}
}

// clickAt 在 (x, y) 点击一次并推进一帧
func clickAt(ctx *Context, in *testInput, x, y float64) {
	step(ctx, in, utils.InputState{JustPressed: true, X: int(x), Y: int(y)})
}

// idle 无输入推进 n 帧
func idle(ctx *Context, in *testInput, n int) {
	for i := 0; i < n; i++ {
		step(ctx, in, utils.InputState{})
	}
}

// idleUntil 无输入推进直到条件成立，超过 maxFrames 帧则测试失败
func idleUntil(t *testing.T, ctx *Context, in *testInput, maxFrames int, cond func() bool) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if cond() {
			return
		}
		step(ctx, in, utils.InputState{})
	}
	if !cond() {
		t.Fatalf("condition not reached within %d frames (scene %T)", maxFrames, ctx.Scenes.GetCurrentScene())
	}
}

// 常用按钮中心点
var (
	centerX = float64(config.GameWindowWidth) / 2
	// 距底边 70 的按钮（Continue / Next / Start Game / 测验选项）
	bottomButtonY = float64(config.GameWindowHeight) - config.ContinueButtonBottom + config.ButtonHeight/2
	// 距底边 100 的按钮（list 布局与开场介绍的 Continue）
	listButtonY = float64(config.GameWindowHeight) - config.ListContinueButtonBottom + config.ButtonHeight/2
	// 两个测验选项按钮
	legitButtonX    = centerX - 130 + config.OptionButtonWidth/2
	phishingButtonX = centerX + 10 + config.OptionButtonWidth/2
)

func testLinks(legit bool) []linkcsv.Link {
	return []linkcsv.Link{
		{Text: "https://a.uk", IsLegit: legit},
		{Text: "https://b.uk", IsLegit: legit},
	}
}
