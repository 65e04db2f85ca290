package scenes

import (
	"testing"

	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
)

// fallingLinksLevel 每帧必定尝试生成、同屏最多一个链接的测试关卡
func fallingLinksLevel(pass, fail int) *config.LevelConfig {
	params := config.DefaultFallingLinksConfig()
	params.SpawnOneIn = 1
	params.MaxLinks = 1
	params.PassScore = pass
	params.FailScore = fail
	return &config.LevelConfig{
		ID:           "level1",
		Kind:         config.KindFallingLinks,
		Background:   ImageBackground,
		Music:        "MUSIC_LEVEL1",
		RetryOnFail:  true,
		Instructions: []string{"Level 1", "Click legitimate links."},
		FallingLinks: params,
	}
}

// clickFirstLink 点击当前唯一的链接（考虑本帧下落的距离）
func clickFirstLink(t *testing.T, ctx *Context, in *testInput, scene *FallingLinksScene) {
	t.Helper()
	ids := ecs.GetEntitiesWith1[*components.FallingLinkComponent](scene.EntityManager())
	if len(ids) == 0 {
		t.Fatal("no falling link on screen")
	}
	link, _ := ecs.GetComponent[*components.FallingLinkComponent](scene.EntityManager(), ids[0])
	b := link.Bounds
	clickAt(ctx, in, b.X+b.W/2, b.Y+b.H/2+scene.params.BaseSpeed)
}

// TestFallingLinksScoring 测试点击合法链接 +1、钓鱼链接 -1
func TestFallingLinksScoring(t *testing.T) {
	tests := []struct {
		name  string
		legit bool
		want  int
	}{
		{"legit link scores", true, 1},
		{"phishing link costs", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, in := newTestContext(t, testLinks(tt.legit))
			scene := NewFallingLinksScene(ctx, fallingLinksLevel(15, -5), func(bool, int) {})
			ctx.Scenes.SwitchTo(scene)

			idle(ctx, in, 1)
			if scene.LinkCount() != 1 {
				t.Fatalf("LinkCount() = %d, want 1", scene.LinkCount())
			}

			clickFirstLink(t, ctx, in, scene)
			if scene.Score() != tt.want {
				t.Errorf("Score() = %d, want %d", scene.Score(), tt.want)
			}
		})
	}
}

// TestFallingLinksMissedClick 测试点空白处不计分
func TestFallingLinksMissedClick(t *testing.T) {
	ctx, in := newTestContext(t, testLinks(true))
	scene := NewFallingLinksScene(ctx, fallingLinksLevel(15, -5), func(bool, int) {})
	ctx.Scenes.SwitchTo(scene)

	idle(ctx, in, 1)
	clickAt(ctx, in, 0, float64(config.GameWindowHeight)-1)
	if scene.Score() != 0 {
		t.Errorf("Score() = %d after a miss, want 0", scene.Score())
	}
	if scene.LinkCount() != 1 {
		t.Errorf("missed click removed a link")
	}
}

// TestFallingLinksPassAndFail 测试达到通关/失败分数时回调一次
func TestFallingLinksPassAndFail(t *testing.T) {
	tests := []struct {
		name       string
		legit      bool
		wantPassed bool
		wantScore  int
	}{
		{"pass", true, true, 2},
		{"fail", false, false, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, in := newTestContext(t, testLinks(tt.legit))
			calls := 0
			var passed bool
			var score int
			scene := NewFallingLinksScene(ctx, fallingLinksLevel(2, -2), func(p bool, s int) {
				calls++
				passed, score = p, s
			})
			ctx.Scenes.SwitchTo(scene)

			for i := 0; i < 2; i++ {
				idle(ctx, in, 1)
				clickFirstLink(t, ctx, in, scene)
			}

			if calls != 1 {
				t.Fatalf("onFinish calls = %d, want 1", calls)
			}
			if passed != tt.wantPassed || score != tt.wantScore {
				t.Errorf("onFinish(%v, %d), want (%v, %d)", passed, score, tt.wantPassed, tt.wantScore)
			}

			idle(ctx, in, 10)
			if calls != 1 {
				t.Errorf("finished scene kept running, calls = %d", calls)
			}
		})
	}
}

// TestFallingLinksProgressBar 测试进度条跟随分数
func TestFallingLinksProgressBar(t *testing.T) {
	ctx, in := newTestContext(t, testLinks(true))
	scene := NewFallingLinksScene(ctx, fallingLinksLevel(4, -5), func(bool, int) {})
	ctx.Scenes.SwitchTo(scene)

	idle(ctx, in, 1)
	clickFirstLink(t, ctx, in, scene)

	bar, ok := ecs.GetComponent[*components.ProgressBarComponent](scene.EntityManager(), scene.progressBar)
	if !ok {
		t.Fatal("progress bar missing")
	}
	if bar.CurrentValue != 1 || bar.MaxValue != 4 {
		t.Errorf("progress = %v/%v, want 1/4", bar.CurrentValue, bar.MaxValue)
	}
}

// TestFallingLinksFallOffScreen 测试掉出屏幕的链接被移除
func TestFallingLinksFallOffScreen(t *testing.T) {
	ctx, in := newTestContext(t, testLinks(true))
	level := fallingLinksLevel(15, -5)
	level.FallingLinks.BaseSpeed = 400
	scene := NewFallingLinksScene(ctx, level, func(bool, int) {})
	ctx.Scenes.SwitchTo(scene)

	// 生成后第二帧到达 y = 800，超过屏幕高度
	idle(ctx, in, 1)
	first := ecs.GetEntitiesWith1[*components.FallingLinkComponent](scene.EntityManager())
	idle(ctx, in, 1)

	if len(first) != 1 {
		t.Fatalf("expected one link after the first frame, got %d", len(first))
	}
	if scene.EntityManager().Exists(first[0]) {
		t.Error("link below the screen should be removed")
	}
	if scene.Score() != 0 {
		t.Errorf("falling off screen changed score to %d", scene.Score())
	}
}
