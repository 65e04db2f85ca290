package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/fonolt/data"
	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/embedded"
	"github.com/decker502/fonolt/pkg/game"
	"github.com/decker502/fonolt/pkg/scenes"
	"github.com/decker502/fonolt/pkg/utils"
)

// testInput 测试用输入，每帧之后清空
type testInput struct {
	state utils.InputState
}

func (in *testInput) get() utils.InputState { return in.state }

// newTestApp 创建无声、使用脚本输入的应用
func newTestApp(t *testing.T, cfg Config) (*App, *testInput) {
	t.Helper()
	embedded.Init(data.FS)

	if cfg.AssetsDir == "" {
		cfg.AssetsDir = t.TempDir()
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}

	in := &testInput{}
	a, err := newApp(cfg, nil, game.NewSettingsManager(nil), in.get)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	return a, in
}

// frame 以给定输入推进一帧
func frame(a *App, in *testInput, state utils.InputState) error {
	in.state = state
	err := a.step()
	in.state = utils.InputState{}
	return err
}

func click(a *App, in *testInput, x, y float64) error {
	return frame(a, in, utils.InputState{JustPressed: true, X: int(x), Y: int(y)})
}

// idleUntil 无输入推进直到条件成立
func idleUntil(t *testing.T, a *App, in *testInput, maxFrames int, cond func() bool) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if cond() {
			return
		}
		if err := frame(a, in, utils.InputState{}); err != nil {
			t.Fatalf("step() error = %v", err)
		}
	}
	if !cond() {
		t.Fatalf("condition not reached within %d frames (scene %T)", maxFrames, a.CurrentScene())
	}
}

// TestNewAppShowsHome 测试默认从主界面开始
func TestNewAppShowsHome(t *testing.T) {
	a, _ := newTestApp(t, Config{})

	if a.State() != game.StateHomeScreen {
		t.Errorf("State() = %v, want HOME_SCREEN", a.State())
	}
	if _, ok := a.CurrentScene().(*scenes.HomeScene); !ok {
		t.Errorf("CurrentScene() = %T, want *scenes.HomeScene", a.CurrentScene())
	}
	if w, h := a.Layout(1920, 1080); w != config.GameWindowWidth || h != config.GameWindowHeight {
		t.Errorf("Layout() = %dx%d", w, h)
	}
	if got := a.audioManager.CurrentMusicID(); got != scenes.MusicHome {
		t.Errorf("home music = %q, want %q", got, scenes.MusicHome)
	}
}

// TestHomeButtons 测试 Start 进入介绍关卡、Exit 退出
func TestHomeButtons(t *testing.T) {
	startX := config.HomeStartButtonX + config.ButtonWidth/2
	startY := config.HomeStartButtonY + config.ButtonHeight/2
	exitY := config.HomeExitButtonY + config.ButtonHeight/2

	t.Run("start", func(t *testing.T) {
		a, in := newTestApp(t, Config{})
		if err := click(a, in, startX, startY); err != nil {
			t.Fatalf("step() error = %v", err)
		}
		if a.State() != game.StatePlaying {
			t.Errorf("State() = %v, want PLAYING", a.State())
		}
		if _, ok := a.CurrentScene().(*scenes.TypewriterScene); !ok {
			t.Errorf("CurrentScene() = %T, want the introduction", a.CurrentScene())
		}
		if got := a.audioManager.CurrentMusicID(); got != scenes.MusicIntro {
			t.Errorf("music = %q, want %q", got, scenes.MusicIntro)
		}
	})

	t.Run("exit", func(t *testing.T) {
		a, in := newTestApp(t, Config{})
		if err := click(a, in, startX, exitY); !IsTermination(err) {
			t.Errorf("step() after Exit = %v, want ebiten.Termination", err)
		}
		if err := frame(a, in, utils.InputState{}); !IsTermination(err) {
			t.Errorf("step() after quit = %v, want ebiten.Termination", err)
		}
	})
}

// TestStartLevel 测试 --level 跳过主界面并保持关卡编号
func TestStartLevel(t *testing.T) {
	a, _ := newTestApp(t, Config{StartLevel: "level3"})

	if a.State() != game.StatePlaying {
		t.Errorf("State() = %v, want PLAYING", a.State())
	}
	if a.LevelIndex() != 4 {
		t.Errorf("LevelIndex() = %d, want 4", a.LevelIndex())
	}
	if a.Session().LevelNumber() != 3 {
		t.Errorf("LevelNumber() = %d, want 3", a.Session().LevelNumber())
	}
	if _, ok := a.CurrentScene().(*scenes.InstructionsScene); !ok {
		t.Errorf("CurrentScene() = %T, want level 3 instructions", a.CurrentScene())
	}
}

// TestConfigErrors 测试配置错误导致创建失败
func TestConfigErrors(t *testing.T) {
	embedded.Init(data.FS)
	dir := t.TempDir()

	headerOnly := filepath.Join(dir, "header.csv")
	if err := os.WriteFile(headerOnly, []byte("link,is_legit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cfg  Config
		is   error
	}{
		{"unknown start level", Config{StartLevel: "level9"}, nil},
		{"missing links file", Config{LinksPath: filepath.Join(dir, "missing.csv")}, os.ErrNotExist},
		{"links without rows", Config{LinksPath: headerOnly}, linkcsv.ErrNoLinks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.AssetsDir = dir
			_, err := newApp(tt.cfg, nil, game.NewSettingsManager(nil), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}
}

// TestLoadLinks 测试内置与磁盘上的链接 CSV
func TestLoadLinks(t *testing.T) {
	embedded.Init(data.FS)

	links, err := LoadLinks("")
	if err != nil {
		t.Fatalf("LoadLinks(\"\") error = %v", err)
	}
	stats := linkcsv.Summarize(links)
	if stats.Legit == 0 || stats.Phishing == 0 {
		t.Errorf("bundled links should mix legit and phishing, got %+v", stats)
	}

	path := filepath.Join(t.TempDir(), "links.csv")
	if err := os.WriteFile(path, []byte("is_legit,link\nTRUE,https://a.uk\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	links, err = LoadLinks(path)
	if err != nil {
		t.Fatalf("LoadLinks(%s) error = %v", path, err)
	}
	if len(links) != 1 || !links[0].IsLegit || links[0].Text != "https://a.uk" {
		t.Errorf("LoadLinks() = %+v", links)
	}
}

// levelComplete 等待 "Level N Complete!" 画面并检查累计分数
func levelComplete(t *testing.T, a *App, in *testInput, number, score int) {
	t.Helper()
	var complete *scenes.MessageScene
	idleUntil(t, a, in, 300, func() bool {
		msg, ok := a.CurrentScene().(*scenes.MessageScene)
		if ok && len(msg.Texts()) == 3 {
			complete = msg
		}
		return complete != nil
	})
	texts := complete.Texts()
	if texts[0] != fmt.Sprintf("Level %d Complete!", number) || texts[1] != fmt.Sprintf("Current Score: %d", score) {
		t.Errorf("level complete texts = %q, want level %d with score %d", texts, number, score)
	}
	if a.Session().Score() != score {
		t.Errorf("session score = %d, want %d", a.Session().Score(), score)
	}
}

// TestLevel1And2AddOneEach 测试前两关通关各只计 1 分，与关卡内得分无关
func TestLevel1And2AddOneEach(t *testing.T) {
	linksPath := filepath.Join(t.TempDir(), "links.csv")
	if err := os.WriteFile(linksPath, []byte(`link,is_legit
https://www.fonolt.ac.uk,TRUE
https://library.fonolt.ac.uk,TRUE
`), 0o644); err != nil {
		t.Fatal(err)
	}
	a, in := newTestApp(t, Config{StartLevel: "level1", LinksPath: linksPath})

	level1, err := config.LoadLevelConfig("data/levels/level1.yaml")
	if err != nil {
		t.Fatal(err)
	}
	level2, err := config.LoadLevelConfig("data/levels/level2.yaml")
	if err != nil {
		t.Fatal(err)
	}

	centerX := float64(config.GameWindowWidth) / 2
	buttonY := float64(config.GameWindowHeight) - config.ContinueButtonBottom + config.ButtonHeight/2
	nextX := float64(config.GameWindowWidth) - 150 + config.ButtonWidth/2
	startGameX := centerX - 80 + 75

	// 教程每页 Next，最后 Start Game，再在说明页 Continue
	for range level1.Tutorial {
		if err := click(a, in, nextX, buttonY); err != nil {
			t.Fatal(err)
		}
	}
	for _, x := range []float64{startGameX, centerX} {
		if err := click(a, in, x, buttonY); err != nil {
			t.Fatal(err)
		}
	}

	round, ok := a.CurrentScene().(*scenes.FallingLinksScene)
	if !ok {
		t.Fatalf("CurrentScene() = %T, want the falling links round", a.CurrentScene())
	}
	for i := 0; i < 5000 && a.CurrentScene() == scenes.Scene(round); i++ {
		ids := ecs.GetEntitiesWith1[*components.FallingLinkComponent](round.EntityManager())
		if len(ids) == 0 {
			err = frame(a, in, utils.InputState{})
		} else {
			link, _ := ecs.GetComponent[*components.FallingLinkComponent](round.EntityManager(), ids[0])
			b := link.Bounds
			err = click(a, in, b.X+b.W/2, b.Y+b.H/2+level1.FallingLinks.BaseSpeed)
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if round.Score() < level1.FallingLinks.PassScore {
		t.Fatalf("round ended with score %d", round.Score())
	}
	levelComplete(t, a, in, 1, 1)

	if err := frame(a, in, utils.InputState{KeyJustReleased: true}); err != nil {
		t.Fatal(err)
	}
	if err := click(a, in, centerX, buttonY); err != nil {
		t.Fatal(err)
	}

	legitX := centerX - 130 + config.OptionButtonWidth/2
	phishingX := centerX + 10 + config.OptionButtonWidth/2
	for i, scenario := range level2.Scenarios {
		quiz, ok := a.CurrentScene().(*scenes.QuizScene)
		if !ok {
			t.Fatalf("scenario %d: CurrentScene() = %T", i, a.CurrentScene())
		}
		x := phishingX
		if scenario.IsLegit {
			x = legitX
		}
		if err := click(a, in, x, buttonY); err != nil {
			t.Fatal(err)
		}
		if result, _ := quiz.Feedback(); result != scenes.FeedbackCorrect {
			t.Fatalf("scenario %d: feedback = %q", i, result)
		}
		idleUntil(t, a, in, 200, func() bool {
			return !quiz.InFeedback() || a.CurrentScene() != scenes.Scene(quiz)
		})
	}
	levelComplete(t, a, in, 2, 2)
}

// TestLevel3ToEnd 测试最后一关：全部选择 Legitimate，完成画面显示累计分数，结束画面 5 秒后退出
func TestLevel3ToEnd(t *testing.T) {
	a, in := newTestApp(t, Config{StartLevel: "level3"})

	level3, err := config.LoadLevelConfig("data/levels/level3.yaml")
	if err != nil {
		t.Fatal(err)
	}
	wantScore := 0
	for _, s := range level3.Scenarios {
		if s.IsLegit {
			wantScore++
		}
	}

	centerX := float64(config.GameWindowWidth) / 2
	buttonY := float64(config.GameWindowHeight) - config.ContinueButtonBottom + config.ButtonHeight/2
	legitX := centerX - 130 + config.OptionButtonWidth/2

	// compact 布局的 Continue
	if err := click(a, in, centerX, buttonY); err != nil {
		t.Fatal(err)
	}

	for i := range level3.Scenarios {
		quiz, ok := a.CurrentScene().(*scenes.QuizScene)
		if !ok {
			t.Fatalf("scenario %d: CurrentScene() = %T", i, a.CurrentScene())
		}
		if err := click(a, in, legitX, buttonY); err != nil {
			t.Fatal(err)
		}
		if !quiz.InFeedback() {
			t.Fatalf("scenario %d: answer not accepted", i)
		}
		idleUntil(t, a, in, 200, func() bool {
			return !quiz.InFeedback() || a.CurrentScene() != scenes.Scene(quiz)
		})
	}

	complete, ok := a.CurrentScene().(*scenes.MessageScene)
	if !ok {
		t.Fatalf("CurrentScene() = %T, want level complete screen", a.CurrentScene())
	}
	texts := complete.Texts()
	if texts[0] != "Level 3 Complete!" || texts[1] != fmt.Sprintf("Current Score: %d", wantScore) {
		t.Errorf("level complete texts = %q", texts)
	}
	if a.Session().Score() != wantScore {
		t.Errorf("session score = %d, want %d", a.Session().Score(), wantScore)
	}

	if err := frame(a, in, utils.InputState{KeyJustReleased: true}); err != nil {
		t.Fatal(err)
	}
	if a.State() != game.StateEndScreen {
		t.Fatalf("State() = %v, want END_SCREEN", a.State())
	}

	var stepErr error
	for i := 0; i < 400 && stepErr == nil; i++ {
		stepErr = frame(a, in, utils.InputState{})
	}
	if !IsTermination(stepErr) {
		t.Errorf("end screen should terminate the game, got %v", stepErr)
	}
}
