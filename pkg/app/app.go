// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/embedded"
	"github.com/decker502/fonolt/pkg/game"
	"github.com/decker502/fonolt/pkg/scenes"
	"github.com/decker502/fonolt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultLinksPath 内置的链接 CSV
const DefaultLinksPath = "data/links.csv"

// DefaultAssetsDir 默认资源目录（图片、音频、字体）
const DefaultAssetsDir = "assets"

// SettingsAppName gdata 存储使用的应用名
const SettingsAppName = "fonolt"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LinksPath 链接 CSV 路径，为空则使用内置的 data/links.csv
	LinksPath string
	// AssetsDir 资源目录，为空则使用 "assets"
	AssetsDir string
	// StartLevel 跳过主界面，直接从指定关卡ID开始（如 "level2"）
	StartLevel string
	// Seed 随机种子，0 表示按当前时间
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx             *scenes.Context
	sceneManager    *game.SceneManager
	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	stateManager    *game.GameStateManager
	session         *game.Session
	levels          []scenes.Level
	levelIndex      int // 正在运行的关卡

	quitRequested            bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	verbose                  bool
	logger                   *log.Logger
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出：默认只显示警告（资源缺失等），--verbose 显示调试信息
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	audioContext := audio.NewContext(48000)
	settingsManager := game.OpenSettingsManager(SettingsAppName)

	a, err := newApp(cfg, audioContext, settingsManager, nil)
	if err != nil {
		return nil, err
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// newApp 组装应用
// audioContext 可为 nil（测试时无声运行），input 为 nil 时读取真实输入
func newApp(cfg Config, audioContext *audio.Context, settingsManager *game.SettingsManager, input utils.InputFunc) (*App, error) {
	logger := log.WithPrefix("App")

	assetsDir := cfg.AssetsDir
	if assetsDir == "" {
		assetsDir = DefaultAssetsDir
	}

	resourceManager := game.NewResourceManager(audioContext, assetsDir)
	if err := resourceManager.LoadResourceConfig(game.DefaultManifestPath); err != nil {
		return nil, fmt.Errorf("failed to load resource manifest: %w", err)
	}

	links, err := LoadLinks(cfg.LinksPath)
	if err != nil {
		return nil, err
	}
	stats := linkcsv.Summarize(links)
	logger.Debug("links loaded", "total", stats.Total, "legit", stats.Legit, "phishing", stats.Phishing)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	sceneManager := game.NewSceneManager()
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	ctx := &scenes.Context{
		Scenes:    sceneManager,
		Resources: resourceManager,
		Audio:     audioManager,
		Input:     input,
		Links:     links,
		Rand:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Fonts:     scenes.NewFonts(resourceManager),
	}

	levelConfigs, err := config.LoadCampaign(config.DefaultCampaignPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	levels, err := scenes.NewLevels(ctx, levelConfigs)
	if err != nil {
		return nil, fmt.Errorf("failed to build levels: %w", err)
	}

	a := &App{
		ctx:             ctx,
		sceneManager:    sceneManager,
		audioManager:    audioManager,
		settingsManager: settingsManager,
		stateManager:    game.NewGameStateManager(),
		session:         game.NewSession(),
		levels:          levels,
		verbose:         cfg.Verbose,
		logger:          logger,
	}

	if cfg.StartLevel == "" {
		a.showHome()
		return a, nil
	}

	start := config.IndexOf(levelConfigs, cfg.StartLevel)
	if start < 0 {
		return nil, fmt.Errorf("unknown level %q", cfg.StartLevel)
	}
	logger.Info("skipping home screen", "level", cfg.StartLevel)
	// 跳过的计分关卡仍然占用编号，保证 "Level N Complete!" 与完整流程一致
	for _, lc := range levelConfigs[:start] {
		if lc.IsCounted() {
			a.session.CompleteLevel()
		}
	}
	a.startGame(start)
	return a, nil
}

// LoadLinks 加载链接 CSV
// path 为空时读取内置数据，没有任何链接时返回 linkcsv.ErrNoLinks
func LoadLinks(path string) ([]linkcsv.Link, error) {
	var (
		links []linkcsv.Link
		err   error
	)
	if path == "" {
		links, err = loadEmbeddedLinks()
	} else {
		links, err = linkcsv.ParseFile(path)
	}
	if err != nil {
		return nil, err
	}

	if err := linkcsv.Require(links); err != nil {
		if path == "" {
			path = DefaultLinksPath
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return links, nil
}

func loadEmbeddedLinks() ([]linkcsv.Link, error) {
	file, err := embedded.Open(DefaultLinksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open link file %s: %w", DefaultLinksPath, err)
	}
	defer file.Close()

	links, err := linkcsv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse link file %s: %w", DefaultLinksPath, err)
	}
	return links, nil
}

// showHome 播放主界面音乐并显示主界面
func (a *App) showHome() {
	a.audioManager.PlayMusic(scenes.MusicHome)
	a.sceneManager.SwitchTo(scenes.NewHomeScene(a.ctx, func() {
		a.startGame(0)
	}, a.requestQuit))
}

// startGame 切换到介绍音乐并从指定关卡开始
func (a *App) startGame(index int) {
	a.audioManager.StopMusic()
	a.audioManager.PlayMusic(scenes.MusicIntro)
	if err := a.stateManager.SetState(game.StatePlaying); err != nil {
		a.logger.Error("cannot start game", "err", err)
		return
	}
	a.runLevel(index)
}

// runLevel 运行第 index 个关卡，全部完成后显示结束画面
func (a *App) runLevel(index int) {
	a.levelIndex = index
	if index >= len(a.levels) {
		a.showEnd()
		return
	}

	level := a.levels[index]
	a.logger.Info("starting level", "id", level.Config().ID, "kind", level.Config().Kind)
	level.Start(func(result scenes.LevelResult) {
		a.finishLevel(index, result)
	})
}

// finishLevel 累加分数；计分关卡显示 "Level N Complete!" 后再进入下一关
func (a *App) finishLevel(index int, result scenes.LevelResult) {
	if result.HasScore {
		a.session.AddScore(result.Score)
	}
	a.logger.Info("level finished", "id", a.levels[index].Config().ID,
		"score", result.Score, "total", a.session.Score())

	if !a.levels[index].Config().IsCounted() {
		a.runLevel(index + 1)
		return
	}

	number := a.session.CompleteLevel()
	a.sceneManager.SwitchTo(scenes.NewLevelCompleteScene(a.ctx, number, a.session.Score(), func() {
		a.runLevel(index + 1)
	}))
}

// showEnd 显示结束画面，5 秒后退出
func (a *App) showEnd() {
	if err := a.stateManager.SetState(game.StateEndScreen); err != nil {
		a.logger.Error("cannot show end screen", "err", err)
	}
	a.sceneManager.SwitchTo(scenes.NewEndScene(a.ctx, a.requestQuit))
}

// requestQuit 在下一次 Update 返回 ebiten.Termination
func (a *App) requestQuit() {
	a.logger.Info("quit requested", "score", a.session.Score())
	a.quitRequested = true
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	a.handleHotkeys()
	return a.step()
}

// step 以固定步长推进当前画面
func (a *App) step() error {
	if a.quitRequested {
		return ebiten.Termination
	}

	deltaTime := 1.0 / float64(config.TargetTPS)
	a.sceneManager.Update(deltaTime)

	if a.quitRequested {
		return ebiten.Termination
	}
	return nil
}

// handleHotkeys F11 切换全屏，M 切换背景音乐，设置立即保存
func (a *App) handleHotkeys() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settingsManager.SetFullscreen(fullscreen)
		a.saveSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := a.audioManager.ToggleMusic()
		a.logger.Debug("music toggled", "enabled", enabled)
		a.saveSettings()
	}
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		a.logger.Warn("failed to save settings", "err", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// State 返回当前游戏状态
func (a *App) State() game.State {
	return a.stateManager.State()
}

// Session 返回本次游戏的分数与关卡编号
func (a *App) Session() *game.Session {
	return a.session
}

// CurrentScene 返回当前画面
func (a *App) CurrentScene() game.Scene {
	return a.sceneManager.GetCurrentScene()
}

// LevelIndex 返回正在运行的关卡位置
func (a *App) LevelIndex() int {
	return a.levelIndex
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// IsTermination 判断 Update 返回的错误是否为正常退出
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
