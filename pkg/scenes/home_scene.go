package scenes

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// HomeScene 主界面：背景 + Start / Exit 两个按钮
//
// 背景音乐由调用方在切换到本画面前开始播放
type HomeScene struct {
	ctx     *Context
	buttons *buttonLayer
	logger  *log.Logger
}

// NewHomeScene 创建主界面
//
// 参数：
//   - ctx: 共享运行环境
//   - onStart: 点击 Start 时调用
//   - onExit: 点击 Exit 时调用
func NewHomeScene(ctx *Context, onStart, onExit func()) *HomeScene {
	scene := &HomeScene{
		ctx:     ctx,
		buttons: newButtonLayer(),
		logger:  log.WithPrefix("HomeScene"),
	}

	scene.buttons.add(config.HomeStartButtonX, config.HomeStartButtonY,
		config.ButtonWidth, config.ButtonHeight, "Start", ctx.Fonts.UI, func() {
			scene.logger.Info("start clicked")
			onStart()
		})
	scene.buttons.add(config.HomeExitButtonX, config.HomeExitButtonY,
		config.ButtonWidth, config.ButtonHeight, "Exit", ctx.Fonts.UI, func() {
			scene.logger.Info("exit clicked")
			onExit()
		})

	return scene
}

// Update 处理按钮点击
func (s *HomeScene) Update(deltaTime float64) {
	s.buttons.update(s.ctx.input())
}

// Draw 绘制背景与按钮
func (s *HomeScene) Draw(screen *ebiten.Image) {
	s.ctx.drawBackground(screen, ImageBackground)
	s.buttons.draw(screen)
}
