package scenes

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 教程页布局
const (
	tutorialTitleY        = 50.0
	tutorialContentY      = 100.0
	tutorialLineSpacing   = 30.0
	tutorialNextX         = float64(config.GameWindowWidth) - 150
	tutorialPreviousX     = 50.0
	tutorialStartWidth    = 150.0
	tutorialCompleteTextX = float64(config.GameWindowWidth)/2 - 100
	tutorialCompleteTextY = float64(config.GameWindowHeight)/2 - 50
)

// TutorialScene 教程幻灯片
//
// 每页显示标题和按像素宽度换行的正文，Next / Previous 翻页（第一页不显示 Previous），
// 最后一页之后显示 "Tutorial Complete!" 和 Start Game 按钮
type TutorialScene struct {
	ctx        *Context
	slides     []config.TutorialSlide
	wrapped    [][]string // 每页正文换行结果
	background string
	textColour color.Color

	current  int  // 当前页
	complete bool // 是否已翻过最后一页

	buttons        *buttonLayer
	nextButton     ecs.EntityID
	previousButton ecs.EntityID
	startButton    ecs.EntityID
	logger         *log.Logger
}

// NewTutorialScene 创建教程画面
//
// 参数：
//   - ctx: 共享运行环境
//   - slides: 教程页
//   - background: 背景图片资源ID
//   - textColour: 文字颜色
//   - onDone: 点击 Start Game 后调用
func NewTutorialScene(ctx *Context, slides []config.TutorialSlide, background string, textColour color.Color, onDone func()) *TutorialScene {
	scene := &TutorialScene{
		ctx:        ctx,
		slides:     slides,
		wrapped:    make([][]string, len(slides)),
		background: background,
		textColour: textColour,
		buttons:    newButtonLayer(),
		logger:     log.WithPrefix("TutorialScene"),
	}

	measure := lineWidth(ctx.Fonts.Body)
	maxWidth := float64(config.GameWindowWidth) - 2*config.TextMargin
	for i, slide := range slides {
		scene.wrapped[i] = utils.WrapText(slide.Content, measure, maxWidth)
	}

	buttonY := float64(config.GameWindowHeight) - config.ContinueButtonBottom
	scene.nextButton = scene.buttons.add(tutorialNextX, buttonY,
		config.ButtonWidth, config.ButtonHeight, "Next", ctx.Fonts.UI, func() {
			ctx.playSound(SoundClick)
			scene.goTo(scene.current + 1)
		})
	scene.previousButton = scene.buttons.add(tutorialPreviousX, buttonY,
		config.ButtonWidth, config.ButtonHeight, "Previous", ctx.Fonts.UI, func() {
			ctx.playSound(SoundClick)
			scene.goTo(scene.current - 1)
		})
	scene.startButton = scene.buttons.add(float64(config.GameWindowWidth)/2-80, buttonY,
		tutorialStartWidth, config.ButtonHeight, "Start Game", ctx.Fonts.UI, func() {
			ctx.playSound(SoundClick)
			onDone()
		})

	scene.goTo(0)
	return scene
}

// goTo 切换到指定页，越过最后一页时进入完成状态
func (s *TutorialScene) goTo(index int) {
	if index < 0 {
		index = 0
	}
	s.current = index
	s.complete = index >= len(s.slides)

	s.buttons.setHidden(s.nextButton, s.complete)
	s.buttons.setHidden(s.previousButton, s.complete || index == 0)
	s.buttons.setHidden(s.startButton, !s.complete)

	if !s.complete {
		s.logger.Debug("showing slide", "index", index, "title", s.slides[index].Title)
	}
}

// CurrentSlide 返回当前页索引（完成后等于页数）
func (s *TutorialScene) CurrentSlide() int {
	return s.current
}

// IsComplete 返回是否已显示 "Tutorial Complete!"
func (s *TutorialScene) IsComplete() bool {
	return s.complete
}

// SlideLines 返回指定页换行后的正文
func (s *TutorialScene) SlideLines(index int) []string {
	if index < 0 || index >= len(s.wrapped) {
		return nil
	}
	return s.wrapped[index]
}

// Update 处理翻页按钮
func (s *TutorialScene) Update(deltaTime float64) {
	s.buttons.update(s.ctx.input())
}

// Draw 绘制当前页或完成页
func (s *TutorialScene) Draw(screen *ebiten.Image) {
	s.ctx.drawBackground(screen, s.background)

	if s.complete {
		drawText(screen, "Tutorial Complete!", s.ctx.Fonts.Title,
			tutorialCompleteTextX, tutorialCompleteTextY, s.textColour)
		s.buttons.draw(screen)
		return
	}

	cx := float64(config.GameWindowWidth) / 2
	drawCenteredText(screen, s.slides[s.current].Title, s.ctx.Fonts.Title, cx, tutorialTitleY, s.textColour)
	for i, line := range s.wrapped[s.current] {
		drawCenteredText(screen, line, s.ctx.Fonts.Body, cx, tutorialContentY+float64(i)*tutorialLineSpacing, s.textColour)
	}
	s.buttons.draw(screen)
}
