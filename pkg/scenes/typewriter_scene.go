package scenes

import (
	"image/color"

	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// 逐字显示的节奏
const (
	TypewriterCharDelay   = 0.02 // 每个字符的间隔（秒）
	TypewriterLinePause   = 0.5  // 每行结束后的停顿（秒）
	TypewriterStartY      = 100.0
	TypewriterLineSpacing = 40.0
)

// TypewriterScene 逐字显示多行文字，全部显示后出现 Continue 按钮
// 显示过程中点击会立即显示全部文字
type TypewriterScene struct {
	ctx        *Context
	lines      [][]rune
	background string
	textColour color.Color
	onDone     func()

	lineIndex int     // 正在显示的行
	charCount int     // 当前行已显示的字符数
	ticks     int     // 当前行已经过的字符间隔数，空前缀也占一个间隔
	timer     float64 // 距上一个字符（或停顿开始）累计的时间

	finished       bool
	buttons        *buttonLayer
	continueButton ecs.EntityID
}

// NewTypewriterScene 创建逐字显示画面
//
// 参数：
//   - ctx: 共享运行环境
//   - lines: 要显示的文字（每项一行）
//   - background: 背景图片资源ID
//   - textColour: 文字颜色
//   - onDone: 点击 Continue 后调用
func NewTypewriterScene(ctx *Context, lines []string, background string, textColour color.Color, onDone func()) *TypewriterScene {
	scene := &TypewriterScene{
		ctx:        ctx,
		lines:      make([][]rune, len(lines)),
		background: background,
		textColour: textColour,
		onDone:     onDone,
		buttons:    newButtonLayer(),
	}
	for i, line := range lines {
		scene.lines[i] = []rune(line)
	}

	scene.continueButton = scene.buttons.add(
		float64(config.GameWindowWidth)/2-config.ButtonWidth/2,
		float64(config.GameWindowHeight)-config.ListContinueButtonBottom,
		config.ButtonWidth, config.ButtonHeight, "Continue", ctx.Fonts.UI, func() {
			ctx.playSound(SoundClick)
			onDone()
		})
	scene.buttons.setHidden(scene.continueButton, true)

	if len(lines) == 0 {
		scene.finish()
	}
	return scene
}

// Update 推进逐字显示；显示完毕后处理 Continue 按钮
func (s *TypewriterScene) Update(deltaTime float64) {
	input := s.ctx.input()

	if s.finished {
		s.buttons.update(input)
		return
	}

	if input.JustPressed {
		s.finish()
		return
	}

	s.timer += deltaTime
	for !s.finished {
		// 一行依次显示 0..len 个字符，共 len+1 个间隔
		line := s.lines[s.lineIndex]
		if s.ticks <= len(line) {
			if s.timer < TypewriterCharDelay-timeEpsilon {
				return
			}
			s.timer -= TypewriterCharDelay
			s.ticks++
			s.charCount = min(s.ticks, len(line))
			continue
		}

		if s.timer < TypewriterLinePause-timeEpsilon {
			return
		}
		s.timer -= TypewriterLinePause
		s.lineIndex++
		s.charCount = 0
		s.ticks = 0
		if s.lineIndex >= len(s.lines) {
			s.finish()
		}
	}
}

// finish 显示全部文字并出现 Continue 按钮
func (s *TypewriterScene) finish() {
	s.finished = true
	s.lineIndex = len(s.lines)
	s.charCount = 0
	s.buttons.setHidden(s.continueButton, false)
}

// IsFinished 返回文字是否已全部显示
func (s *TypewriterScene) IsFinished() bool {
	return s.finished
}

// VisibleLines 返回当前可见的文字
func (s *TypewriterScene) VisibleLines() []string {
	visible := make([]string, 0, len(s.lines))
	for i := 0; i < s.lineIndex && i < len(s.lines); i++ {
		visible = append(visible, string(s.lines[i]))
	}
	if s.lineIndex < len(s.lines) {
		visible = append(visible, string(s.lines[s.lineIndex][:s.charCount]))
	}
	return visible
}

// Draw 绘制背景、已显示的文字和按钮
func (s *TypewriterScene) Draw(screen *ebiten.Image) {
	s.ctx.drawBackground(screen, s.background)
	for i, line := range s.VisibleLines() {
		drawText(screen, line, s.ctx.Fonts.Large, config.TextMargin,
			TypewriterStartY+float64(i)*TypewriterLineSpacing, s.textColour)
	}
	s.buttons.draw(screen)
}
