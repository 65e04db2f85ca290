package scenes

import (
	"image/color"

	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// instructionLine 说明页上排好版的一行
type instructionLine struct {
	text     string
	face     *text.GoTextFace
	x, y     float64
	centered bool
}

// InstructionsScene 说明页：若干行文字 + Continue 按钮
//
// 排版方式：
//   - centered: 首行为居中大标题，其余行按像素宽度换行后居中，行距 40
//   - compact: 从 (50, 50) 开始左对齐小字号，行距 30
//   - list: 从 (50, 100) 开始左对齐，行距 40，按钮距底边 100
type InstructionsScene struct {
	ctx        *Context
	layout     config.InstructionLayout
	lines      []instructionLine
	background string
	textColour color.Color
	buttons    *buttonLayer
}

// NewInstructionsScene 创建说明页
//
// 参数：
//   - ctx: 共享运行环境
//   - lines: 说明文字
//   - layout: 排版方式，未知值按 centered 处理
//   - background: 背景图片资源ID
//   - textColour: 文字颜色
//   - onDone: 点击 Continue 后调用
func NewInstructionsScene(
	ctx *Context,
	lines []string,
	layout config.InstructionLayout,
	background string,
	textColour color.Color,
	onDone func(),
) *InstructionsScene {
	scene := &InstructionsScene{
		ctx:        ctx,
		layout:     layout,
		background: background,
		textColour: textColour,
		buttons:    newButtonLayer(),
	}

	buttonBottom := config.ContinueButtonBottom
	switch layout {
	case config.LayoutList:
		scene.lines = layoutLeft(lines, ctx.Fonts.Body, config.TextMargin, 100, 40)
		buttonBottom = config.ListContinueButtonBottom
	case config.LayoutCompact:
		scene.lines = layoutLeft(lines, ctx.Fonts.Small, config.TextMargin, 50, 30)
	default:
		scene.layout = config.LayoutCentered
		scene.lines = layoutCentered(lines, ctx.Fonts)
	}

	scene.buttons.add(
		float64(config.GameWindowWidth)/2-config.ButtonWidth/2,
		float64(config.GameWindowHeight)-buttonBottom,
		config.ButtonWidth, config.ButtonHeight, "Continue", ctx.Fonts.UI, func() {
			ctx.playSound(SoundClick)
			onDone()
		})

	return scene
}

// layoutLeft 左对齐逐行排列
func layoutLeft(lines []string, face *text.GoTextFace, x, startY, spacing float64) []instructionLine {
	out := make([]instructionLine, 0, len(lines))
	for i, line := range lines {
		out = append(out, instructionLine{
			text: line,
			face: face,
			x:    x,
			y:    startY + float64(i)*spacing,
		})
	}
	return out
}

// layoutCentered 首行为标题，其余行换行后居中
func layoutCentered(lines []string, fonts Fonts) []instructionLine {
	if len(lines) == 0 {
		return nil
	}

	cx := float64(config.GameWindowWidth) / 2
	out := []instructionLine{{text: lines[0], face: fonts.Title, x: cx, y: 50, centered: true}}

	measure := lineWidth(fonts.Body)
	maxWidth := float64(config.GameWindowWidth) - 2*config.TextMargin
	y := 120.0
	for _, instruction := range lines[1:] {
		for _, wrapped := range utils.WrapText(instruction, measure, maxWidth) {
			out = append(out, instructionLine{text: wrapped, face: fonts.Body, x: cx, y: y, centered: true})
			y += 40
		}
	}
	return out
}

// Layout 返回实际使用的排版方式
func (s *InstructionsScene) Layout() config.InstructionLayout {
	return s.layout
}

// Lines 返回排版后的文字
func (s *InstructionsScene) Lines() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = line.text
	}
	return out
}

// Update 处理 Continue 按钮
func (s *InstructionsScene) Update(deltaTime float64) {
	s.buttons.update(s.ctx.input())
}

// Draw 绘制背景、文字与按钮
func (s *InstructionsScene) Draw(screen *ebiten.Image) {
	s.ctx.drawBackground(screen, s.background)
	for _, line := range s.lines {
		if line.centered {
			drawCenteredText(screen, line.text, line.face, line.x, line.y, s.textColour)
		} else {
			drawText(screen, line.text, line.face, line.x, line.y, s.textColour)
		}
	}
	s.buttons.draw(screen)
}
