package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/fonolt/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 提示画面时长（秒）
const (
	ResultSeconds = 2.0 // "Level Completed!" / "Level Failed"
	RetrySeconds  = 4.0 // "Level Failed. Try again!" 显示 2 秒后再停顿 2 秒
	EndSeconds    = 5.0 // 结束画面
)

// MessageLine 提示画面上的一行文字（左上角坐标）
type MessageLine struct {
	Text string
	Face *text.GoTextFace
	X, Y float64
}

// MessageScene 只显示文字的画面
// 定时结束（Duration > 0），或等待任意键松开（WaitForKey）
type MessageScene struct {
	ctx        *Context
	lines      []MessageLine
	fill       color.Color // 纯色背景，Background 为空时使用
	background string
	textColour color.Color
	duration   float64
	waitForKey bool
	onDone     func()

	elapsed float64
	done    bool
}

// MessageOptions 提示画面配置
type MessageOptions struct {
	Lines      []MessageLine
	Fill       color.Color // 纯色背景
	Background string      // 背景图片资源ID，优先于 Fill
	TextColour color.Color
	Duration   float64 // 显示时长（秒），<= 0 表示不计时
	WaitForKey bool    // 等待任意键松开（触屏设备上点击也可继续）
}

// NewMessageScene 创建提示画面
func NewMessageScene(ctx *Context, opts MessageOptions, onDone func()) *MessageScene {
	fill := opts.Fill
	if fill == nil {
		fill = config.ColourBlack
	}
	textColour := opts.TextColour
	if textColour == nil {
		textColour = config.ColourWhite
	}
	return &MessageScene{
		ctx:        ctx,
		lines:      opts.Lines,
		fill:       fill,
		background: opts.Background,
		textColour: textColour,
		duration:   opts.Duration,
		waitForKey: opts.WaitForKey,
		onDone:     onDone,
	}
}

// NewResultScene 黑底白字的单行结果提示，如 "Level Completed!"
func NewResultScene(ctx *Context, message string, seconds float64, onDone func()) *MessageScene {
	return NewMessageScene(ctx, MessageOptions{
		Lines: []MessageLine{{
			Text: message,
			Face: ctx.Fonts.Title,
			X:    float64(config.GameWindowWidth)/2 - 100,
			Y:    float64(config.GameWindowHeight) / 2,
		}},
		Duration: seconds,
	}, onDone)
}

// NewLevelCompleteScene 关卡完成画面，白底黑字，按任意键继续
func NewLevelCompleteScene(ctx *Context, levelNumber, score int, onDone func()) *MessageScene {
	x := float64(config.GameWindowWidth)/2 - 100
	cy := float64(config.GameWindowHeight) / 2
	return NewMessageScene(ctx, MessageOptions{
		Lines: []MessageLine{
			{Text: fmt.Sprintf("Level %d Complete!", levelNumber), Face: ctx.Fonts.Title, X: x, Y: cy - 50},
			{Text: fmt.Sprintf("Current Score: %d", score), Face: ctx.Fonts.Title, X: x, Y: cy},
			{Text: "Press any key to continue", Face: ctx.Fonts.Title, X: x, Y: cy + 50},
		},
		Fill:       config.ColourWhite,
		TextColour: config.ColourBlack,
		WaitForKey: true,
	}, onDone)
}

// NewEndScene 结束画面，白底黑字，显示 5 秒
func NewEndScene(ctx *Context, onDone func()) *MessageScene {
	cx := float64(config.GameWindowWidth) / 2
	cy := float64(config.GameWindowHeight) / 2
	return NewMessageScene(ctx, MessageOptions{
		Lines: []MessageLine{
			{Text: "Congratulations!", Face: ctx.Fonts.Title, X: cx - 100, Y: cy - 50},
			{Text: "You've successfully completed the Phishing Awareness Game.", Face: ctx.Fonts.Title, X: cx - 300, Y: cy},
			{Text: "Well done for passing!", Face: ctx.Fonts.Title, X: cx - 150, Y: cy + 50},
		},
		Fill:       config.ColourWhite,
		TextColour: config.ColourBlack,
		Duration:   EndSeconds,
	}, onDone)
}

// Texts 返回画面上的文字
func (s *MessageScene) Texts() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = line.Text
	}
	return out
}

// Update 计时或等待按键，结束时调用一次回调
func (s *MessageScene) Update(deltaTime float64) {
	if s.done {
		return
	}

	if s.waitForKey {
		input := s.ctx.input()
		if input.KeyJustReleased || input.JustPressed {
			s.finish()
		}
		return
	}

	s.elapsed += deltaTime
	if s.duration > 0 && s.elapsed >= s.duration-timeEpsilon {
		s.finish()
	}
}

func (s *MessageScene) finish() {
	s.done = true
	if s.onDone != nil {
		s.onDone()
	}
}

// Draw 绘制背景与文字
func (s *MessageScene) Draw(screen *ebiten.Image) {
	if s.background != "" {
		s.ctx.drawBackground(screen, s.background)
	} else {
		screen.Fill(s.fill)
	}
	for _, line := range s.lines {
		drawText(screen, line.Text, line.Face, line.X, line.Y, s.textColour)
	}
}

// timeEpsilon 按 1/60 秒累加时的浮点误差容忍度
const timeEpsilon = 1e-9
