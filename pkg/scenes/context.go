// Package scenes 实现游戏的各个画面以及由画面串联而成的关卡流程
//
// 所有画面都是非阻塞的：Update 推进一个小状态机，完成时调用创建者传入的回调，
// 由回调决定切换到哪个画面。
package scenes

import (
	"image/color"
	"math/rand/v2"

	"github.com/decker502/fonolt/internal/linkcsv"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/game"
	"github.com/decker502/fonolt/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// 音效资源ID
const (
	SoundClick   = "SOUND_CLICK"
	SoundCorrect = "SOUND_CORRECT"
	SoundWrong   = "SOUND_WRONG"
)

// 背景音乐资源ID
const (
	MusicHome  = "MUSIC_HOME"
	MusicIntro = "MUSIC_INTRO"
)

// ImageBackground 默认背景图片资源ID
const ImageBackground = "IMAGE_BACKGROUND"

// Fonts 各画面共用的字体
type Fonts struct {
	Title *text.GoTextFace
	Large *text.GoTextFace
	Body  *text.GoTextFace
	Small *text.GoTextFace
	UI    *text.GoTextFace
}

// NewFonts 从资源管理器获取各字号字体
func NewFonts(rm *game.ResourceManager) Fonts {
	return Fonts{
		Title: rm.Font(config.FontSizeTitle),
		Large: rm.Font(config.FontSizeLarge),
		Body:  rm.Font(config.FontSizeBody),
		Small: rm.Font(config.FontSizeSmall),
		UI:    rm.Font(config.FontSizeUI),
	}
}

// Context 画面与关卡共享的运行环境
type Context struct {
	Scenes    *game.SceneManager
	Resources *game.ResourceManager
	Audio     *game.AudioManager
	// Input 返回当前帧输入，为 nil 时读取真实的鼠标/触摸/键盘
	Input utils.InputFunc
	Links []linkcsv.Link
	Rand  *rand.Rand
	Fonts Fonts
}

// input 返回本帧输入状态
func (c *Context) input() utils.InputState {
	if c.Input == nil {
		return utils.GetInputState()
	}
	return c.Input()
}

// playSound 播放音效，未配置音频时忽略
func (c *Context) playSound(id string) {
	if c.Audio != nil {
		c.Audio.PlaySound(id)
	}
}

// playMusic 切换背景音乐，返回切换前的曲目ID
func (c *Context) playMusic(id string) string {
	if c.Audio == nil || id == "" {
		return ""
	}
	previous := c.Audio.CurrentMusicID()
	c.Audio.PlayMusic(id)
	return previous
}

// switchTo 切换到下一个画面
func (c *Context) switchTo(scene Scene) {
	c.Scenes.SwitchTo(scene)
}

// drawBackground 绘制铺满屏幕的背景图片
// 图片缺失时 ImageByID 返回占位图
func (c *Context) drawBackground(screen *ebiten.Image, imageID string) {
	if c.Resources == nil || imageID == "" {
		screen.Fill(config.ColourBlack)
		return
	}
	img := c.Resources.ImageByID(imageID, config.GameWindowWidth, config.GameWindowHeight)
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	if bounds.Dx() > 0 && bounds.Dy() > 0 {
		op.GeoM.Scale(
			float64(config.GameWindowWidth)/float64(bounds.Dx()),
			float64(config.GameWindowHeight)/float64(bounds.Dy()),
		)
	}
	screen.DrawImage(img, op)
}

// drawText 以 (x, y) 为左上角绘制文字
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字
func drawCenteredText(screen *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// lineWidth 返回文字宽度，字体为 nil 时按 0 处理
func lineWidth(face text.Face) utils.Measurer {
	if face == nil {
		return func(string) float64 { return 0 }
	}
	return utils.FaceMeasurer(face)
}
