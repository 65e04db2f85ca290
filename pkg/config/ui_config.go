package config

import (
	"image/color"
	"strings"
)

// 窗口与帧率
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1024
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 768
	// TargetTPS 每秒逻辑帧数，Update 以固定 1/TargetTPS 秒推进
	TargetTPS = 60
	// WindowTitle 窗口标题
	WindowTitle = "Fonolt"
)

// DefaultTimeLimit 测验每题默认限时（秒）
const DefaultTimeLimit = 30.0

// 字号（像素）
const (
	FontSizeTitle = 36.0 // 大标题（说明页标题）
	FontSizeLarge = 28.0 // 问题、反馈结果
	FontSizeBody  = 24.0 // 游戏通用文字、掉落链接
	FontSizeSmall = 18.0 // 邮件正文、HUD
	FontSizeUI    = 22.0 // 按钮文字
)

// 通用颜色
var (
	ColourWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColourBlack = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColourRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColourGreen = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColourBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}

	// ColourPlaceholder 图片缺失时占位图的填充色
	ColourPlaceholder = color.RGBA{R: 30, G: 40, B: 70, A: 255}
)

var namedColours = map[string]color.RGBA{
	"white": ColourWhite,
	"black": ColourBlack,
	"red":   ColourRed,
	"green": ColourGreen,
	"blue":  ColourBlue,
}

// ColourByName 按名称查找颜色（不区分大小写）
func ColourByName(name string) (color.RGBA, bool) {
	c, ok := namedColours[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// 按钮布局
const (
	ButtonWidth       = 100.0
	ButtonHeight      = 50.0
	OptionButtonWidth = 120.0
	// ButtonBorderWidth 按钮白色描边宽度
	ButtonBorderWidth = 2.0
)

// 主界面按钮位置
var (
	HomeStartButtonX = float64(GameWindowWidth)/2 - 50
	HomeStartButtonY = float64(GameWindowHeight) / 2
	HomeExitButtonX  = float64(GameWindowWidth)/2 - 50
	HomeExitButtonY  = float64(GameWindowHeight)/2 + 70
)

// 说明页与教程页布局
const (
	// TextMargin 左右留白，换行宽度为 GameWindowWidth - 2*TextMargin
	TextMargin = 50.0
	// ContinueButtonBottom 底部按钮距屏幕底边的距离
	ContinueButtonBottom = 70.0
	// ListContinueButtonBottom list 布局与开场介绍的 Continue 按钮距底边距离
	ListContinueButtonBottom = 100.0
)

// 掉落链接 HUD
const (
	HUDScoreX         = float64(GameWindowWidth) - 150
	HUDScoreY         = 20.0
	ProgressBarX      = 20.0
	ProgressBarY      = 20.0
	ProgressBarWidth  = 200.0
	ProgressBarHeight = 20.0
)

// 测验 HUD
const (
	QuizHUDX        = float64(GameWindowWidth) - 200
	QuizTimerY      = 20.0
	QuizScoreY      = 50.0
	QuizQuestionY   = float64(GameWindowHeight) - 150
	QuizLineSpacing = 30.0
	// FeedbackWrapChars 反馈说明按字符数换行的宽度
	FeedbackWrapChars = 60
)
