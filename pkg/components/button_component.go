package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 位置由同一实体上的 PositionComponent 给出（左上角）
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 纯色填充加描边，文字居中
//   - 按下即触发点击回调
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// FillColor 填充颜色
	FillColor color.Color
	// BorderColor 描边颜色
	BorderColor color.Color
	// BorderWidth 描边宽度（像素）
	BorderWidth float64
	// TextColor 文字颜色
	TextColor color.Color

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Hidden 隐藏的按钮既不绘制也不响应点击
	Hidden bool

	// OnClick 点击回调函数
	OnClick func()
}

// ProgressBarComponent 进度条组件
// 位置由同一实体上的 PositionComponent 给出（左上角）
type ProgressBarComponent struct {
	Width        float64
	Height       float64
	MaxValue     float64
	CurrentValue float64

	FillColor   color.Color // 进度填充色
	BorderColor color.Color // 描边颜色
	BorderWidth float64
}

// FallingLinkComponent 掉落中的链接
// 位置由 PositionComponent 给出（文字中心点）
type FallingLinkComponent struct {
	Text    string
	IsLegit bool

	// Width/Height 文字渲染尺寸，生成时测量一次
	Width  float64
	Height float64

	// Bounds 点击判定矩形，每帧移动后更新
	// 以位置为中心，水平方向限制在屏幕内
	Bounds Rect
}

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否落在矩形内（包含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
