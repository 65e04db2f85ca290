// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 统一处理鼠标、触摸和键盘，场景只读取这个结构，测试时可直接构造
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 点击/触摸位置（逻辑屏幕坐标）
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
	// 本帧是否有任意键被松开
	KeyJustReleased bool
}

// InputFunc 返回当前帧输入状态的函数
type InputFunc func() InputState

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{
		KeyJustReleased: anyKeyJustReleased(),
	}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 检查是否有活动的触摸（用于悬停检测）
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}

// anyKeyJustReleased 检查本帧是否有键被松开
func anyKeyJustReleased() bool {
	return len(inpututil.AppendJustReleasedKeys(nil)) > 0
}
