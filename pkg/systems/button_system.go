package systems

import (
	"github.com/charmbracelet/log"
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/decker502/fonolt/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测按下（按下瞬间触发 OnClick 回调）
//   - 禁用或隐藏的按钮不响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	logger        *log.Logger
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		logger:        log.WithPrefix("ButtonSystem"),
	}
}

// Update 根据本帧输入更新按钮状态并触发回调
//
// 返回：
//   - bool: 本帧是否有按钮被点击
//
// 每次按下最多触发一个按钮（ID 最小的命中按钮），回调内可以安全地增删按钮
func (s *ButtonSystem) Update(input utils.InputState) bool {
	x, y := float64(input.X), float64(input.Y)

	var clicked *components.ButtonComponent
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if button.Hidden {
			continue
		}
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !buttonContains(button, pos, x, y) {
			button.State = components.UINormal
			continue
		}

		if input.JustPressed && clicked == nil {
			button.State = components.UIClicked
			clicked = button
			continue
		}
		button.State = components.UIHovered
	}

	if clicked == nil {
		return false
	}

	s.logger.Debug("button clicked", "text", clicked.Text, "x", input.X, "y", input.Y)
	if clicked.OnClick != nil {
		clicked.OnClick()
	}
	return true
}

// buttonContains 检测点是否在按钮范围内（包含边界）
func buttonContains(button *components.ButtonComponent, pos *components.PositionComponent, x, y float64) bool {
	rect := components.Rect{X: pos.X, Y: pos.Y, W: button.Width, H: button.Height}
	return rect.Contains(x, y)
}
