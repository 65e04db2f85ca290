package entities

import (
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/config"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewButton 创建纯色按钮实体（黑色填充、白色描边、白色文字）
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - width, height: 按钮尺寸
//   - label: 按钮文字
//   - font: 文字字体（可为 nil，此时不绘制文字）
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	x, y, width, height float64,
	label string,
	font *text.GoTextFace,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:        label,
		Font:        font,
		Width:       width,
		Height:      height,
		FillColor:   config.ColourBlack,
		BorderColor: config.ColourWhite,
		BorderWidth: config.ButtonBorderWidth,
		TextColor:   config.ColourWhite,
		State:       components.UINormal,
		Enabled:     true,
		OnClick:     onClick,
	})

	return entity
}

// NewProgressBar 创建进度条实体，初始值为 0
func NewProgressBar(em *ecs.EntityManager, x, y, width, height, maxValue float64) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ProgressBarComponent{
		Width:       width,
		Height:      height,
		MaxValue:    maxValue,
		FillColor:   config.ColourGreen,
		BorderColor: config.ColourBlack,
		BorderWidth: 2,
	})

	return entity
}
