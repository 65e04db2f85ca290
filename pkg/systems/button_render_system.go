package systems

import (
	"github.com/decker502/fonolt/pkg/components"
	"github.com/decker502/fonolt/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体：纯色背景、描边、居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
// 查询所有拥有 ButtonComponent 和 PositionComponent 的实体并按创建顺序渲染
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || button.Hidden {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)

	if button.FillColor != nil {
		vector.DrawFilledRect(screen, x, y, w, h, button.FillColor, false)
	}
	if button.BorderColor != nil && button.BorderWidth > 0 {
		vector.StrokeRect(screen, x, y, w, h, float32(button.BorderWidth), button.BorderColor, false)
	}

	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// drawButtonText 渲染按钮文字（水平、垂直居中）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x+button.Width/2, y+button.Height/2)
	if button.TextColor != nil {
		op.ColorScale.ScaleWithColor(button.TextColor)
	}

	text.Draw(screen, button.Text, button.Font, op)
}
